package history

import (
	"context"
	"fmt"
	"time"

	"imgdrop/internal/app/upload"
	"imgdrop/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Record(ctx context.Context, evt upload.CompletedEvent) (*Record, error)
	Recent(ctx context.Context, limit int64) ([]*Record, error)
	// Subscribe records every upload.completed event published on bus.
	Subscribe(bus *utils.EventBus)
}

type service struct {
	repo    Repository
	logger  *zap.Logger
	timeout time.Duration
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:    repo,
		logger:  logger,
		timeout: 5 * time.Second,
	}
}

func (s *service) Record(ctx context.Context, evt upload.CompletedEvent) (*Record, error) {
	rec := &Record{
		ID:          uuid.NewString(),
		BatchID:     evt.BatchID,
		FileName:    evt.FileName,
		ObjectKey:   evt.ObjectKey,
		ContentType: evt.ContentType,
		Size:        evt.Size,
		UploadedAt:  evt.UploadedAt,
	}

	if err := s.repo.Add(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}

	s.logger.Debug("Upload recorded",
		zap.String("record_id", rec.ID),
		zap.String("object_key", rec.ObjectKey),
	)
	return rec, nil
}

func (s *service) Recent(ctx context.Context, limit int64) ([]*Record, error) {
	return s.repo.Recent(ctx, limit)
}

func (s *service) Subscribe(bus *utils.EventBus) {
	bus.Subscribe(utils.EventUploadCompleted, func(e utils.Event) {
		evt, ok := e.Data.(upload.CompletedEvent)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		// History is best effort; the upload already succeeded.
		if _, err := s.Record(ctx, evt); err != nil {
			s.logger.Warn("Failed to record upload history",
				zap.String("file", evt.FileName),
				zap.Error(err),
			)
		}
	})
}
