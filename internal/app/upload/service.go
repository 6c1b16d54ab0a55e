package upload

import (
	"context"
	"fmt"
	"io"
	"time"

	"imgdrop/internal/app/preview"
	"imgdrop/internal/app/status"
	"imgdrop/internal/providers/apigateway"
	"imgdrop/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CredentialIssuer interface {
	RequestUploadURL(ctx context.Context, fileName, fileType string) (*apigateway.PresignResponse, error)
}

type ObjectUploader interface {
	PutObject(ctx context.Context, presignedURL string, body io.Reader, size int64, contentType string) error
}

type Previewer interface {
	Clear()
	Start(ctx context.Context, name string, open preview.OpenFunc)
}

type Service interface {
	// UploadImages processes every file of sel in order and resets sel when
	// done. Per-file failures are reported, never returned.
	UploadImages(ctx context.Context, sel *Selection) []Result
}

type service struct {
	issuer    CredentialIssuer
	uploader  ObjectUploader
	previewer Previewer
	reporter  status.Reporter
	eventBus  *utils.EventBus
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires the orchestrator. previewer and eventBus may be nil.
func NewService(
	issuer CredentialIssuer,
	uploader ObjectUploader,
	previewer Previewer,
	reporter status.Reporter,
	eventBus *utils.EventBus,
	logger *zap.Logger,
) Service {
	return &service{
		issuer:    issuer,
		uploader:  uploader,
		previewer: previewer,
		reporter:  reporter,
		eventBus:  eventBus,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *service) UploadImages(ctx context.Context, sel *Selection) []Result {
	if sel == nil || sel.Len() == 0 {
		s.reporter.Show(status.Error("select image files first"))
		return nil
	}

	batchID := uuid.NewString()
	logger := s.logger.With(zap.String("batch_id", batchID))

	s.reporter.Show(status.Info("preparing upload..."))
	if s.previewer != nil {
		s.previewer.Clear()
	}

	files := sel.Files()
	results := make([]Result, 0, len(files))
	failed := 0
	for _, f := range files {
		res := s.uploadFile(ctx, logger, batchID, f)
		if !res.OK() {
			failed++
		}
		results = append(results, res)
	}

	sel.Reset()

	logger.Info("Upload batch finished",
		zap.Int("files", len(files)),
		zap.Int("uploaded", len(files)-failed),
		zap.Int("failed", failed),
	)

	return results
}

func (s *service) uploadFile(ctx context.Context, logger *zap.Logger, batchID string, f File) Result {
	if !f.IsImage() {
		err := &Error{Op: "validate", File: f.Name, Err: ErrInvalidFileType}
		s.reporter.Show(status.Error(fmt.Sprintf("%q is not a valid image file", f.Name)))
		logger.Warn("Rejected file", zap.String("file", f.Name), zap.String("mime_type", f.MimeType))
		return Result{File: f.Name, Err: err}
	}

	if s.previewer != nil {
		s.previewer.Start(ctx, f.Name, f.Open)
	}

	s.reporter.Show(status.Info(fmt.Sprintf("requesting upload URL for %q...", f.Name)))

	cred, err := s.requestCredential(ctx, f)
	if err != nil {
		return s.fail(logger, f, "credential", fmt.Errorf("%w: %w", ErrCredentialRequest, err))
	}

	s.reporter.Show(status.Info(fmt.Sprintf("uploading %q to S3...", f.Name)))

	if err := s.put(ctx, f, cred.PresignedURL); err != nil {
		return s.fail(logger, f, "put", fmt.Errorf("%w: %w", ErrUpload, err))
	}

	s.reporter.Show(status.Success(fmt.Sprintf("%q uploaded successfully", f.Name)))
	logger.Info("Image uploaded",
		zap.String("file", f.Name),
		zap.String("object_key", cred.FileName),
		zap.Int64("size", f.Size),
	)

	if s.eventBus != nil && s.eventBus.HasSubscribers(utils.EventUploadCompleted) {
		s.eventBus.Publish(utils.EventUploadCompleted, CompletedEvent{
			BatchID:     batchID,
			FileName:    f.Name,
			ObjectKey:   cred.FileName,
			ContentType: f.MimeType,
			Size:        f.Size,
			UploadedAt:  s.now().UTC(),
		})
	}

	return Result{File: f.Name, ObjectKey: cred.FileName}
}

func (s *service) requestCredential(ctx context.Context, f File) (*Credential, error) {
	resp, err := s.issuer.RequestUploadURL(ctx, f.Name, f.MimeType)
	if err != nil {
		return nil, err
	}
	return &Credential{
		PresignedURL: resp.PresignedURL,
		FileName:     resp.FileName,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

func (s *service) put(ctx context.Context, f File, presignedURL string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer rc.Close()

	return s.uploader.PutObject(ctx, presignedURL, rc, f.Size, f.MimeType)
}

func (s *service) fail(logger *zap.Logger, f File, op string, err error) Result {
	s.reporter.Show(status.Error(fmt.Sprintf("failed to upload %q: %v", f.Name, err)))
	logger.Error("Image upload failed",
		zap.String("file", f.Name),
		zap.String("step", op),
		zap.Int("status_code", StatusCode(err)),
		zap.Error(err),
	)
	return Result{File: f.Name, Err: &Error{Op: op, File: f.Name, Err: err}}
}
