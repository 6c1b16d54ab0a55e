package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"imgdrop/internal/utils"

	"go.uber.org/zap"
)

// S3Provider uploads objects through pre-signed URLs. It never holds
// credentials of its own.
type S3Provider struct {
	client *http.Client
	logger *zap.Logger
}

func NewS3Provider(client *http.Client, logger *zap.Logger) *S3Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &S3Provider{
		client: client,
		logger: logger,
	}
}

// PutObject streams body to presignedURL. size may be -1 when unknown. The
// content type must match the one the URL was signed for.
func (p *S3Provider) PutObject(ctx context.Context, presignedURL string, body io.Reader, size int64, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, presignedURL, body)
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	if size == 0 {
		req.Body = http.NoBody
	}
	if size >= 0 {
		req.ContentLength = size
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", utils.ErrNetwork, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if !utils.IsSuccess(resp.StatusCode) {
		return &utils.StatusError{Op: "S3", StatusCode: resp.StatusCode}
	}

	p.logger.Debug("Object uploaded",
		zap.String("host", req.URL.Host),
		zap.String("path", req.URL.Path),
		zap.String("etag", resp.Header.Get("ETag")),
		zap.Int64("size", size),
	)

	return nil
}
