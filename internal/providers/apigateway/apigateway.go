package apigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"imgdrop/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrInvalidResponse       = errors.New("invalid credential response")
	ErrEndpointNotConfigured = errors.New("API_GATEWAY_URL is not configured")
)

type PresignRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

type PresignResponse struct {
	PresignedURL string `json:"presignedUrl"`
	FileName     string `json:"fileName"`
	ExpiresIn    int    `json:"expiresIn,omitempty"`
}

// maxResponseSize bounds how much of a credential response is read.
const maxResponseSize = 1 << 20

type APIGatewayProvider struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

func NewAPIGatewayProvider(endpoint string, client *http.Client, logger *zap.Logger) *APIGatewayProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &APIGatewayProvider{
		endpoint: endpoint,
		client:   client,
		logger:   logger,
	}
}

func (p *APIGatewayProvider) Endpoint() string {
	return p.endpoint
}

// RequestUploadURL asks the credential endpoint to mint a pre-signed PUT URL
// for a single file.
func (p *APIGatewayProvider) RequestUploadURL(ctx context.Context, fileName, fileType string) (*PresignResponse, error) {
	if p.endpoint == "" {
		return nil, ErrEndpointNotConfigured
	}

	body, err := json.Marshal(PresignRequest{FileName: fileName, FileType: fileType})
	if err != nil {
		return nil, fmt.Errorf("failed to encode presign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build presign request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if !utils.IsSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return nil, &utils.StatusError{Op: "API Gateway", StatusCode: resp.StatusCode}
	}

	var out PresignResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if out.PresignedURL == "" {
		return nil, fmt.Errorf("%w: missing presignedUrl", ErrInvalidResponse)
	}

	p.logger.Debug("Upload URL issued",
		zap.String("file_name", fileName),
		zap.String("object_key", out.FileName),
		zap.Int("expires_in", out.ExpiresIn),
	)

	return &out, nil
}
