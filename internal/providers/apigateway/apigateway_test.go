package apigateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"imgdrop/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestUploadURL(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantKey     string
		wantStatus  int
		wantErr     error
		errContains string
	}{
		{
			name: "issues url",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var req PresignRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "cat.png", req.FileName)
				assert.Equal(t, "image/png", req.FileType)

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(PresignResponse{
					PresignedURL: "https://bucket.s3.amazonaws.com/uploads/20250101_000000_cat.png?X-Amz-Signature=abc",
					FileName:     "uploads/20250101_000000_cat.png",
					ExpiresIn:    3600,
				})
			},
			wantKey: "uploads/20250101_000000_cat.png",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
			},
			wantStatus:  http.StatusInternalServerError,
			errContains: "500",
		},
		{
			name: "bad request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"fileName is required"}`, http.StatusBadRequest)
			},
			wantStatus:  http.StatusBadRequest,
			errContains: "400",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>"))
			},
			wantErr: ErrInvalidResponse,
		},
		{
			name: "missing url",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"fileName":"uploads/x.png"}`))
			},
			wantErr:     ErrInvalidResponse,
			errContains: "presignedUrl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			p := NewAPIGatewayProvider(srv.URL, srv.Client(), zap.NewNop())
			out, err := p.RequestUploadURL(context.Background(), "cat.png", "image/png")

			if tt.wantKey != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantKey, out.FileName)
				assert.Equal(t, 3600, out.ExpiresIn)
				assert.Contains(t, out.PresignedURL, "X-Amz-Signature")
				return
			}

			require.Error(t, err)
			assert.Nil(t, out)
			if tt.wantStatus != 0 {
				var se *utils.StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, tt.wantStatus, se.StatusCode)
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestRequestUploadURL_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewAPIGatewayProvider(url, nil, zap.NewNop())
	_, err := p.RequestUploadURL(context.Background(), "cat.png", "image/png")

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrNetwork)
}

func TestRequestUploadURL_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewAPIGatewayProvider(srv.URL, srv.Client(), zap.NewNop())
	_, err := p.RequestUploadURL(ctx, "cat.png", "image/png")

	assert.ErrorIs(t, err, utils.ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRequestUploadURL_NotConfigured(t *testing.T) {
	p := NewAPIGatewayProvider("", nil, zap.NewNop())
	_, err := p.RequestUploadURL(context.Background(), "cat.png", "image/png")
	assert.ErrorIs(t, err, ErrEndpointNotConfigured)
}

func TestEndpoint(t *testing.T) {
	p := NewAPIGatewayProvider("https://example.com/prod/presign", nil, zap.NewNop())
	assert.Equal(t, "https://example.com/prod/presign", p.Endpoint())
}
