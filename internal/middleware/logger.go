package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// LoggingTransport logs every outbound request. The query string is never
// logged because pre-signed URLs carry their signature there.
func LoggingTransport(zapLogger *zap.Logger, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()
		resp, err := next.RoundTrip(r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("host", r.URL.Host),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			zapLogger.Warn("HTTP request failed", append(fields, zap.Error(err))...)
			return resp, err
		}

		zapLogger.Debug("HTTP request", append(fields, zap.Int("status", resp.StatusCode))...)
		return resp, nil
	})
}

// NewHTTPClient returns a client with the logging transport and timeout applied.
func NewHTTPClient(zapLogger *zap.Logger, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: LoggingTransport(zapLogger, http.DefaultTransport),
	}
}
