package utils

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Services  []Service `json:"services"`
}

type Service struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type HealthChecker struct {
	Endpoint string
	HTTP     *http.Client
	Redis    *redis.Client
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	var services []Service
	overallStatus := "healthy"

	if h.Endpoint != "" {
		service := Service{Name: "CredentialEndpoint"}
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := h.pingEndpoint(ctx); err != nil {
			service.Status = "down"
			service.Message = err.Error()
			overallStatus = "degraded"
		} else {
			service.Status = "up"
		}
		services = append(services, service)
		cancel()
	} else {
		services = append(services, Service{
			Name:    "CredentialEndpoint",
			Status:  "down",
			Message: "API_GATEWAY_URL is not configured",
		})
		overallStatus = "degraded"
	}

	if h.Redis != nil {
		service := Service{Name: "Redis"}
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := h.Redis.Ping(ctx).Err(); err != nil {
			service.Status = "down"
			service.Message = err.Error()
			overallStatus = "degraded"
		} else {
			service.Status = "up"
		}
		services = append(services, service)
		cancel()
	}

	return HealthStatus{
		Status:    overallStatus,
		Timestamp: time.Now().UTC(),
		Services:  services,
	}
}

// pingEndpoint sends a CORS preflight style OPTIONS request. Any answer
// below 500 means the endpoint is reachable.
func (h *HealthChecker) pingEndpoint(ctx context.Context) error {
	client := h.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodOptions, h.Endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return &StatusError{Op: "credential endpoint", StatusCode: resp.StatusCode}
	}
	return nil
}
