package health

import (
	"context"

	"imgdrop/internal/utils"

	"go.uber.org/zap"
)

type HealthService interface {
	// Check probes every dependency. Down dependencies are logged.
	Check(ctx context.Context) utils.HealthStatus
}

type healthService struct {
	checker *utils.HealthChecker
	logger  *zap.Logger
}

func NewHealthService(checker *utils.HealthChecker, logger *zap.Logger) HealthService {
	return &healthService{
		checker: checker,
		logger:  logger,
	}
}

func (s *healthService) Check(ctx context.Context) utils.HealthStatus {
	status := s.checker.Check(ctx)

	for _, svc := range status.Services {
		if svc.Status == "up" {
			continue
		}
		s.logger.Warn("Dependency unavailable",
			zap.String("service", svc.Name),
			zap.String("message", svc.Message),
		)
	}

	return status
}
