package app

import (
	"io"

	"imgdrop/internal/app/effects"
	"imgdrop/internal/app/health"
	"imgdrop/internal/app/history"
	"imgdrop/internal/app/preview"
	"imgdrop/internal/app/status"
	"imgdrop/internal/app/upload"
	"imgdrop/internal/config"
	"imgdrop/internal/middleware"
	"imgdrop/internal/providers/apigateway"
	"imgdrop/internal/providers/redis"
	"imgdrop/internal/providers/s3"
	"imgdrop/internal/router"
	"imgdrop/internal/utils"

	"go.uber.org/zap"
)

type Application struct {
	Router  *router.Router
	Display *status.Display
	Redis   *redis.RedisProvider
}

// Close releases the status timers and the Redis connection.
func (a *Application) Close() {
	a.Display.Close()
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
}

func Bootstrap(cfg *config.Config, logger *zap.Logger, out io.Writer) (*Application, error) {
	if cfg.APIGatewayURL == "" {
		logger.Warn("API_GATEWAY_URL is not set, uploads will fail")
	}

	httpClient := middleware.NewHTTPClient(logger, cfg.HTTPTimeout)
	apiGateway := apigateway.NewAPIGatewayProvider(cfg.APIGatewayURL, httpClient, logger)
	s3Provider := s3.NewS3Provider(httpClient, logger)

	display := status.NewDisplay(out, cfg.StatusClearDelay)
	eventBus := utils.NewEventBus()

	var renderer *preview.Renderer
	var previewer upload.Previewer
	if cfg.PreviewEnabled {
		renderer = preview.NewRenderer(preview.NewGallery(), logger)
		previewer = renderer
	}

	var redisProvider *redis.RedisProvider
	var historyService history.Service
	if cfg.HistoryEnabled() {
		redisProvider = redis.NewRedisProvider(cfg.RedisURL, logger, cfg.HistoryTTL)
		historyRepo := history.NewRepository(redisProvider.Client, cfg.HistoryLimit, redisProvider.TTL())
		historyService = history.NewService(historyRepo, logger)
		historyService.Subscribe(eventBus)
	}

	uploadService := upload.NewService(apiGateway, s3Provider, previewer, display, eventBus, logger)
	uploadHandler := upload.NewHandler(upload.NewLoader(logger), uploadService, renderer, display, out, logger)

	checker := &utils.HealthChecker{
		Endpoint: apiGateway.Endpoint(),
		HTTP:     httpClient,
	}
	if redisProvider != nil {
		checker.Redis = redisProvider.Client
	}
	healthHandler := health.NewHandler(health.NewHealthService(checker, logger), out)

	historyHandler := history.NewHandler(historyService, out, logger)
	effectsHandler := effects.NewHandler(effects.NewCounter(), effects.NewClock(display, nil), effects.NewPalette(nil), out)

	r := router.NewRouter(logger, out)

	r.RegisterUploadCommands(uploadHandler)
	r.RegisterHistoryCommands(historyHandler)
	r.RegisterHealthCommands(healthHandler)
	r.RegisterEffectsCommands(effectsHandler)

	return &Application{
		Router:  r,
		Display: display,
		Redis:   redisProvider,
	}, nil
}
