package router

import (
	"context"
	"io"

	"imgdrop/internal/app/effects"
	"imgdrop/internal/app/health"
	"imgdrop/internal/app/history"
	"imgdrop/internal/app/upload"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type Router struct {
	App *cli.App
}

// NewRouter builds the command tree root. Exit codes are left to the caller
// so deferred cleanup in main still runs.
func NewRouter(logger *zap.Logger, out io.Writer) *Router {
	app := cli.NewApp()
	app.Name = "imgdrop"
	app.Usage = "Upload images to S3 through pre-signed URLs"
	app.Writer = out
	app.ExitErrHandler = func(c *cli.Context, err error) {
		if err != nil {
			logger.Debug("Command finished with error", zap.Error(err))
		}
	}
	return &Router{App: app}
}

func (r *Router) RegisterUploadCommands(handler upload.Handler) {
	upload.RegisterCommands(r.App, handler)
}

func (r *Router) RegisterHistoryCommands(handler history.Handler) {
	history.RegisterCommands(r.App, handler)
}

func (r *Router) RegisterHealthCommands(handler health.Handler) {
	health.RegisterCommands(r.App, handler)
}

func (r *Router) RegisterEffectsCommands(handler effects.Handler) {
	effects.RegisterCommands(r.App, handler)
}

func (r *Router) Serve(ctx context.Context, args []string) error {
	return r.App.RunContext(ctx, args)
}
