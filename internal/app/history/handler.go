package history

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type Handler interface {
	List(c *cli.Context) error
}

type handler struct {
	service Service
	out     io.Writer
	logger  *zap.Logger
}

// NewHandler returns the history command handler. A nil service means
// history is not configured.
func NewHandler(service Service, out io.Writer, logger *zap.Logger) Handler {
	return &handler{
		service: service,
		out:     out,
		logger:  logger,
	}
}

func (h *handler) List(c *cli.Context) error {
	if h.service == nil {
		return cli.Exit("upload history requires REDIS_URL", 2)
	}

	records, err := h.service.Recent(c.Context, c.Int64("limit"))
	if err != nil {
		h.logger.Error("Failed to list history", zap.Error(err))
		return cli.Exit(err.Error(), 1)
	}

	if len(records) == 0 {
		fmt.Fprintln(h.out, "no uploads recorded")
		return nil
	}

	tw := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "UPLOADED\tFILE\tOBJECT\tTYPE\tSIZE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			r.UploadedAt.Local().Format(time.DateTime), r.FileName, r.ObjectKey, r.ContentType, r.Size)
	}
	return tw.Flush()
}
