package health

import (
	"encoding/json"
	"io"

	"github.com/urfave/cli/v2"
)

type Handler interface {
	Check(c *cli.Context) error
}

type handler struct {
	service HealthService
	out     io.Writer
}

func NewHandler(service HealthService, out io.Writer) Handler {
	return &handler{service: service, out: out}
}

func (h *handler) Check(c *cli.Context) error {
	status := h.service.Check(c.Context)

	enc := json.NewEncoder(h.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(status); err != nil {
		return err
	}

	if status.Status != "healthy" {
		return cli.Exit("", 1)
	}
	return nil
}
