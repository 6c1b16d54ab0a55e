package effects

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
)

type Handler interface {
	Click(c *cli.Context) error
	Time(c *cli.Context) error
	Color(c *cli.Context) error
}

type handler struct {
	counter *Counter
	clock   *Clock
	palette *Palette
	out     io.Writer
}

func NewHandler(counter *Counter, clock *Clock, palette *Palette, out io.Writer) Handler {
	return &handler{
		counter: counter,
		clock:   clock,
		palette: palette,
		out:     out,
	}
}

func (h *handler) Click(c *cli.Context) error {
	times := c.Int("times")
	if times < 1 {
		return cli.Exit("--times must be at least 1", 2)
	}
	for i := 0; i < times; i++ {
		h.counter.Increment()
		fmt.Fprintln(h.out, h.counter.Text())
	}
	return nil
}

func (h *handler) Time(c *cli.Context) error {
	h.clock.Show()
	return nil
}

func (h *handler) Color(c *cli.Context) error {
	fmt.Fprintf(h.out, "background: %s\n", h.palette.Pick())
	return nil
}
