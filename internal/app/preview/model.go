package preview

import (
	"fmt"
	"io"
	"sync"
)

type Preview struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
}

func (p Preview) String() string {
	return fmt.Sprintf("%s (%s %dx%d, %d bytes)", p.Name, p.Format, p.Width, p.Height, p.Size)
}

// Gallery is the preview region. Clear starts a new generation so results
// from tasks started before the clear are dropped.
type Gallery struct {
	mu         sync.Mutex
	items      []Preview
	generation uint64
}

func NewGallery() *Gallery {
	return &Gallery{}
}

func (g *Gallery) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.items = nil
	g.generation++
}

func (g *Gallery) Items() []Preview {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Preview(nil), g.items...)
}

func (g *Gallery) Render(w io.Writer) {
	for _, p := range g.Items() {
		fmt.Fprintf(w, "  %s\n", p)
	}
}

func (g *Gallery) current() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generation
}

func (g *Gallery) append(gen uint64, p Preview) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.generation {
		return false
	}
	g.items = append(g.items, p)
	return true
}
