package effects

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"imgdrop/internal/app/status"
)

// Counter counts clicks. Its state belongs to the instance.
type Counter struct {
	mu    sync.Mutex
	count int
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Increment() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	return c.count
}

func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func (c *Counter) Text() string {
	return fmt.Sprintf("clicks: %d", c.Count())
}

const ClockLayout = "2006/01/02 15:04:05"

// Clock shows the current time through a status region, which hides it
// again after its clear delay.
type Clock struct {
	reporter status.Reporter
	now      func() time.Time
}

func NewClock(reporter status.Reporter, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{reporter: reporter, now: now}
}

func (c *Clock) Show() string {
	text := "current time: " + c.now().Format(ClockLayout)
	c.reporter.Show(status.Info(text))
	return text
}

var Gradients = []string{
	"linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
	"linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
	"linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
	"linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)",
	"linear-gradient(135deg, #fa709a 0%, #fee140 100%)",
}

type Palette struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPalette(rng *rand.Rand) *Palette {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	return &Palette{rng: rng}
}

// Pick returns a random background gradient.
func (p *Palette) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Gradients[p.rng.IntN(len(Gradients))]
}
