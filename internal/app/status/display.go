package status

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const DefaultClearDelay = 3 * time.Second

// Display is a single status region. A new message replaces the current one
// and hides itself after the clear delay unless it has been replaced.
type Display struct {
	out   io.Writer
	delay time.Duration

	mu         sync.Mutex
	current    Message
	visible    bool
	generation uint64
	timers     map[uint64]*time.Timer
	closed     bool
}

func NewDisplay(out io.Writer, delay time.Duration) *Display {
	if delay <= 0 {
		delay = DefaultClearDelay
	}
	return &Display{
		out:    out,
		delay:  delay,
		timers: make(map[uint64]*time.Timer),
	}
}

func (d *Display) Show(msg Message) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.generation++
	gen := d.generation
	d.current = msg
	d.visible = true

	if d.out != nil {
		fmt.Fprintf(d.out, "[%s] %s\n", msg.Kind, msg.Text)
	}

	d.timers[gen] = time.AfterFunc(d.delay, func() {
		d.hide(gen)
	})
}

func (d *Display) hide(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.timers, gen)
	if gen == d.generation {
		d.visible = false
	}
}

// Current returns the last message shown and whether it is still visible.
func (d *Display) Current() (Message, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current, d.visible
}

func (d *Display) Visible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible
}

// Close stops pending clear timers and ignores later messages.
func (d *Display) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for gen, t := range d.timers {
		t.Stop()
		delete(d.timers, gen)
	}
	d.closed = true
	d.visible = false
}
