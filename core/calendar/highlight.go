package calendar

import (
	"sync"
	"time"

	"github.com/codo-ajmalnk/evoka-admin/core"
)

// Highlighter holds the transient "jump to today" marker for a single
// calendar cell, keyed by its yyyy-MM-dd string.
//
// Flash waits for the view to settle, scrolls the cell into view, turns
// the highlight on and schedules its auto-clear. Invocations are
// last-call-wins: flashing again before the previous highlight clears
// restarts the whole sequence, and the superseded timers can never clear
// the newer highlight.
type Highlighter struct {
	mu          sync.Mutex
	settleDelay time.Duration
	clearDelay  time.Duration

	active      string
	generation  uint64
	settleTimer *time.Timer
	clearTimer  *time.Timer

	// scrollFn is invoked once the highlight activates, so the host view
	// can bring the cell into the viewport. Optional.
	scrollFn func(key string)
}

func NewHighlighter(conf *core.Config) *Highlighter {
	return &Highlighter{
		settleDelay: conf.HighlightSettleDelay,
		clearDelay:  conf.HighlightClearDelay,
	}
}

func (h *Highlighter) SetScrollFunc(fn func(key string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.scrollFn = fn
}

// Flash starts the highlight sequence for the given day.
func (h *Highlighter) Flash(day time.Time) {
	key := core.FormatDay(day)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.generation++
	gen := h.generation
	h.stopTimers()
	h.settleTimer = time.AfterFunc(h.settleDelay, func() { h.activate(gen, key) })
}

func (h *Highlighter) activate(gen uint64, key string) {
	h.mu.Lock()
	if gen != h.generation {
		h.mu.Unlock()
		return
	}
	h.active = key
	h.clearTimer = time.AfterFunc(h.clearDelay, func() { h.clear(gen) })
	scrollFn := h.scrollFn
	h.mu.Unlock()

	if scrollFn != nil {
		scrollFn(key)
	}
}

func (h *Highlighter) clear(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if gen != h.generation {
		return
	}
	h.active = ""
}

// Active returns the currently highlighted cell key, or "".
func (h *Highlighter) Active() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// IsHighlighted reports whether the given day currently carries the marker.
func (h *Highlighter) IsHighlighted(day time.Time) bool {
	return h.Active() == core.FormatDay(day)
}

// Close cancels pending timers and drops any active highlight.
func (h *Highlighter) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.generation++
	h.stopTimers()
	h.active = ""
}

// stopTimers must be called with the lock held.
func (h *Highlighter) stopTimers() {
	if h.settleTimer != nil {
		h.settleTimer.Stop()
		h.settleTimer = nil
	}
	if h.clearTimer != nil {
		h.clearTimer.Stop()
		h.clearTimer = nil
	}
}
