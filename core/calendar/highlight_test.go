package calendar

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	testutil "github.com/codo-ajmalnk/evoka-admin/tests"
)

func TestHighlighter_flashAndAutoClear(t *testing.T) {
	h := NewHighlighter(testutil.NewConfig())
	defer h.Close()

	day := date(2025, time.June, 18)
	h.Flash(day)

	// nothing is highlighted until the view has settled
	assert.Empty(t, h.Active())

	time.Sleep(15 * time.Millisecond)
	assert.True(t, h.IsHighlighted(day))
	assert.Equal(t, "2025-06-18", h.Active())

	// the highlight clears itself after the delay
	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, h.Active())
}

func TestHighlighter_secondFlashRestartsTimer(t *testing.T) {
	h := NewHighlighter(testutil.NewConfig())
	defer h.Close()

	h.Flash(date(2025, time.June, 18))
	time.Sleep(15 * time.Millisecond) // first highlight active, clear pending

	h.Flash(date(2025, time.June, 19))
	time.Sleep(15 * time.Millisecond)

	// the second flash owns the highlight; the first clear timer must not
	// be able to remove it prematurely
	assert.Equal(t, "2025-06-19", h.Active())

	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, h.Active())
}

func TestHighlighter_scrollCallback(t *testing.T) {
	h := NewHighlighter(testutil.NewConfig())
	defer h.Close()

	var (
		mu   sync.Mutex
		keys []string
	)
	h.SetScrollFunc(func(key string) {
		mu.Lock()
		defer mu.Unlock()
		keys = append(keys, key)
	})

	h.Flash(date(2025, time.June, 18))
	time.Sleep(15 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"2025-06-18"}, keys)
}

func TestHighlighter_closeCancelsPending(t *testing.T) {
	h := NewHighlighter(testutil.NewConfig())

	h.Flash(date(2025, time.June, 18))
	h.Close()

	time.Sleep(15 * time.Millisecond)
	assert.Empty(t, h.Active())
}
