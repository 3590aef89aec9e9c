package dummynotif

import (
	"sync"

	"github.com/codo-ajmalnk/evoka-admin/core"
)

var (
	SentNotices = make([]core.Notice, 0)
	mu          sync.Mutex
)

type service struct{}

var _ core.Notifier = (*service)(nil)

// NewService returns a Notifier that only records notices in SentNotices,
// for use in tests.
func NewService() core.Notifier {
	return &service{}
}

func (svc service) Notify(notices ...core.Notice) {
	mu.Lock()
	defer mu.Unlock()
	SentNotices = append(SentNotices, notices...)
}

// Reset clears the recorded notices.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	SentNotices = SentNotices[:0]
}

// Sent returns a copy of the recorded notices.
func Sent() []core.Notice {
	mu.Lock()
	defer mu.Unlock()
	notices := make([]core.Notice, len(SentNotices))
	copy(notices, SentNotices)
	return notices
}
