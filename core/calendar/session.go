package calendar

import (
	"sync"
	"time"

	"github.com/codo-ajmalnk/evoka-admin/core"
	"github.com/codo-ajmalnk/evoka-admin/core/task"
)

// Session is the navigation state of one calendar: the active view mode,
// the anchor date driving the derived windows, and the explicit range
// used by the custom mode. The viewing identity is injected once at
// construction and trusted verbatim.
type Session struct {
	viewer   task.Viewer
	svc      *task.Service
	notifier core.Notifier

	highlight *Highlighter
	debounce  *core.Debouncer

	mode   ViewMode
	anchor time.Time
	// stickyDay is the day-of-month the user last explicitly landed on.
	// Month and year steps clamp it to the target month when materializing
	// the anchor but never forget it, so stepping forward and back always
	// restores the original date even across short months.
	stickyDay int
	custom    Range

	mu     sync.Mutex
	search string

	now func() time.Time // swappable for tests
}

func NewSession(viewer task.Viewer, svc *task.Service, notifier core.Notifier, conf *core.Config) *Session {
	s := &Session{
		viewer:    viewer,
		svc:       svc,
		notifier:  notifier,
		highlight: NewHighlighter(conf),
		debounce:  core.NewDebouncer(conf.SearchDebounceDelay),
		mode:      ViewMonthly,
		now:       time.Now,
	}
	today := core.BeginningOfDay(s.now())
	s.setAnchor(today)
	s.custom = Range{Start: today, End: today.AddDate(0, 0, 6)}
	return s
}

func (s *Session) Viewer() task.Viewer       { return s.viewer }
func (s *Session) Mode() ViewMode            { return s.mode }
func (s *Session) Anchor() time.Time         { return s.anchor }
func (s *Session) CustomRange() Range        { return s.custom }
func (s *Session) Highlighter() *Highlighter { return s.highlight }
func (s *Session) SetMode(mode ViewMode)     { s.mode = mode }

func (s *Session) setAnchor(t time.Time) {
	s.anchor = core.BeginningOfDay(t)
	s.stickyDay = t.Day()
}

// Window returns the dates currently rendered.
func (s *Session) Window() []time.Time {
	return Window(s.mode, s.anchor, s.custom)
}

// Title returns the heading for the current window.
func (s *Session) Title() string {
	return Title(s.mode, s.anchor, s.custom)
}

// Cells returns the current window with the viewer-visible tasks bound to
// their due-date cells, filtered by the active search term if any.
// Visibility is re-derived from the store on every call.
func (s *Session) Cells() ([]Cell, error) {
	tasks, err := s.svc.QueryVisible(s.viewer)
	if err != nil {
		return nil, err
	}
	if term := s.searchTerm(); term != "" {
		qf := task.QueryFilter{Search: term}
		matched := make([]task.Task, 0, len(tasks))
		for _, t := range tasks {
			if qf.Match(t) {
				matched = append(matched, t)
			}
		}
		tasks = matched
	}
	return Cells(s.mode, s.anchor, s.custom, tasks), nil
}

// Next advances the window by one mode-specific step.
func (s *Session) Next() { s.step(1) }

// Previous retreats the window by one mode-specific step.
func (s *Session) Previous() { s.step(-1) }

func (s *Session) step(direction int) {
	switch s.mode {
	case ViewWeekly:
		s.setAnchor(s.anchor.AddDate(0, 0, 7*direction))
	case ViewMonthly:
		s.stepMonths(direction)
	case ViewQuarterly:
		s.stepMonths(3 * direction)
	case ViewYearly:
		s.stepMonths(12 * direction)
	case ViewCustom:
		// the window slides; its width is preserved
		s.custom.Start = s.custom.Start.AddDate(0, 0, 7*direction)
		s.custom.End = s.custom.End.AddDate(0, 0, 7*direction)
	}
}

// stepMonths moves the anchor n calendar months, clamping the sticky day
// to the target month's length.
func (s *Session) stepMonths(n int) {
	first := time.Date(s.anchor.Year(), s.anchor.Month(), 1, 0, 0, 0, 0, s.anchor.Location())
	first = first.AddDate(0, n, 0)
	day := s.stickyDay
	if max := daysInMonth(first); day > max {
		day = max
	}
	s.anchor = time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, first.Location())
}

// GoToToday re-anchors the view on the current date. In custom mode the
// range slides by the whole-day distance from its start to today, keeping
// its width, so that today lands inside the visible window.
func (s *Session) GoToToday() {
	today := core.BeginningOfDay(s.now())
	if s.mode == ViewCustom {
		delta := core.DaysBetween(s.custom.Start, today)
		s.custom.Start = s.custom.Start.AddDate(0, 0, delta)
		s.custom.End = s.custom.End.AddDate(0, 0, delta)
	}
	s.setAnchor(today)
}

// JumpToToday is GoToToday plus the transient highlight on today's cell.
func (s *Session) JumpToToday() {
	s.GoToToday()
	s.highlight.Flash(core.BeginningOfDay(s.now()))
}

// SetCustomRange installs a new explicit range for the custom view.
// A range whose start is after its end is rejected: the current range is
// left untouched and the failure is surfaced through the notifier.
func (s *Session) SetCustomRange(rng Range) error {
	if err := rng.Validate(); err != nil {
		s.notifier.Notify(core.ErrorNotice("Invalid date range", "The start date must be on or before the end date."))
		return err
	}
	s.custom = rng
	return nil
}

// KeyEvent is a keyboard press forwarded by the host view.
type KeyEvent struct {
	Key  string
	Ctrl bool
	Meta bool
}

// HandleKey maps the unmodified T key to JumpToToday. Presses with
// Ctrl/Cmd held are left to the browser. Returns whether the key was
// consumed.
func (s *Session) HandleKey(ev KeyEvent) bool {
	if ev.Ctrl || ev.Meta {
		return false
	}
	switch ev.Key {
	case "t", "T":
		s.JumpToToday()
		return true
	}
	return false
}

// Search installs a task search term after the debounce delay, so typing
// does not recompute the view on every keystroke. An empty term clears
// the filter.
func (s *Session) Search(term string) {
	s.debounce.Call(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.search = core.CleanString(term)
	})
}

func (s *Session) searchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// Close releases the session's timers.
func (s *Session) Close() {
	s.debounce.Stop()
	s.highlight.Close()
}
