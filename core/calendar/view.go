package calendar

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/codo-ajmalnk/evoka-admin/core"
	"github.com/codo-ajmalnk/evoka-admin/core/task"
)

// ViewMode selects how the visible date window is derived.
type ViewMode string

const (
	ViewWeekly    ViewMode = "weekly"
	ViewMonthly   ViewMode = "monthly"
	ViewQuarterly ViewMode = "quarterly"
	ViewYearly    ViewMode = "yearly"
	ViewCustom    ViewMode = "custom"
)

// Range is an explicit (start, end) date pair driving the custom view.
// Time-of-day components are allowed but ignored by window computation.
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) Validate() error {
	if core.BeginningOfDay(r.Start).After(core.BeginningOfDay(r.End)) {
		return core.NewValidationError(
			errors.New("invalid date range"),
			core.FieldError{Field: "start", Error: "start date must not be after end date"},
		)
	}
	return nil
}

// Window computes the ordered sequence of calendar days to display.
// Every returned time is midnight in the anchor's (or range's) location.
//
//	weekly     Monday through Sunday of the week containing anchor
//	monthly    first through last day of the anchor's month
//	quarterly  the 3-month block Jan-Mar / Apr-Jun / Jul-Sep / Oct-Dec containing anchor
//	yearly     Jan 1 through Dec 31 of the anchor's year
//	custom     rng.Start through rng.End inclusive
func Window(mode ViewMode, anchor time.Time, rng Range) []time.Time {
	switch mode {
	case ViewWeekly:
		return days(weekStart(anchor), 7)
	case ViewMonthly:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return days(first, daysInMonth(first))
	case ViewQuarterly:
		first := quarterStart(anchor)
		n := 0
		for i := 0; i < 3; i++ {
			n += daysInMonth(first.AddDate(0, i, 0))
		}
		return days(first, n)
	case ViewYearly:
		first := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, anchor.Location())
		n := time.Date(anchor.Year(), time.December, 31, 0, 0, 0, 0, anchor.Location()).YearDay()
		return days(first, n)
	case ViewCustom:
		start := core.BeginningOfDay(rng.Start)
		end := core.BeginningOfDay(rng.End)
		if start.After(end) {
			return nil
		}
		return days(start, core.DaysBetween(start, end)+1)
	default:
		return nil
	}
}

// Title renders the user-visible heading for the current window.
func Title(mode ViewMode, anchor time.Time, rng Range) string {
	switch mode {
	case ViewWeekly:
		start := weekStart(anchor)
		end := start.AddDate(0, 0, 6)
		return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
	case ViewMonthly:
		return anchor.Format("January 2006")
	case ViewQuarterly:
		start := quarterStart(anchor)
		end := start.AddDate(0, 2, 0)
		q := int(anchor.Month()-1)/3 + 1
		return fmt.Sprintf("Q%d %d (%s - %s)", q, anchor.Year(), start.Format("Jan"), end.Format("Jan"))
	case ViewYearly:
		return anchor.Format("2006")
	case ViewCustom:
		return rng.Start.Format("Jan 2") + " - " + rng.End.Format("Jan 2, 2006")
	default:
		return ""
	}
}

// Cell is one rendered calendar day and the tasks due on it.
type Cell struct {
	Date time.Time
	// InAnchorMonth marks days inside the anchor's month; the yearly view
	// de-emphasizes the rest but still renders them.
	InAnchorMonth bool
	Tasks         []task.Task
}

// Key returns the yyyy-MM-dd string identifying this cell.
func (c Cell) Key() string {
	return core.FormatDay(c.Date)
}

// Preview returns the first n tasks in stored order plus the count of
// tasks beyond those.
func (c Cell) Preview(n int) ([]task.Task, int) {
	if len(c.Tasks) <= n {
		return c.Tasks, 0
	}
	return c.Tasks[:n], len(c.Tasks) - n
}

// Cells binds tasks to the window's days by due date. A task lands in the
// cell whose date equals its due date's calendar day; tasks whose due
// dates fall outside the window (or do not parse) appear nowhere.
func Cells(mode ViewMode, anchor time.Time, rng Range, tasks []task.Task) []Cell {
	window := Window(mode, anchor, rng)
	cells := make([]Cell, 0, len(window))
	for _, day := range window {
		cells = append(cells, Cell{
			Date:          day,
			InAnchorMonth: day.Month() == anchor.Month(),
			Tasks:         TasksForDate(tasks, day),
		})
	}
	return cells
}

// TasksForDate selects the tasks due on the given calendar day,
// preserving their stored order.
func TasksForDate(tasks []task.Task, day time.Time) []task.Task {
	due := make([]task.Task, 0)
	for _, t := range tasks {
		if t.IsDueOn(day) {
			due = append(due, t)
		}
	}
	return due
}

// weekStart returns the Monday of the week containing t (weeks start
// Monday, not Sunday).
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return core.BeginningOfDay(t).AddDate(0, 0, -offset)
}

// quarterStart returns the first day of the calendar quarter containing t.
func quarterStart(t time.Time) time.Time {
	m := int(t.Month()) - 1 // 0-indexed
	return time.Date(t.Year(), time.Month(m-m%3+1), 1, 0, 0, 0, 0, t.Location())
}

func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}

func days(start time.Time, n int) []time.Time {
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}
