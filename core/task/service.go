package task

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codo-ajmalnk/evoka-admin/core"
)

var (
	// errors
	ErrNotFound = errors.New("task not found")
)

type (
	Repository interface {
		CreateTask(t Task) (Task, error)
		QueryAllTasks() ([]Task, error)
		GetTaskByID(id string) (Task, error)
		// GetTasksByAssignee returns tasks whose AssignedTo matches userID.
		GetTasksByAssignee(userID string) ([]Task, error)
		// FilterTasks applies AND operation on available QueryFilter fields.
		FilterTasks(filter QueryFilter) ([]Task, error)
		// UpdateTask merges the set fields of t into the stored task matching
		// t.ID; returns ErrNotFound when no task matches.
		UpdateTask(t Task) (Task, error)
		// DeleteTasks removes the tasks matching ids; missing ids are ignored.
		DeleteTasks(ids ...string) error
	}

	Service struct {
		repo Repository
		//log core.Logger
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nt NewTask) (Task, error) {
	now := time.Now().UTC()
	t := Task{
		ID:             uuid.NewString(),
		Title:          nt.Title,
		Description:    nt.Description,
		AssignedTo:     nt.AssignedTo,
		AssignedBy:     nt.AssignedBy,
		AssignedByName: nt.AssignedByName,
		DueDate:        nt.DueDate,
		DueTime:        nt.DueTime,
		Priority:       nt.Priority,
		Category:       nt.Category,
		Status:         nt.Status,
		Notes:          nt.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if t.DueTime == "" {
		t.DueTime = DefaultDueTime
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Category == "" {
		t.Category = CategoryOther
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	return svc.repo.CreateTask(t)
}

func (svc *Service) QueryAll() ([]Task, error) {
	return svc.repo.QueryAllTasks()
}

func (svc *Service) GetByID(id string) (Task, error) {
	return svc.repo.GetTaskByID(id)
}

func (svc *Service) QueryByAssignee(userID string) ([]Task, error) {
	return svc.repo.GetTasksByAssignee(userID)
}

func (svc *Service) Filter(filter QueryFilter) ([]Task, error) {
	filter.Clean()
	return svc.repo.FilterTasks(filter)
}

func (svc *Service) Update(id string, ut UpdateTask) (Task, error) {
	t := Task{
		ID:             id,
		Title:          ut.Title,
		Description:    ut.Description,
		AssignedTo:     ut.AssignedTo,
		AssignedBy:     ut.AssignedBy,
		AssignedByName: ut.AssignedByName,
		DueDate:        ut.DueDate,
		DueTime:        ut.DueTime,
		Priority:       ut.Priority,
		Category:       ut.Category,
		Status:         ut.Status,
		Notes:          ut.Notes,
		UpdatedAt:      time.Now().UTC(),
	}
	return svc.repo.UpdateTask(t)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteTasks(ids...)
}

// QueryVisible returns the tasks the viewer's role may see,
// re-derived from the store on every call.
func (svc *Service) QueryVisible(viewer Viewer) ([]Task, error) {
	if viewer.Role == RoleTutor {
		return svc.repo.GetTasksByAssignee(viewer.UserID)
	}
	tasks, err := svc.repo.QueryAllTasks()
	if err != nil {
		return nil, err
	}
	return VisibleTo(tasks, viewer), nil
}

// QueryForDate returns the viewer-visible tasks due on the given calendar day.
func (svc *Service) QueryForDate(viewer Viewer, day time.Time) ([]Task, error) {
	tasks, err := svc.QueryVisible(viewer)
	if err != nil {
		return nil, err
	}
	due := make([]Task, 0)
	for _, t := range tasks {
		if t.IsDueOn(day) {
			due = append(due, t)
		}
	}
	return due, nil
}

// Match reports whether t satisfies every set field of the filter.
func (qf QueryFilter) Match(t Task) bool {
	if qf.Search != "" {
		needle := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) &&
			!strings.Contains(strings.ToLower(t.Notes), needle) {
			return false
		}
	}
	if qf.Statuses != nil && !containsStatus(qf.Statuses, t.Status) {
		return false
	}
	if qf.Priorities != nil && !containsPriority(qf.Priorities, t.Priority) {
		return false
	}
	if qf.Categories != nil && !containsCategory(qf.Categories, t.Category) {
		return false
	}
	if qf.AssignedTo != "" && t.AssignedTo != qf.AssignedTo {
		return false
	}
	if !qf.DueFrom.IsZero() || !qf.DueTo.IsZero() {
		due, err := t.DueDay()
		if err != nil {
			return false
		}
		if !qf.DueFrom.IsZero() && due.Before(core.BeginningOfDay(qf.DueFrom)) {
			return false
		}
		if !qf.DueTo.IsZero() && due.After(core.BeginningOfDay(qf.DueTo)) {
			return false
		}
	}
	return true
}

func containsStatus(ss []Status, s Status) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

func containsPriority(ps []Priority, p Priority) bool {
	for _, x := range ps {
		if x == p {
			return true
		}
	}
	return false
}

func containsCategory(cs []Category, c Category) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
