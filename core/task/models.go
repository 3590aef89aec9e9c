package task

import (
	"time"

	"github.com/codo-ajmalnk/evoka-admin/core"
)

// Roles
//
// Role is a closed enumeration: every role the application knows is
// listed here and every visibility decision switches over it exhaustively.
// Unknown role strings parse to the zero Role and get the default
// (full-collection) visibility, matching the host application's fallback.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleTutor     Role = "tutor"
	RoleExecutive Role = "executive"
	RoleHR        Role = "hr"
)

var AllRoles = []Role{RoleAdmin, RoleManager, RoleTutor, RoleExecutive, RoleHR}

func ParseRole(s string) Role {
	r := Role(core.CleanString(s, true /* lower */))
	for _, known := range AllRoles {
		if r == known {
			return known
		}
	}
	return Role("")
}

// Viewer identifies who is looking at the calendar. It is supplied by the
// host application at construction time and trusted verbatim.
type Viewer struct {
	UserID string `json:"userId"`
	Role   Role   `json:"userRole"`
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var AllPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

type Category string

const (
	CategoryAcademic       Category = "academic"
	CategoryAdministrative Category = "administrative"
	CategoryTraining       Category = "training"
	CategoryOther          Category = "other"
)

var AllCategories = []Category{CategoryAcademic, CategoryAdministrative, CategoryTraining, CategoryOther}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
)

var AllStatuses = []Status{StatusPending, StatusInProgress, StatusCompleted, StatusOverdue}

// Status transitions are caller-driven only: nothing in this package ages
// a pending task into overdue. The calendar displays whatever is stored.

// DefaultDueTime is applied when a task is created without one.
const DefaultDueTime = "09:00"

type Task struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	AssignedTo     string    `json:"assignedTo"`
	AssignedBy     string    `json:"assignedBy"`
	AssignedByName string    `json:"assignedByName,omitempty"`
	DueDate        string    `json:"dueDate"` // yyyy-MM-dd; the only field the calendar indexes on
	DueTime        string    `json:"dueTime"` // HH:mm
	Priority       Priority  `json:"priority"`
	Category       Category  `json:"category"`
	Status         Status    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"` // UTC
	UpdatedAt      time.Time `json:"updatedAt"` // UTC
}

// DueDay parses the task's due date into a calendar day.
func (t Task) DueDay() (time.Time, error) {
	return core.ParseDay(t.DueDate)
}

// IsDueOn reports whether the task falls on the given calendar day.
// Tasks with unparsable due dates never match.
func (t Task) IsDueOn(day time.Time) bool {
	due, err := t.DueDay()
	if err != nil {
		return false
	}
	return core.SameDay(due, day)
}

// NewTask contains information needed to create a new Task.
type NewTask struct {
	Title          string   `json:"title" validate:"required,notblank"`
	Description    string   `json:"description"`
	AssignedTo     string   `json:"assignedTo"`
	AssignedBy     string   `json:"assignedBy"`
	AssignedByName string   `json:"assignedByName"`
	DueDate        string   `json:"dueDate" validate:"required,isodate"`
	DueTime        string   `json:"dueTime" validate:"omitempty,hhmm"`
	Priority       Priority `json:"priority" validate:"omitempty,taskpriority"`
	Category       Category `json:"category" validate:"omitempty,taskcategory"`
	Status         Status   `json:"status" validate:"omitempty,taskstatus"`
	Notes          string   `json:"notes"`
}

func (nt *NewTask) Validate() error {
	nt.Title = core.CleanString(nt.Title)
	nt.DueDate = core.CleanString(nt.DueDate)
	nt.DueTime = core.CleanString(nt.DueTime)
	return core.Validate.Struct(nt)
}

// UpdateTask defines what information may be provided to modify an existing
// Task. Empty fields keep the original values.
type UpdateTask struct {
	Title          string   `json:"title" validate:"required,notblank"`
	Description    string   `json:"description"`
	AssignedTo     string   `json:"assignedTo"`
	AssignedBy     string   `json:"assignedBy"`
	AssignedByName string   `json:"assignedByName"`
	DueDate        string   `json:"dueDate" validate:"omitempty,isodate"`
	DueTime        string   `json:"dueTime" validate:"omitempty,hhmm"`
	Priority       Priority `json:"priority" validate:"omitempty,taskpriority"`
	Category       Category `json:"category" validate:"omitempty,taskcategory"`
	Status         Status   `json:"status" validate:"omitempty,taskstatus"`
	Notes          string   `json:"notes"`
}

func (ut *UpdateTask) Validate(origTask Task) error {
	title := core.CleanString(ut.Title)
	if title != "" {
		ut.Title = title
	} else {
		ut.Title = origTask.Title
	}

	dueDate := core.CleanString(ut.DueDate)
	if dueDate != "" {
		ut.DueDate = dueDate
	} else {
		ut.DueDate = origTask.DueDate
	}

	if ut.DueTime = core.CleanString(ut.DueTime); ut.DueTime == "" {
		ut.DueTime = origTask.DueTime
	}
	if ut.Priority == "" {
		ut.Priority = origTask.Priority
	}
	if ut.Category == "" {
		ut.Category = origTask.Category
	}
	if ut.Status == "" {
		ut.Status = origTask.Status
	}

	return core.Validate.Struct(ut)
}

// QueryFilter narrows a task query. All set fields are ANDed.
// Search does a case-insensitive match on Title, Description or Notes.
type QueryFilter struct {
	Search     string
	Statuses   []Status
	Priorities []Priority
	Categories []Category
	AssignedTo string
	DueFrom    time.Time
	DueTo      time.Time
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Statuses == nil && qf.Priorities == nil && qf.Categories == nil &&
		qf.AssignedTo == "" && qf.DueFrom.IsZero() && qf.DueTo.IsZero()
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
