package calendar

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/codo-ajmalnk/evoka-admin/core"
	"github.com/codo-ajmalnk/evoka-admin/core/task"
)

// Confirmer blocks until the user answers a yes/no prompt. Destructive
// actions never proceed on a single click.
type Confirmer func(prompt string) bool

// EventForm carries the editable fields of the task dialog. On create the
// due date comes from the cell the user clicked, never from the form; on
// edit the due date and ownership fields are left untouched.
type EventForm struct {
	Title       string
	Description string
	DueTime     string
	Priority    task.Priority
	Category    task.Category
	Status      task.Status
	Notes       string
}

// Editor drives the create/edit/delete dialog for a single task and
// translates its fields into store operations.
type Editor struct {
	svc      *task.Service
	notifier core.Notifier
	viewer   task.Viewer
	confirm  Confirmer

	editing    *task.Task
	targetDate time.Time
	open       bool
}

func NewEditor(svc *task.Service, notifier core.Notifier, viewer task.Viewer, confirm Confirmer) *Editor {
	return &Editor{svc: svc, notifier: notifier, viewer: viewer, confirm: confirm}
}

// OpenCreate opens the dialog in create mode for the given calendar day.
func (e *Editor) OpenCreate(date time.Time) {
	e.editing = nil
	e.targetDate = core.BeginningOfDay(date)
	e.open = true
}

// OpenEdit opens the dialog on an existing task.
func (e *Editor) OpenEdit(t task.Task) {
	e.editing = &t
	e.targetDate = time.Time{}
	e.open = true
}

func (e *Editor) IsOpen() bool { return e.open }

// Editing returns the task being edited, or nil in create mode.
func (e *Editor) Editing() *task.Task { return e.editing }

// CanDelete reports whether the delete affordance is visible: edit mode
// only, and only for admin and HR viewers.
func (e *Editor) CanDelete() bool {
	return e.editing != nil && (e.viewer.Role == task.RoleAdmin || e.viewer.Role == task.RoleHR)
}

// Submit validates the form and commits it to the store. A blank title
// aborts before any store call and keeps the dialog open. Any failure on
// the commit path is surfaced through the notifier; the dialog closes and
// resets its editing pointers whether the commit succeeded or not.
func (e *Editor) Submit(form EventForm) error {
	if !e.open {
		return nil
	}

	title := core.CleanString(form.Title)
	if title == "" {
		err := core.NewValidationError(
			errors.New("title is required"),
			core.FieldError{Field: "title", Error: "this field cannot be blank"},
		)
		e.notifier.Notify(core.ErrorNotice("Title is required", "Give the task a title before saving."))
		return err
	}

	defer e.reset()

	if e.editing == nil {
		return e.create(title, form)
	}
	return e.update(*e.editing, title, form)
}

func (e *Editor) create(title string, form EventForm) error {
	nt := task.NewTask{
		Title:       title,
		Description: form.Description,
		AssignedTo:  e.viewer.UserID,
		AssignedBy:  e.viewer.UserID,
		DueDate:     core.FormatDay(e.targetDate),
		DueTime:     form.DueTime,
		Priority:    form.Priority,
		Category:    form.Category,
		Status:      task.StatusPending,
		Notes:       form.Notes,
	}
	if err := nt.Validate(); err != nil {
		e.notifier.Notify(core.ErrorNotice("Could not create task", validationDetail(err)))
		return err
	}
	if _, err := e.svc.Create(nt); err != nil {
		e.notifier.Notify(core.ErrorNotice("Could not create task", "Something went wrong while saving the task."))
		return err
	}
	e.notifier.Notify(core.SuccessNotice("Task created", title))
	return nil
}

func (e *Editor) update(orig task.Task, title string, form EventForm) error {
	ut := task.UpdateTask{
		Title:       title,
		Description: form.Description,
		DueTime:     form.DueTime,
		Priority:    form.Priority,
		Category:    form.Category,
		Status:      form.Status,
		Notes:       form.Notes,
	}
	if err := ut.Validate(orig); err != nil {
		e.notifier.Notify(core.ErrorNotice("Could not update task", validationDetail(err)))
		return err
	}
	if _, err := e.svc.Update(orig.ID, ut); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			// the task was deleted underneath us; treat as a benign no-op
			return nil
		}
		e.notifier.Notify(core.ErrorNotice("Could not update task", "Something went wrong while saving the task."))
		return err
	}
	e.notifier.Notify(core.SuccessNotice("Task updated", ut.Title))
	return nil
}

// Delete removes the task being edited after an explicit confirmation.
// It is a no-op outside edit mode, for viewers without the delete role,
// and when the confirmation is declined (the dialog then stays open).
func (e *Editor) Delete() error {
	if !e.open || !e.CanDelete() {
		return nil
	}
	if !e.confirm("Delete this task?") {
		return nil
	}

	defer e.reset()

	title := e.editing.Title
	if err := e.svc.Delete(e.editing.ID); err != nil {
		e.notifier.Notify(core.ErrorNotice("Could not delete task", "Something went wrong while deleting the task."))
		return err
	}
	e.notifier.Notify(core.SuccessNotice("Task deleted", title))
	return nil
}

// Close dismisses the dialog without committing anything.
func (e *Editor) Close() {
	e.reset()
}

func (e *Editor) reset() {
	e.editing = nil
	e.targetDate = time.Time{}
	e.open = false
}

// validationDetail renders a validation failure as a short user-facing line.
func validationDetail(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		flds := core.TranslateValidatorErrors(vErrs)
		parts := make([]string, 0, len(flds))
		for _, fld := range flds {
			parts = append(parts, fld.Field+": "+fld.Error)
		}
		return strings.Join(parts, "; ")
	}
	return "The task could not be saved. Please check the form and try again."
}
