package calendar

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/codo-ajmalnk/evoka-admin/core"
	"github.com/codo-ajmalnk/evoka-admin/core/task"
	dummynotif "github.com/codo-ajmalnk/evoka-admin/services/notification/dummy"
	inmemdb "github.com/codo-ajmalnk/evoka-admin/storage/database/inmem"
	testutil "github.com/codo-ajmalnk/evoka-admin/tests"
)

func newEditor(t *testing.T, viewer task.Viewer, confirmAnswer bool) (*Editor, *task.Service, task.Repository) {
	t.Helper()
	dummynotif.Reset()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	repo := inmemdb.NewTaskRepository(db)
	svc := task.NewService(repo)
	confirm := func(string) bool { return confirmAnswer }
	return NewEditor(svc, dummynotif.NewService(), viewer, confirm), svc, repo
}

func taskCount(t *testing.T, repo task.Repository) int {
	t.Helper()
	tasks, err := repo.QueryAllTasks()
	if err != nil {
		t.Fatalf("QueryAllTasks() failed: %v", err)
	}
	return len(tasks)
}

func TestEditor_blankTitleNeverTouchesStore(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"empty", ""},
		{"whitespace only", "   \t "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, repo := newEditor(t, task.Viewer{UserID: "U1", Role: task.RoleAdmin}, true)
			e.OpenCreate(date(2025, time.June, 1))

			err := e.Submit(EventForm{Title: tt.title})

			assert.Error(t, err)
			assert.Equal(t, 0, taskCount(t, repo))
			assert.True(t, e.IsOpen(), "dialog must stay open")

			notices := dummynotif.Sent()
			if assert.Len(t, notices, 1) {
				assert.Equal(t, core.NoticeError, notices[0].Kind)
			}
		})
	}
}

func TestEditor_blankTitleOnEditNeverTouchesStore(t *testing.T) {
	e, svc, repo := newEditor(t, task.Viewer{UserID: "U1", Role: task.RoleAdmin}, true)
	existing := testutil.CreateTask(t, repo, "keep me", "U1", "U1", task.CategoryOther, "2025-06-01")
	e.OpenEdit(existing)

	err := e.Submit(EventForm{Title: "  "})

	assert.Error(t, err)
	assert.True(t, e.IsOpen())

	got, err := svc.GetByID(existing.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "keep me", got.Title)
	}
}

func TestEditor_createDefaults(t *testing.T) {
	viewer := task.Viewer{UserID: "U7", Role: task.RoleManager}
	e, svc, _ := newEditor(t, viewer, true)
	target := date(2025, time.June, 1)
	e.OpenCreate(target)

	err := e.Submit(EventForm{Title: "  Plan orientation  "})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	assert.False(t, e.IsOpen())

	tasks, err := svc.QueryForDate(viewer, target)
	if assert.NoError(t, err) && assert.Len(t, tasks, 1) {
		got := tasks[0]
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "Plan orientation", got.Title)
		assert.Equal(t, "2025-06-01", got.DueDate) // from the clicked cell, not the form
		assert.Equal(t, "U7", got.AssignedTo)
		assert.Equal(t, "U7", got.AssignedBy)
		assert.Equal(t, task.StatusPending, got.Status)
		assert.Equal(t, task.DefaultDueTime, got.DueTime)
		assert.Equal(t, task.PriorityMedium, got.Priority)
		assert.Equal(t, task.CategoryOther, got.Category)
	}

	notices := dummynotif.Sent()
	if assert.Len(t, notices, 1) {
		assert.Equal(t, core.NoticeSuccess, notices[0].Kind)
	}
}

func TestEditor_editPreservesDueDateAndOwnership(t *testing.T) {
	viewer := task.Viewer{UserID: "U1", Role: task.RoleAdmin}
	e, svc, repo := newEditor(t, viewer, true)
	existing := testutil.CreateTask(t, repo, "old title", "U2", "U3", task.CategoryTraining, "2025-06-01")
	e.OpenEdit(existing)

	err := e.Submit(EventForm{Title: "new title", Priority: task.PriorityHigh})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	assert.False(t, e.IsOpen())

	got, err := svc.GetByID(existing.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "new title", got.Title)
		assert.Equal(t, task.PriorityHigh, got.Priority)
		// untouched by the edit path
		assert.Equal(t, "2025-06-01", got.DueDate)
		assert.Equal(t, "U2", got.AssignedTo)
		assert.Equal(t, "U3", got.AssignedBy)
		assert.Equal(t, task.CategoryTraining, got.Category)
	}
}

func TestEditor_editMissingTaskIsBenign(t *testing.T) {
	e, _, repo := newEditor(t, task.Viewer{UserID: "U1", Role: task.RoleAdmin}, true)
	ghost := testutil.CreateTask(t, repo, "ghost", "U1", "U1", task.CategoryOther, "2025-06-01")
	if err := repo.DeleteTasks(ghost.ID); err != nil {
		t.Fatalf("DeleteTasks() failed: %v", err)
	}
	e.OpenEdit(ghost)

	// the task vanished between open and submit; no hard failure
	err := e.Submit(EventForm{Title: "whatever"})
	assert.NoError(t, err)
	assert.False(t, e.IsOpen())
}

func TestEditor_deleteRoleGate(t *testing.T) {
	tests := []struct {
		role      task.Role
		canDelete bool
	}{
		{task.RoleAdmin, true},
		{task.RoleHR, true},
		{task.RoleManager, false},
		{task.RoleTutor, false},
		{task.RoleExecutive, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			e, _, repo := newEditor(t, task.Viewer{UserID: "U1", Role: tt.role}, true)
			existing := testutil.CreateTask(t, repo, "target", "U1", "U1", task.CategoryOther, "2025-06-01")
			e.OpenEdit(existing)

			assert.Equal(t, tt.canDelete, e.CanDelete())

			err := e.Delete()
			assert.NoError(t, err)

			want := 1
			if tt.canDelete {
				want = 0
			}
			assert.Equal(t, want, taskCount(t, repo))
		})
	}
}

func TestEditor_deleteRequiresConfirmation(t *testing.T) {
	e, _, repo := newEditor(t, task.Viewer{UserID: "U1", Role: task.RoleAdmin}, false /* declined */)
	existing := testutil.CreateTask(t, repo, "target", "U1", "U1", task.CategoryOther, "2025-06-01")
	e.OpenEdit(existing)

	err := e.Delete()

	assert.NoError(t, err)
	assert.Equal(t, 1, taskCount(t, repo))
	assert.True(t, e.IsOpen(), "declining the prompt keeps the dialog open")
}

func TestEditor_deleteNotVisibleInCreateMode(t *testing.T) {
	e, _, repo := newEditor(t, task.Viewer{UserID: "U1", Role: task.RoleAdmin}, true)
	e.OpenCreate(date(2025, time.June, 1))
	assert.False(t, e.CanDelete())
	assert.NoError(t, e.Delete())
	assert.Equal(t, 0, taskCount(t, repo))
}

// failingRepository errors on every mutation, to exercise the workflow's
// failure path.
type failingRepository struct{}

var errBoom = errors.New("boom")

func (failingRepository) CreateTask(task.Task) (task.Task, error) { return task.Task{}, errBoom }
func (failingRepository) QueryAllTasks() ([]task.Task, error)     { return nil, nil }
func (failingRepository) GetTaskByID(string) (task.Task, error) {
	return task.Task{}, task.ErrNotFound
}
func (failingRepository) GetTasksByAssignee(string) ([]task.Task, error)    { return nil, nil }
func (failingRepository) FilterTasks(task.QueryFilter) ([]task.Task, error) { return nil, nil }
func (failingRepository) UpdateTask(task.Task) (task.Task, error)           { return task.Task{}, errBoom }
func (failingRepository) DeleteTasks(...string) error                       { return errBoom }

func TestEditor_submitFailureStillClosesDialog(t *testing.T) {
	dummynotif.Reset()
	svc := task.NewService(failingRepository{})
	e := NewEditor(svc, dummynotif.NewService(), task.Viewer{UserID: "U1", Role: task.RoleAdmin}, func(string) bool { return true })
	e.OpenCreate(date(2025, time.June, 1))

	err := e.Submit(EventForm{Title: "doomed"})

	assert.ErrorIs(t, err, errBoom)
	assert.False(t, e.IsOpen(), "dialog must be cleaned up even on failure")
	assert.Nil(t, e.Editing())

	notices := dummynotif.Sent()
	if assert.Len(t, notices, 1) {
		assert.Equal(t, core.NoticeError, notices[0].Kind)
	}
}
