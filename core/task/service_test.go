package task_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/codo-ajmalnk/evoka-admin/core/task"
	inmemdb "github.com/codo-ajmalnk/evoka-admin/storage/database/inmem"
	testutil "github.com/codo-ajmalnk/evoka-admin/tests"
)

func setup(t *testing.T) (*task.Service, task.Repository) {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := inmemdb.NewTaskRepository(db)
	return task.NewService(repo), repo
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_createAppliesDefaults(t *testing.T) {
	svc, _ := setup(t)

	nt := task.NewTask{Title: "Prepare exams", DueDate: "2025-06-01"}
	if err := nt.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	created, err := svc.Create(nt)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, task.StatusPending, created.Status)
	assert.Equal(t, task.DefaultDueTime, created.DueTime)
	assert.Equal(t, task.PriorityMedium, created.Priority)
	assert.Equal(t, task.CategoryOther, created.Category)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestService_createKeepsExplicitFields(t *testing.T) {
	svc, _ := setup(t)

	created, err := svc.Create(task.NewTask{
		Title:    "Audit invoices",
		DueDate:  "2025-06-01",
		DueTime:  "14:30",
		Priority: task.PriorityUrgent,
		Category: task.CategoryAdministrative,
		Status:   task.StatusInProgress,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	assert.Equal(t, "14:30", created.DueTime)
	assert.Equal(t, task.PriorityUrgent, created.Priority)
	assert.Equal(t, task.CategoryAdministrative, created.Category)
	assert.Equal(t, task.StatusInProgress, created.Status)
}

func TestService_roundTrip(t *testing.T) {
	svc, _ := setup(t)
	viewer := task.Viewer{UserID: "U1", Role: task.RoleAdmin}

	created, err := svc.Create(task.NewTask{Title: "X", DueDate: "2025-06-01", AssignedTo: "U1", AssignedBy: "U1"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	tasks, err := svc.QueryForDate(viewer, day(2025, time.June, 1))
	if assert.NoError(t, err) && assert.Len(t, tasks, 1) {
		assert.Equal(t, "X", tasks[0].Title)
	}

	if _, err = svc.Update(created.ID, task.UpdateTask{Title: "Y"}); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	tasks, err = svc.QueryForDate(viewer, day(2025, time.June, 1))
	if assert.NoError(t, err) && assert.Len(t, tasks, 1) {
		assert.Equal(t, "Y", tasks[0].Title)
	}

	if err = svc.Delete(created.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	tasks, err = svc.QueryForDate(viewer, day(2025, time.June, 1))
	assert.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestService_updateMergesPartialFields(t *testing.T) {
	svc, repo := setup(t)
	orig := testutil.CreateTask(t, repo, "original", "U1", "U2", task.CategoryAcademic, "2025-06-01")

	got, err := svc.Update(orig.ID, task.UpdateTask{Title: "renamed", Status: task.StatusCompleted})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, task.StatusCompleted, got.Status)
	// unset fields keep their stored values
	assert.Equal(t, "U1", got.AssignedTo)
	assert.Equal(t, "U2", got.AssignedBy)
	assert.Equal(t, "2025-06-01", got.DueDate)
	assert.Equal(t, task.CategoryAcademic, got.Category)
	assert.True(t, got.UpdatedAt.After(orig.UpdatedAt) || got.UpdatedAt.Equal(orig.UpdatedAt))
}

func TestService_updateMissingTask(t *testing.T) {
	svc, _ := setup(t)
	_, err := svc.Update("no-such-id", task.UpdateTask{Title: "whatever"})
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestService_deleteIsIdempotent(t *testing.T) {
	svc, repo := setup(t)
	created := testutil.CreateTask(t, repo, "target", "U1", "U1", task.CategoryOther, "2025-06-01")

	assert.NoError(t, svc.Delete(created.ID))
	assert.NoError(t, svc.Delete(created.ID), "deleting a missing id is not an error")
	assert.NoError(t, svc.Delete("never-existed"))
}

func TestService_queryByAssignee(t *testing.T) {
	svc, repo := setup(t)
	testutil.CreateTask(t, repo, "a", "U1", "U9", task.CategoryOther, "2025-06-01")
	testutil.CreateTask(t, repo, "b", "U2", "U9", task.CategoryOther, "2025-06-01")
	testutil.CreateTask(t, repo, "c", "U1", "U9", task.CategoryOther, "2025-06-02")

	tasks, err := svc.QueryByAssignee("U1")
	if assert.NoError(t, err) && assert.Len(t, tasks, 2) {
		assert.Equal(t, "a", tasks[0].Title)
		assert.Equal(t, "c", tasks[1].Title)
	}
}

func TestService_filter(t *testing.T) {
	svc, repo := setup(t)
	testutil.CreateTask(t, repo, "Grade midterm exams", "U1", "U9", task.CategoryAcademic, "2025-06-01")
	testutil.CreateTask(t, repo, "Payroll run", "U2", "U9", task.CategoryAdministrative, "2025-06-05")
	testutil.CreateTask(t, repo, "Fire safety training", "U3", "U9", task.CategoryTraining, "2025-06-10")

	tests := []struct {
		name       string
		filter     task.QueryFilter
		wantTitles []string
	}{
		{"empty filter returns all", task.QueryFilter{}, []string{"Grade midterm exams", "Payroll run", "Fire safety training"}},
		{"search is case-insensitive", task.QueryFilter{Search: "GRADE"}, []string{"Grade midterm exams"}},
		{"by category", task.QueryFilter{Categories: []task.Category{task.CategoryAdministrative}}, []string{"Payroll run"}},
		{"by assignee", task.QueryFilter{AssignedTo: "U3"}, []string{"Fire safety training"}},
		{"by due window", task.QueryFilter{DueFrom: day(2025, time.June, 2), DueTo: day(2025, time.June, 7)}, []string{"Payroll run"}},
		{"no match", task.QueryFilter{Search: "nonexistent"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := svc.Filter(tt.filter)
			if err != nil {
				t.Fatalf("Filter() failed: %v", err)
			}
			titles := make([]string, 0, len(tasks))
			for _, tsk := range tasks {
				titles = append(titles, tsk.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestService_queryAllPreservesInsertionOrder(t *testing.T) {
	svc, repo := setup(t)
	testutil.CreateTask(t, repo, "first", "U1", "U1", task.CategoryOther, "2025-06-01")
	testutil.CreateTask(t, repo, "second", "U1", "U1", task.CategoryOther, "2025-06-01")
	testutil.CreateTask(t, repo, "third", "U1", "U1", task.CategoryOther, "2025-06-01")

	tasks, err := svc.QueryAll()
	if assert.NoError(t, err) && assert.Len(t, tasks, 3) {
		assert.Equal(t, "first", tasks[0].Title)
		assert.Equal(t, "second", tasks[1].Title)
		assert.Equal(t, "third", tasks[2].Title)
	}
}
