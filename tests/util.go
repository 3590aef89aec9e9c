package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/codo-ajmalnk/evoka-admin/core"
	"github.com/codo-ajmalnk/evoka-admin/core/task"
)

// NewConfig returns a Config suitable for tests: short timer delays so
// highlight and debounce behavior can be observed without slow tests.
func NewConfig() *core.Config {
	return &core.Config{
		AppName:              "Evoka",
		Env:                  "TEST",
		TestMode:             true,
		HighlightSettleDelay: 5 * time.Millisecond,
		HighlightClearDelay:  25 * time.Millisecond,
		SearchDebounceDelay:  10 * time.Millisecond,
	}
}

func CreateTask(
	t *testing.T,
	repo task.Repository,
	title, assignedTo, assignedBy string,
	category task.Category,
	dueDate string,
) task.Task {
	tstamp := time.Now().UTC()
	tsk := task.Task{
		ID:         uuid.NewString(),
		Title:      title,
		AssignedTo: assignedTo,
		AssignedBy: assignedBy,
		DueDate:    dueDate,
		DueTime:    task.DefaultDueTime,
		Priority:   task.PriorityMedium,
		Category:   category,
		Status:     task.StatusPending,
		CreatedAt:  tstamp,
		UpdatedAt:  tstamp,
	}
	tsk, err := repo.CreateTask(tsk)
	if err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}
	return tsk
}
