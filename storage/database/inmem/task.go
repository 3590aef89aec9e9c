package inmemdb

import (
	"github.com/codo-ajmalnk/evoka-admin/core/task"
)

type taskRepository struct {
	db *taskTable
}

func NewTaskRepository(db *DB) task.Repository {
	return &taskRepository{db: db.task}
}

// query returns all tasks in insertion order. Callers must hold the lock.
func (repo *taskRepository) query() []task.Task {
	tasks := make([]task.Task, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		tasks = append(tasks, *repo.db.table[id])
	}
	return tasks
}

func (repo *taskRepository) CreateTask(t task.Task) (task.Task, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, exists := repo.db.table[t.ID]; !exists {
		repo.db.order = append(repo.db.order, t.ID)
	}
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *taskRepository) QueryAllTasks() ([]task.Task, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *taskRepository) GetTaskByID(id string) (task.Task, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return task.Task{}, task.ErrNotFound
}

func (repo *taskRepository) GetTasksByAssignee(userID string) ([]task.Task, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	tasks := make([]task.Task, 0)
	for _, t := range repo.query() {
		if t.AssignedTo == userID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (repo *taskRepository) FilterTasks(filter task.QueryFilter) ([]task.Task, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if filter.IsEmpty() {
		return repo.query(), nil
	}
	tasks := make([]task.Task, 0)
	for _, t := range repo.query() {
		if filter.Match(t) {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (repo *taskRepository) UpdateTask(t task.Task) (task.Task, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// only save set fields
	origTask, ok := repo.db.table[t.ID]
	if !ok {
		return task.Task{}, task.ErrNotFound
	}
	if t.Title != "" {
		origTask.Title = t.Title
	}
	if t.Description != "" {
		origTask.Description = t.Description
	}
	if t.AssignedTo != "" {
		origTask.AssignedTo = t.AssignedTo
	}
	if t.AssignedBy != "" {
		origTask.AssignedBy = t.AssignedBy
	}
	if t.AssignedByName != "" {
		origTask.AssignedByName = t.AssignedByName
	}
	if t.DueDate != "" {
		origTask.DueDate = t.DueDate
	}
	if t.DueTime != "" {
		origTask.DueTime = t.DueTime
	}
	if t.Priority != "" {
		origTask.Priority = t.Priority
	}
	if t.Category != "" {
		origTask.Category = t.Category
	}
	if t.Status != "" {
		origTask.Status = t.Status
	}
	if t.Notes != "" {
		origTask.Notes = t.Notes
	}
	origTask.UpdatedAt = t.UpdatedAt

	repo.db.table[t.ID] = origTask
	return *origTask, nil
}

func (repo *taskRepository) DeleteTasks(ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	for _, id := range ids {
		if _, ok := repo.db.table[id]; !ok {
			continue
		}
		delete(repo.db.table, id)
		for i, oid := range repo.db.order {
			if oid == id {
				repo.db.order = append(repo.db.order[:i], repo.db.order[i+1:]...)
				break
			}
		}
	}
	return nil
}
