package inmemdb

import (
	"sync"

	"github.com/codo-ajmalnk/evoka-admin/core/task"
)

type (
	DB struct {
		task *taskTable
	}

	taskTable struct {
		table map[string]*task.Task
		order []string // insertion order; cell previews rely on it
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		task: &taskTable{table: make(map[string]*task.Task)},
	}
	return db, nil
}
