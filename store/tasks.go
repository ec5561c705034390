package store

import (
	"cmp"
	"maps"
	"math"
	"slices"
	"sync"

	"taskhub/models"
	"taskhub/validator"
)

const (
	firstTaskID = 1
	// maxTaskID leaves room for nextID = maxTaskID + 1 without overflow.
	maxTaskID = math.MaxInt - 1
)

// TaskStore keeps tasks keyed by id and hands out ids from a counter that
// only moves forward.
type TaskStore struct {
	mu       sync.RWMutex
	tasks    map[int]models.Task
	nextID   int
	validate *validator.Validator
}

// NewTaskStore creates an empty task store. A nil validator gets a default one.
func NewTaskStore(v *validator.Validator) *TaskStore {
	if v == nil {
		v = validator.New()
	}
	return &TaskStore{
		tasks:    make(map[int]models.Task),
		nextID:   firstTaskID,
		validate: v,
	}
}

// Create stores task. ID 0 takes the next counter value; any other ID is
// used as given (replacing whatever was there) and pushes the counter past it.
func (s *TaskStore) Create(task models.Task) Result[models.Task] {
	if err := s.validate.Validate(&task); err != nil {
		return invalid[models.Task](err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case task.ID == 0:
		if s.nextID > maxTaskID {
			return invalid[models.Task](MsgInvalidID)
		}
		task.ID = s.nextID
		s.nextID++
	case task.ID > maxTaskID:
		return invalid[models.Task](MsgInvalidID)
	case task.ID >= s.nextID:
		s.nextID = task.ID + 1
	}

	s.tasks[task.ID] = task
	return created(task)
}

// Get looks up a task by id.
func (s *TaskStore) Get(id int) Result[models.Task] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, exists := s.tasks[id]
	if !exists {
		return notFound[models.Task]()
	}
	return found(task)
}

// List returns a copy of every task, ordered by id.
func (s *TaskStore) List() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := slices.AppendSeq(make([]models.Task, 0, len(s.tasks)), maps.Values(s.tasks))
	slices.SortFunc(tasks, func(a, b models.Task) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return tasks
}

// Update overwrites an existing task. The stored ID is always id, whatever
// the payload carried. Missing tasks are not created.
func (s *TaskStore) Update(id int, task models.Task) Result[models.Task] {
	if err := s.validate.Validate(&task); err != nil {
		return invalid[models.Task](err.Error())
	}
	task.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[id]; !exists {
		return notFound[models.Task]()
	}

	s.tasks[id] = task
	return updated(task)
}

// Delete removes the task and reports whether it was present.
func (s *TaskStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[id]; !exists {
		return false
	}
	delete(s.tasks, id)
	return true
}

// Reset drops every task and restarts ids at 1.
func (s *TaskStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.tasks)
	s.nextID = firstTaskID
}
