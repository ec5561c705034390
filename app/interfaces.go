package app

import (
	"taskhub/models"
	"taskhub/store"
)

// UserRepository defines the user operations handlers depend on.
// store.UserStore is the production implementation.
type UserRepository interface {
	Create(user models.User) store.Result[models.User]
	Get(email string) store.Result[models.User]
	List() []models.User
	Update(email string, user models.User) store.Result[models.User]
	Delete(email string) bool
	Reset()
}

// TaskRepository defines the task operations handlers depend on
type TaskRepository interface {
	Create(task models.Task) store.Result[models.Task]
	Get(id int) store.Result[models.Task]
	List() []models.Task
	Update(id int, task models.Task) store.Result[models.Task]
	Delete(id int) bool
	Reset()
}

var (
	_ UserRepository = (*store.UserStore)(nil)
	_ TaskRepository = (*store.TaskStore)(nil)
)
