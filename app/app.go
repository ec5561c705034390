package app

import (
	"log/slog"

	"taskhub/store"
	"taskhub/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Users     UserRepository
	Tasks     TaskRepository
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with empty stores
func New(logger *slog.Logger) *App {
	v := validator.New()

	return &App{
		Users:     store.NewUserStore(v),
		Tasks:     store.NewTaskStore(v),
		Validator: v,
		Logger:    logger,
	}
}

// Reset empties both stores and restarts task ids at 1
func (a *App) Reset() {
	a.Users.Reset()
	a.Tasks.Reset()
	a.Logger.Info("stores reset")
}
