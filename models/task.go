package models

// Task is keyed by ID inside the task store. ID 0 means "not assigned yet".
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"titulo" validate:"notblank" label:"Título"`
	Description string `json:"descricao"`
	Completed   bool   `json:"concluida"`
}
