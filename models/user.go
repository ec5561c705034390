package models

// User is keyed by Email inside the user store.
type User struct {
	Name  string `json:"nome"`
	Email string `json:"email" validate:"notblank" label:"Email"`
	Age   int    `json:"idade"`
}
