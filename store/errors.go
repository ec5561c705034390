package store

// Client-facing validation messages.
const (
	MsgEmailRequired = "Email é obrigatório"
	MsgEmailInUse    = "Novo email já está em uso por outro usuário."
	MsgTitleRequired = "Título é obrigatório"
	MsgInvalidID     = "ID inválido"
)

// ValidationError reports input the caller must correct before retrying.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
