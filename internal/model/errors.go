package model

// UserError is a failure whose Message is shown to the user verbatim.
type UserError struct {
	Kind    error
	Message string
}

func (e *UserError) Error() string {
	if e.Kind == nil {
		return e.Message
	}
	return e.Kind.Error() + ": " + e.Message
}

func (e *UserError) Unwrap() error {
	return e.Kind
}

// NewUserError wraps kind with a user-facing message.
func NewUserError(kind error, message string) *UserError {
	return &UserError{Kind: kind, Message: message}
}
