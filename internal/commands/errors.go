package commands

// UserError represents a failure that should be displayed to the player as
// an in-fiction line. These are not system faults - just invalid input,
// missing resources, or the world saying no. State is never mutated on the
// path that produces one.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a player-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}
