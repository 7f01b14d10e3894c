package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound      SessionError = "session not found"
	ErrSessionAlreadyExists SessionError = "session already exists"
	ErrInvalidInput         SessionError = "invalid input"
	ErrCodeExhausted        SessionError = "could not generate an unused session code"
	ErrNilConfig            SessionError = "config cannot be nil"
	ErrNilRepository        SessionError = "session repository cannot be nil"
	ErrNilClock             SessionError = "clock cannot be nil"
)
