package messaging

// MessagingError is a custom error type for messaging errors
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

const (
	ErrNilInput    MessagingError = "input cannot be nil"
	ErrNilDecision MessagingError = "decision cannot be nil"
)
