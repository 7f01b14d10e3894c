package session

// RepositoryError is returned by session stores
type RepositoryError string

// Error implements the error interface
func (e RepositoryError) Error() string {
	return string(e)
}

const (
	ErrSessionNotFound RepositoryError = "session not found"
	ErrSessionExists   RepositoryError = "session already exists"
	ErrNilInput        RepositoryError = "input cannot be nil"
	ErrEmptyCode       RepositoryError = "session code cannot be empty"
	ErrConflict        RepositoryError = "session update conflicted too many times"
	ErrNilConfig       RepositoryError = "config cannot be nil"
	ErrNilRedisClient  RepositoryError = "redis client cannot be nil"
)
