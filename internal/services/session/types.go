package session

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/feastfinder/internal/common/clock"
	"github.com/KirkDiggler/feastfinder/internal/models"
	sessionRepo "github.com/KirkDiggler/feastfinder/internal/repositories/session"
)

// maxCodeAttempts bounds how many generated codes are tried before giving up
const maxCodeAttempts = 5

// Config holds configuration for the session service
type Config struct {
	// Repository stores live sessions
	Repository sessionRepo.Repository

	// Clock stamps CreatedAt/UpdatedAt
	Clock clock.Clock

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Metrics receives domain events; nil disables them
	Metrics Recorder

	// CodeGenerator is used when CreateSession is called without a code.
	// Without one, an empty code is invalid input.
	CodeGenerator CodeGenerator

	// CaseSensitiveCodes keeps codes as given; otherwise they are upper-cased
	CaseSensitiveCodes bool

	// JoinOnVote adds an unknown voter to the members before recording the vote
	JoinOnVote bool
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// Code is the share code; generated when empty and a CodeGenerator is set
	Code string

	// CreatorID becomes the first member
	CreatorID string

	// Candidates is the ordered choice set, fixed for the life of the session
	Candidates []models.Candidate
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	Session *models.Session
}

// JoinSessionInput contains parameters for joining a session
type JoinSessionInput struct {
	Code   string
	UserID string
}

// JoinSessionOutput contains the result of joining a session
type JoinSessionOutput struct {
	Success bool

	// AlreadyMember is true when the user had joined before
	AlreadyMember bool

	MemberCount int
}

// RecordVoteInput contains parameters for recording a vote
type RecordVoteInput struct {
	Code        string
	UserID      string
	CandidateID string
	Liked       bool
}

// RecordVoteOutput contains the completion flags after the vote
type RecordVoteOutput struct {
	UserFinished bool
	AllFinished  bool

	// Replaced is true when the user had already voted on this candidate
	Replaced bool

	// Joined is true when the vote implicitly added the user as a member
	Joined bool
}

// GetDecisionInput contains parameters for computing a decision
type GetDecisionInput struct {
	Code string
}

// GetDecisionOutput contains the current decision
type GetDecisionOutput struct {
	Decision    *models.Decision
	AllFinished bool
}

// GetStatusInput contains parameters for checking completion
type GetStatusInput struct {
	Code string
}

// GetStatusOutput contains the completion status of a session
type GetStatusOutput struct {
	AllFinished   bool
	State         models.SessionState
	MemberCount   int
	FinishedCount int
}

// GetSessionInput contains parameters for fetching a session
type GetSessionInput struct {
	Code string
}

// GetSessionOutput contains a session snapshot
type GetSessionOutput struct {
	Session     *models.Session
	AllFinished bool
	State       models.SessionState
}

// GetBallotInput contains parameters for fetching a user's ballot
type GetBallotInput struct {
	Code   string
	UserID string
}

// GetBallotOutput contains the candidates still waiting for the user's vote
type GetBallotOutput struct {
	Remaining  []models.Candidate
	VotedCount int
	Total      int
	Finished   bool
}

// EvictExpiredInput contains parameters for evicting idle sessions
type EvictExpiredInput struct {
	// Now overrides the clock when set
	Now time.Time
}

// EvictExpiredOutput contains the number of sessions removed
type EvictExpiredOutput struct {
	Evicted int
}
