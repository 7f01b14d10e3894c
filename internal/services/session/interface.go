package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/feastfinder/internal/services/session Service

import "context"

// Service defines the group-decision operations
type Service interface {
	// CreateSession starts a session with a fixed candidate list and the creator as first member
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// JoinSession adds a member; joining twice is a successful no-op
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// RecordVote upserts one like/dislike and reports completion
	RecordVote(ctx context.Context, input *RecordVoteInput) (*RecordVoteOutput, error)

	// GetDecision computes the current winner, if any
	GetDecision(ctx context.Context, input *GetDecisionInput) (*GetDecisionOutput, error)

	// GetStatus reports whether every current member has finished voting
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// GetSession returns a session summary
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetBallot returns the candidates a user has not voted on yet
	GetBallot(ctx context.Context, input *GetBallotInput) (*GetBallotOutput, error)

	// EvictExpired removes idle sessions from the store
	EvictExpired(ctx context.Context, input *EvictExpiredInput) (*EvictExpiredOutput, error)
}

// Recorder receives domain events for metrics
type Recorder interface {
	SessionCreated()
	MemberJoined()
	VoteRecorded(liked bool)
	DecisionQueried(kind string)
	SessionsEvicted(count int)
}

// CodeGenerator produces candidate share codes for sessions created without one
type CodeGenerator interface {
	Code() string
}
