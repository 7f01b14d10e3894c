package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/feastfinder/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetSessionCreatedMessage returns the share message posted when a session starts
	GetSessionCreatedMessage(ctx context.Context, input *GetSessionCreatedMessageInput) (*GetSessionCreatedMessageOutput, error)

	// GetJoinSessionMessage returns a message for when a user joins a session
	GetJoinSessionMessage(ctx context.Context, input *GetJoinSessionMessageInput) (*GetJoinSessionMessageOutput, error)

	// GetVoteProgressMessage returns a message after a user's vote
	GetVoteProgressMessage(ctx context.Context, input *GetVoteProgressMessageInput) (*GetVoteProgressMessageOutput, error)

	// GetDecisionMessage returns the announcement for a decision
	GetDecisionMessage(ctx context.Context, input *GetDecisionMessageInput) (*GetDecisionMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
