package messaging

import (
	"github.com/KirkDiggler/feastfinder/internal/models"
	"github.com/KirkDiggler/feastfinder/internal/picker"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType names the failure a GetErrorMessage call describes
type ErrorType string

const (
	ErrorTypeSessionNotFound ErrorType = "session_not_found"
	ErrorTypeSessionExists   ErrorType = "session_exists"
	ErrorTypeInvalidInput    ErrorType = "invalid_input"
	ErrorTypeUnknown         ErrorType = "unknown"
)

// Config contains configuration for the messaging service
type Config struct {
	// Picker chooses among phrasings; defaults to a time-seeded picker
	Picker picker.Picker
}

// GetSessionCreatedMessageInput contains parameters for the share message
type GetSessionCreatedMessageInput struct {
	CreatorName    string
	Code           string
	CandidateCount int
}

// GetSessionCreatedMessageOutput contains the share message
type GetSessionCreatedMessageOutput struct {
	Title   string
	Message string
}

// GetJoinSessionMessageInput contains parameters for getting a join message
type GetJoinSessionMessageInput struct {
	// UserName is the display name of the user joining
	UserName string

	// AlreadyMember indicates the user had joined before
	AlreadyMember bool

	// MemberCount is the member count after the join
	MemberCount int
}

// GetJoinSessionMessageOutput contains the result of getting a join message
type GetJoinSessionMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetVoteProgressMessageInput contains parameters for a post-vote message
type GetVoteProgressMessageInput struct {
	Liked        bool
	Remaining    int
	UserFinished bool
	AllFinished  bool
}

// GetVoteProgressMessageOutput contains the post-vote message
type GetVoteProgressMessageOutput struct {
	Message string
}

// GetDecisionMessageInput contains the decision to announce
type GetDecisionMessageInput struct {
	Decision *models.Decision
}

// GetDecisionMessageOutput contains the decision announcement
type GetDecisionMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}
