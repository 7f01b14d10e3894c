package messaging

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/feastfinder/internal/picker"
)

// service implements the Service interface
type service struct {
	picker picker.Picker
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	var p picker.Picker
	if cfg != nil {
		p = cfg.Picker
	}
	if p == nil {
		p = picker.New(nil)
	}

	return &service{
		picker: p,
	}, nil
}

// choose returns one of messages at random
func (s *service) choose(messages []string) string {
	return messages[s.picker.Pick(len(messages), 1)[0]]
}

// GetSessionCreatedMessage returns the share message posted when a session starts
func (s *service) GetSessionCreatedMessage(ctx context.Context, input *GetSessionCreatedMessageInput) (*GetSessionCreatedMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := input.CreatorName
	if name == "" {
		name = "Someone"
	}

	messages := []string{
		fmt.Sprintf("%s is hungry and can't decide. %d places are on the table, start swiping!", name, input.CandidateCount),
		fmt.Sprintf("Dinner debate opened by %s. %d restaurants, one winner.", name, input.CandidateCount),
		fmt.Sprintf("%s wants food and wants your opinion. Vote on %d spots before someone suggests pizza again.", name, input.CandidateCount),
		fmt.Sprintf("Feast mode activated by %s! %d candidates are waiting for your verdict.", name, input.CandidateCount),
	}

	return &GetSessionCreatedMessageOutput{
		Title:   fmt.Sprintf("Session %s", input.Code),
		Message: s.choose(messages) + fmt.Sprintf("\nShare code: **%s**", input.Code),
	}, nil
}

// GetJoinSessionMessage returns a message for when a user joins a session
func (s *service) GetJoinSessionMessage(ctx context.Context, input *GetJoinSessionMessageInput) (*GetJoinSessionMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.AlreadyMember {
		return &GetJoinSessionMessageOutput{
			Message: s.choose([]string{
				"You're already in! Keep swiping.",
				"Still here, still hungry. You're already part of this session.",
				"No need to join twice, your seat at the table is saved.",
			}),
			Tone: ToneNeutral,
		}, nil
	}

	messages := []string{
		fmt.Sprintf("%s pulled up a chair. That's %d hungry people now.", input.UserName, input.MemberCount),
		fmt.Sprintf("Welcome %s! %d people are deciding where to eat.", input.UserName, input.MemberCount),
		fmt.Sprintf("%s joined the feast. Party of %d!", input.UserName, input.MemberCount),
	}

	return &GetJoinSessionMessageOutput{
		Message: s.choose(messages),
		Tone:    ToneFunny,
	}, nil
}

// GetVoteProgressMessage returns a message after a user's vote
func (s *service) GetVoteProgressMessage(ctx context.Context, input *GetVoteProgressMessageInput) (*GetVoteProgressMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var messages []string
	switch {
	case input.AllFinished:
		messages = []string{
			"Everyone has voted! Time to see where you're eating.",
			"That's the last vote. The results are in!",
			"All votes counted. Drumroll please...",
		}
	case input.UserFinished:
		messages = []string{
			"You're done! Waiting on the rest of the group.",
			"All swiped out. Now we wait for the slowpokes.",
			"Your votes are in. Grab a snack while the others decide.",
		}
	case input.Liked:
		messages = []string{
			fmt.Sprintf("Noted, you'd eat there. %d to go.", input.Remaining),
			fmt.Sprintf("Yum! %d left.", input.Remaining),
		}
	default:
		messages = []string{
			fmt.Sprintf("Hard pass. %d to go.", input.Remaining),
			fmt.Sprintf("Not tonight. %d left.", input.Remaining),
		}
	}

	return &GetVoteProgressMessageOutput{
		Message: s.choose(messages),
	}, nil
}

// GetDecisionMessage returns the announcement for a decision
func (s *service) GetDecisionMessage(ctx context.Context, input *GetDecisionMessageInput) (*GetDecisionMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Decision == nil {
		return nil, ErrNilDecision
	}

	result := input.Decision

	if result.Kind.IsNone() || result.Winner == nil {
		return &GetDecisionMessageOutput{
			Title: "No matches found",
			Message: s.choose([]string{
				"Nobody liked anything yet. Maybe widen the search?",
				"Tough crowd. Not a single yes so far.",
				"No match. Cereal for dinner it is.",
			}),
			Tone: ToneNeutral,
		}, nil
	}

	name := result.Winner.Name

	if result.Kind.IsFullAgreement() {
		return &GetDecisionMessageOutput{
			Title: "It's a match!",
			Message: s.choose([]string{
				fmt.Sprintf("Everyone said yes to **%s**. Go eat!", name),
				fmt.Sprintf("Unanimous! **%s** it is.", name),
				fmt.Sprintf("Total agreement on **%s**. That never happens.", name),
			}),
			Tone: ToneCelebration,
		}, nil
	}

	message := s.choose([]string{
		fmt.Sprintf("**%s** got the most love with %d of %d votes.", name, result.YesCount, result.MemberCount),
		fmt.Sprintf("Not unanimous, but **%s** wins with %d of %d.", name, result.YesCount, result.MemberCount),
	})
	if result.Majority {
		message += " That is as many yes votes as there are people in the group."
	}

	return &GetDecisionMessageOutput{
		Title:   "Best match",
		Message: message,
		Tone:    ToneFunny,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var title string
	var messages []string

	switch input.ErrorType {
	case ErrorTypeSessionNotFound:
		title = "Session not found"
		messages = []string{
			"That code doesn't match any open session. Double-check it?",
			"Couldn't find that session. It may have expired.",
		}
	case ErrorTypeSessionExists:
		title = "Code already taken"
		messages = []string{
			"A session with that code is already running. Pick another code.",
			"Someone beat you to that code. Try a different one.",
		}
	case ErrorTypeInvalidInput:
		title = "Invalid request"
		messages = []string{
			"Something's missing from that request.",
			"That didn't look right. Check the code and try again.",
		}
	default:
		title = "Something went wrong"
		messages = []string{
			"The kitchen is on fire. Try again in a moment.",
			"Something went wrong on our side. Try again shortly.",
		}
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: s.choose(messages),
	}, nil
}
