package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/feastfinder/internal/common/clock"
	"github.com/KirkDiggler/feastfinder/internal/services/candidates"
	"github.com/KirkDiggler/feastfinder/internal/services/messaging"
	sessionService "github.com/KirkDiggler/feastfinder/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// wideRadiusMeters covers the whole built-in catalog when no location is given
const wideRadiusMeters = 50_000

// feast turns interactions into session service calls and rendered responses.
type feast struct {
	sessions       sessionService.Service
	candidates     candidates.Provider
	messages       messaging.Service
	clock          clock.Clock
	logger         *slog.Logger
	candidateLimit int
}

// errorType classifies a service error for the messaging service
func errorType(err error) messaging.ErrorType {
	switch {
	case errors.Is(err, sessionService.ErrSessionNotFound):
		return messaging.ErrorTypeSessionNotFound
	case errors.Is(err, sessionService.ErrSessionAlreadyExists):
		return messaging.ErrorTypeSessionExists
	case errors.Is(err, sessionService.ErrInvalidInput):
		return messaging.ErrorTypeInvalidInput
	}
	return messaging.ErrorTypeUnknown
}

// failure renders err for the user. Only unexpected errors are returned to the caller.
func (f *feast) failure(ctx context.Context, err error) (*discordgo.InteractionResponse, error) {
	kind := errorType(err)

	msg, msgErr := f.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: kind})
	if msgErr != nil {
		return nil, msgErr
	}

	if kind == messaging.ErrorTypeUnknown {
		return renderError(msg), err
	}
	return renderError(msg), nil
}

// checkCode rejects codes that cannot be carried by the session's buttons
func checkCode(code string) error {
	if !buttonSafeCode(strings.TrimSpace(code)) {
		return fmt.Errorf("%w: code must be at most %d characters without %q",
			sessionService.ErrInvalidInput, maxCodeLength, customIDSeparator)
	}
	return nil
}

// start creates a session from the catalog with the caller as creator
func (f *feast) start(ctx context.Context, caller user, code string) (*discordgo.InteractionResponse, error) {
	if err := checkCode(code); err != nil {
		return f.failure(ctx, err)
	}

	center := candidates.CatalogCenter
	nearby, err := f.candidates.Nearby(ctx, &candidates.NearbyInput{
		Location:     &center,
		RadiusMeters: wideRadiusMeters,
		Limit:        f.candidateLimit,
	})
	if err != nil {
		return f.failure(ctx, err)
	}

	created, err := f.sessions.CreateSession(ctx, &sessionService.CreateSessionInput{
		Code:       code,
		CreatorID:  caller.ID,
		Candidates: nearby.Restaurants,
	})
	if err != nil {
		return f.failure(ctx, err)
	}

	msg, err := f.messages.GetSessionCreatedMessage(ctx, &messaging.GetSessionCreatedMessageInput{
		CreatorName:    caller.Name,
		Code:           created.Session.Code,
		CandidateCount: len(created.Session.Candidates),
	})
	if err != nil {
		return nil, err
	}

	return renderSessionCreated(msg, created.Session), nil
}

// join adds the caller to a session
func (f *feast) join(ctx context.Context, caller user, code string) (*discordgo.InteractionResponse, error) {
	if err := checkCode(code); err != nil {
		return f.failure(ctx, err)
	}

	joined, err := f.sessions.JoinSession(ctx, &sessionService.JoinSessionInput{
		Code:   code,
		UserID: caller.ID,
	})
	if err != nil {
		return f.failure(ctx, err)
	}

	msg, err := f.messages.GetJoinSessionMessage(ctx, &messaging.GetJoinSessionMessageInput{
		UserName:      caller.Name,
		AlreadyMember: joined.AlreadyMember,
		MemberCount:   joined.MemberCount,
	})
	if err != nil {
		return nil, err
	}

	return renderJoined(code, msg), nil
}

// results posts the current decision
func (f *feast) results(ctx context.Context, code string) (*discordgo.InteractionResponse, error) {
	output, err := f.sessions.GetDecision(ctx, &sessionService.GetDecisionInput{Code: code})
	if err != nil {
		return f.failure(ctx, err)
	}

	msg, err := f.messages.GetDecisionMessage(ctx, &messaging.GetDecisionMessageInput{
		Decision: output.Decision,
	})
	if err != nil {
		return nil, err
	}

	return renderDecision(code, msg, output.Decision), nil
}

// status shows how far along the group is
func (f *feast) status(ctx context.Context, code string) (*discordgo.InteractionResponse, error) {
	session, err := f.sessions.GetSession(ctx, &sessionService.GetSessionInput{Code: code})
	if err != nil {
		return f.failure(ctx, err)
	}

	status, err := f.sessions.GetStatus(ctx, &sessionService.GetStatusInput{Code: code})
	if err != nil {
		return f.failure(ctx, err)
	}

	return renderStatus(session.Session, status, f.clock.Now()), nil
}

// ballot shows the caller's next card, joining them first
func (f *feast) ballot(ctx context.Context, caller user, code string, progress string, update bool) (*discordgo.InteractionResponse, error) {
	if _, err := f.sessions.JoinSession(ctx, &sessionService.JoinSessionInput{
		Code:   code,
		UserID: caller.ID,
	}); err != nil {
		return f.failure(ctx, err)
	}

	ballot, err := f.sessions.GetBallot(ctx, &sessionService.GetBallotInput{
		Code:   code,
		UserID: caller.ID,
	})
	if err != nil {
		return f.failure(ctx, err)
	}

	if len(ballot.Remaining) == 0 || ballot.Finished {
		status, err := f.sessions.GetStatus(ctx, &sessionService.GetStatusInput{Code: code})
		if err != nil {
			return f.failure(ctx, err)
		}

		msg, err := f.messages.GetVoteProgressMessage(ctx, &messaging.GetVoteProgressMessageInput{
			UserFinished: true,
			AllFinished:  status.AllFinished,
		})
		if err != nil {
			return nil, err
		}
		return renderBallotDone(code, msg.Message, status.AllFinished, update), nil
	}

	return renderBallotCard(code, ballot, progress, update), nil
}

// vote records a Like/Nope click and advances to the next card
func (f *feast) vote(ctx context.Context, caller user, code, candidateID string, liked bool) (*discordgo.InteractionResponse, error) {
	voted, err := f.sessions.RecordVote(ctx, &sessionService.RecordVoteInput{
		Code:        code,
		UserID:      caller.ID,
		CandidateID: candidateID,
		Liked:       liked,
	})
	if err != nil {
		return f.failure(ctx, err)
	}

	if voted.UserFinished {
		msg, err := f.messages.GetVoteProgressMessage(ctx, &messaging.GetVoteProgressMessageInput{
			Liked:        liked,
			UserFinished: true,
			AllFinished:  voted.AllFinished,
		})
		if err != nil {
			return nil, err
		}
		return renderBallotDone(code, msg.Message, voted.AllFinished, true), nil
	}

	ballot, err := f.sessions.GetBallot(ctx, &sessionService.GetBallotInput{
		Code:   code,
		UserID: caller.ID,
	})
	if err != nil {
		return f.failure(ctx, err)
	}

	msg, err := f.messages.GetVoteProgressMessage(ctx, &messaging.GetVoteProgressMessageInput{
		Liked:     liked,
		Remaining: len(ballot.Remaining),
	})
	if err != nil {
		return nil, err
	}

	if len(ballot.Remaining) == 0 {
		return renderBallotDone(code, msg.Message, voted.AllFinished, true), nil
	}
	return renderBallotCard(code, ballot, msg.Message, true), nil
}

// component dispatches a button click by its custom ID
func (f *feast) component(ctx context.Context, caller user, id string) (*discordgo.InteractionResponse, error) {
	action, args := parseCustomID(id)

	switch {
	case action == ActionBallot && len(args) == 1:
		return f.ballot(ctx, caller, args[0], "", false)
	case action == ActionVote && len(args) == 3:
		return f.vote(ctx, caller, args[0], args[1], args[2] == voteYes)
	case action == ActionResults && len(args) == 1:
		return f.results(ctx, args[0])
	}

	return f.failure(ctx, sessionService.ErrInvalidInput)
}
