package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/feastfinder/internal/common/clock"
	"github.com/KirkDiggler/feastfinder/internal/decision"
	"github.com/KirkDiggler/feastfinder/internal/models"
	sessionRepo "github.com/KirkDiggler/feastfinder/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	repo          sessionRepo.Repository
	clock         clock.Clock
	logger        *slog.Logger
	metrics       Recorder
	codes         CodeGenerator
	caseSensitive bool
	joinOnVote    bool
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = noopRecorder{}
	}

	return &service{
		repo:          cfg.Repository,
		clock:         cfg.Clock,
		logger:        logger,
		metrics:       metrics,
		codes:         cfg.CodeGenerator,
		caseSensitive: cfg.CaseSensitiveCodes,
		joinOnVote:    cfg.JoinOnVote,
	}, nil
}

// normalizeCode applies the configured case policy
func (s *service) normalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if s.caseSensitive {
		return code
	}
	return strings.ToUpper(code)
}

// translate maps repository errors onto service errors
func translate(err error) error {
	switch {
	case errors.Is(err, sessionRepo.ErrSessionNotFound):
		return ErrSessionNotFound
	case errors.Is(err, sessionRepo.ErrSessionExists):
		return ErrSessionAlreadyExists
	case errors.Is(err, sessionRepo.ErrEmptyCode):
		return ErrInvalidInput
	}
	return err
}

func validateCandidates(candidates []models.Candidate) error {
	seen := make(map[string]struct{}, len(candidates))
	for i, candidate := range candidates {
		if candidate.ID == "" {
			return fmt.Errorf("%w: candidate %d has no id", ErrInvalidInput, i)
		}
		if _, ok := seen[candidate.ID]; ok {
			return fmt.Errorf("%w: duplicate candidate id %q", ErrInvalidInput, candidate.ID)
		}
		seen[candidate.ID] = struct{}{}
	}
	return nil
}

// CreateSession starts a session with the creator as the only member
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil || input.CreatorID == "" {
		return nil, ErrInvalidInput
	}

	if err := validateCandidates(input.Candidates); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	candidates := make([]models.Candidate, len(input.Candidates))
	for i, candidate := range input.Candidates {
		candidates[i] = candidate.Clone()
	}

	newSession := func(code string) *models.Session {
		session := &models.Session{
			Code:       code,
			CreatedAt:  now,
			UpdatedAt:  now,
			CreatedBy:  input.CreatorID,
			Members:    []string{input.CreatorID},
			Candidates: candidates,
			Votes:      models.NewVoteLedger(),
		}
		session.Finished = decision.AllFinished(session)
		return session
	}

	var created *models.Session
	code := s.normalizeCode(input.Code)

	if code != "" {
		session, err := s.repo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
			Session: newSession(code),
		})
		if err != nil {
			return nil, translate(err)
		}
		created = session
	} else {
		if s.codes == nil {
			return nil, ErrInvalidInput
		}

		for attempt := 0; attempt < maxCodeAttempts && created == nil; attempt++ {
			code = s.normalizeCode(s.codes.Code())
			session, err := s.repo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
				Session: newSession(code),
			})
			if err != nil {
				if errors.Is(err, sessionRepo.ErrSessionExists) {
					s.logger.Warn("generated session code already in use",
						"session_code", code,
						"attempt", attempt+1)
					continue
				}
				return nil, translate(err)
			}
			created = session
		}

		if created == nil {
			return nil, ErrCodeExhausted
		}
	}

	s.metrics.SessionCreated()
	s.logger.Info("session created",
		"session_code", created.Code,
		"created_by", created.CreatedBy,
		"candidate_count", len(created.Candidates))

	return &CreateSessionOutput{
		Session: created,
	}, nil
}

// JoinSession adds a user to the session. Re-joining is a successful no-op.
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	var added bool
	session, err := s.repo.UpdateSession(ctx, &sessionRepo.UpdateSessionInput{
		Code: s.normalizeCode(input.Code),
		Update: func(session *models.Session) error {
			added = session.AddMember(input.UserID)
			session.UpdatedAt = s.clock.Now()
			session.Finished = decision.AllFinished(session)
			return nil
		},
	})
	if err != nil {
		return nil, translate(err)
	}

	if added {
		s.metrics.MemberJoined()
		s.logger.Info("member joined",
			"session_code", session.Code,
			"user_id", input.UserID,
			"member_count", len(session.Members))
	}

	return &JoinSessionOutput{
		Success:       true,
		AlreadyMember: !added,
		MemberCount:   len(session.Members),
	}, nil
}

// RecordVote upserts the user's vote on one candidate. The candidate ID is
// not checked against the set; unknown ids are dropped when tallying.
func (s *service) RecordVote(ctx context.Context, input *RecordVoteInput) (*RecordVoteOutput, error) {
	if input == nil || input.UserID == "" || input.CandidateID == "" {
		return nil, ErrInvalidInput
	}

	var output RecordVoteOutput
	session, err := s.repo.UpdateSession(ctx, &sessionRepo.UpdateSessionInput{
		Code: s.normalizeCode(input.Code),
		Update: func(session *models.Session) error {
			output = RecordVoteOutput{}
			if s.joinOnVote {
				output.Joined = session.AddMember(input.UserID)
			}

			output.Replaced = session.Ledger().Record(input.UserID, input.CandidateID, input.Liked)
			session.UpdatedAt = s.clock.Now()
			session.Finished = decision.AllFinished(session)

			output.UserFinished = decision.UserFinished(session, input.UserID)
			output.AllFinished = session.Finished
			return nil
		},
	})
	if err != nil {
		return nil, translate(err)
	}

	s.metrics.VoteRecorded(input.Liked)
	if output.Joined {
		s.metrics.MemberJoined()
	}

	s.logger.Debug("vote recorded",
		"session_code", session.Code,
		"user_id", input.UserID,
		"candidate_id", input.CandidateID,
		"liked", input.Liked,
		"replaced", output.Replaced)

	if output.AllFinished {
		s.logger.Info("all members finished voting",
			"session_code", session.Code,
			"member_count", len(session.Members))
	}

	return &output, nil
}

func (s *service) get(ctx context.Context, code string) (*models.Session, error) {
	session, err := s.repo.GetSession(ctx, &sessionRepo.GetSessionInput{
		Code: s.normalizeCode(code),
	})
	if err != nil {
		return nil, translate(err)
	}
	return session, nil
}

// GetDecision computes the decision from the current votes. It can be called
// before everyone has finished; no-decision is a valid result, not an error.
func (s *service) GetDecision(ctx context.Context, input *GetDecisionInput) (*GetDecisionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.get(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	result := decision.Compute(session)

	s.metrics.DecisionQueried(string(result.Kind))

	attrs := []any{
		"session_code", session.Code,
		"kind", result.Kind,
	}
	if result.Winner != nil {
		attrs = append(attrs, "candidate_id", result.Winner.ID, "yes_count", result.YesCount)
	}
	s.logger.Debug("decision computed", attrs...)

	return &GetDecisionOutput{
		Decision:    result,
		AllFinished: decision.AllFinished(session),
	}, nil
}

// GetStatus reports completion for the session's current members
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.get(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	return &GetStatusOutput{
		AllFinished:   decision.AllFinished(session),
		State:         decision.State(session),
		MemberCount:   len(session.Members),
		FinishedCount: decision.FinishedCount(session),
	}, nil
}

// GetSession returns a snapshot of the session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.get(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session:     session,
		AllFinished: decision.AllFinished(session),
		State:       decision.State(session),
	}, nil
}

// GetBallot returns the candidates the user still has to vote on
func (s *service) GetBallot(ctx context.Context, input *GetBallotInput) (*GetBallotOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.get(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	return &GetBallotOutput{
		Remaining:  decision.Remaining(session, input.UserID),
		VotedCount: len(session.Votes.VotesFor(input.UserID)),
		Total:      len(session.Candidates),
		Finished:   decision.UserFinished(session, input.UserID),
	}, nil
}

// EvictExpired drops sessions that have been idle past the store TTL
func (s *service) EvictExpired(ctx context.Context, input *EvictExpiredInput) (*EvictExpiredOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	now := input.Now
	if now.IsZero() {
		now = s.clock.Now()
	}

	result, err := s.repo.SweepExpired(ctx, &sessionRepo.SweepExpiredInput{
		Now: now,
	})
	if err != nil {
		s.logger.Error("failed to sweep expired sessions", "error", err)
		return nil, fmt.Errorf("failed to sweep expired sessions: %w", err)
	}

	if result.Removed > 0 {
		s.metrics.SessionsEvicted(result.Removed)
		s.logger.Info("evicted idle sessions", "count", result.Removed)
	}

	return &EvictExpiredOutput{
		Evicted: result.Removed,
	}, nil
}

type noopRecorder struct{}

func (noopRecorder) SessionCreated()         {}
func (noopRecorder) MemberJoined()           {}
func (noopRecorder) VoteRecorded(bool)       {}
func (noopRecorder) DecisionQueried(string)  {}
func (noopRecorder) SessionsEvicted(int)     {}
