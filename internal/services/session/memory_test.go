package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/feastfinder/internal/common/clock"
	"github.com/KirkDiggler/feastfinder/internal/models"
	sessionRepo "github.com/KirkDiggler/feastfinder/internal/repositories/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryService(t *testing.T, caseSensitive bool) Service {
	t.Helper()

	repo, err := sessionRepo.NewMemory(&sessionRepo.MemoryConfig{})
	require.NoError(t, err)

	svc, err := New(&Config{
		Repository:         repo,
		Clock:              clock.New(),
		CaseSensitiveCodes: caseSensitive,
		JoinOnVote:         true,
	})
	require.NoError(t, err)

	return svc
}

func restaurants(ids ...string) []models.Candidate {
	candidates := make([]models.Candidate, len(ids))
	for i, id := range ids {
		candidates[i] = models.Candidate{ID: id, Name: "Restaurant " + id}
	}
	return candidates
}

func vote(t *testing.T, svc Service, code, user, candidate string, liked bool) *RecordVoteOutput {
	t.Helper()

	output, err := svc.RecordVote(context.Background(), &RecordVoteInput{
		Code:        code,
		UserID:      user,
		CandidateID: candidate,
		Liked:       liked,
	})
	require.NoError(t, err)
	return output
}

func TestService_TwoUserFullAgreement(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService(t, false)

	_, err := svc.CreateSession(ctx, &CreateSessionInput{
		Code:       "DINNER",
		CreatorID:  "alice",
		Candidates: restaurants("a", "b", "c"),
	})
	require.NoError(t, err)

	_, err = svc.JoinSession(ctx, &JoinSessionInput{Code: "DINNER", UserID: "bob"})
	require.NoError(t, err)

	vote(t, svc, "DINNER", "alice", "a", true)
	vote(t, svc, "DINNER", "alice", "b", true)
	out := vote(t, svc, "DINNER", "alice", "c", false)
	assert.True(t, out.UserFinished)
	assert.False(t, out.AllFinished)

	vote(t, svc, "DINNER", "bob", "a", false)
	vote(t, svc, "DINNER", "bob", "b", true)
	out = vote(t, svc, "DINNER", "bob", "c", true)
	assert.True(t, out.UserFinished)
	assert.True(t, out.AllFinished)

	result, err := svc.GetDecision(ctx, &GetDecisionInput{Code: "DINNER"})
	require.NoError(t, err)
	require.Equal(t, models.DecisionFullAgreement, result.Decision.Kind)
	assert.Equal(t, "b", result.Decision.Winner.ID)

	status, err := svc.GetStatus(ctx, &GetStatusInput{Code: "DINNER"})
	require.NoError(t, err)
	assert.True(t, status.AllFinished)
	assert.Equal(t, models.SessionStateDecided, status.State)
	assert.Equal(t, 2, status.FinishedCount)
}

func TestService_LateJoinReopensSession(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService(t, false)

	_, err := svc.CreateSession(ctx, &CreateSessionInput{
		Code:       "LUNCH1",
		CreatorID:  "alice",
		Candidates: restaurants("a"),
	})
	require.NoError(t, err)

	out := vote(t, svc, "LUNCH1", "alice", "a", true)
	require.True(t, out.AllFinished)

	_, err = svc.JoinSession(ctx, &JoinSessionInput{Code: "LUNCH1", UserID: "carol"})
	require.NoError(t, err)

	status, err := svc.GetStatus(ctx, &GetStatusInput{Code: "LUNCH1"})
	require.NoError(t, err)
	assert.False(t, status.AllFinished)

	result, err := svc.GetDecision(ctx, &GetDecisionInput{Code: "LUNCH1"})
	require.NoError(t, err)
	assert.Equal(t, models.DecisionBestMatch, result.Decision.Kind)
}

func TestService_RepeatVoteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService(t, false)

	_, err := svc.CreateSession(ctx, &CreateSessionInput{
		Code:       "REPEAT",
		CreatorID:  "alice",
		Candidates: restaurants("a", "b"),
	})
	require.NoError(t, err)

	first := vote(t, svc, "REPEAT", "alice", "a", true)
	second := vote(t, svc, "REPEAT", "alice", "a", true)
	assert.False(t, first.Replaced)
	assert.True(t, second.Replaced)
	assert.False(t, second.UserFinished)

	ballot, err := svc.GetBallot(ctx, &GetBallotInput{Code: "REPEAT", UserID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 1, ballot.VotedCount)
	require.Len(t, ballot.Remaining, 1)
	assert.Equal(t, "b", ballot.Remaining[0].ID)
}

func TestService_CodesAreCaseInsensitiveByDefault(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService(t, false)

	_, err := svc.CreateSession(ctx, &CreateSessionInput{
		Code:       "MiXeD1",
		CreatorID:  "alice",
		Candidates: restaurants("a"),
	})
	require.NoError(t, err)

	_, err = svc.CreateSession(ctx, &CreateSessionInput{
		Code:      "mixed1",
		CreatorID: "bob",
	})
	assert.ErrorIs(t, err, ErrSessionAlreadyExists)

	output, err := svc.GetSession(ctx, &GetSessionInput{Code: "mixed1"})
	require.NoError(t, err)
	assert.Equal(t, "MIXED1", output.Session.Code)
}

func TestService_CaseSensitiveCodes(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService(t, true)

	_, err := svc.CreateSession(ctx, &CreateSessionInput{Code: "abc", CreatorID: "alice"})
	require.NoError(t, err)

	_, err = svc.CreateSession(ctx, &CreateSessionInput{Code: "ABC", CreatorID: "bob"})
	require.NoError(t, err)

	_, err = svc.GetStatus(ctx, &GetStatusInput{Code: "Abc"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_UnknownSessionIsNotFoundEverywhere(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService(t, false)

	_, err := svc.JoinSession(ctx, &JoinSessionInput{Code: "NOPE", UserID: "alice"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.RecordVote(ctx, &RecordVoteInput{Code: "NOPE", UserID: "alice", CandidateID: "a"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.GetDecision(ctx, &GetDecisionInput{Code: "NOPE"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.GetStatus(ctx, &GetStatusInput{Code: "NOPE"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.GetBallot(ctx, &GetBallotInput{Code: "NOPE", UserID: "alice"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_ConcurrentVotesAreAllRecorded(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService(t, false)

	candidateIDs := []string{"a", "b", "c", "d"}
	_, err := svc.CreateSession(ctx, &CreateSessionInput{
		Code:       "CROWD1",
		CreatorID:  "user-0",
		Candidates: restaurants(candidateIDs...),
	})
	require.NoError(t, err)

	const users = 20

	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			for _, id := range candidateIDs {
				_, err := svc.RecordVote(ctx, &RecordVoteInput{
					Code:        "CROWD1",
					UserID:      user,
					CandidateID: id,
					Liked:       id == "c",
				})
				assert.NoError(t, err)
			}
		}(fmt.Sprintf("user-%d", i))
	}
	wg.Wait()

	status, err := svc.GetStatus(ctx, &GetStatusInput{Code: "CROWD1"})
	require.NoError(t, err)
	assert.Equal(t, users, status.MemberCount)
	assert.Equal(t, users, status.FinishedCount)
	assert.True(t, status.AllFinished)

	result, err := svc.GetDecision(ctx, &GetDecisionInput{Code: "CROWD1"})
	require.NoError(t, err)
	require.Equal(t, models.DecisionFullAgreement, result.Decision.Kind)
	assert.Equal(t, "c", result.Decision.Winner.ID)
	assert.Equal(t, users, result.Decision.YesCount)
}

func TestService_WithoutJoinOnVoteMajorityIsReachable(t *testing.T) {
	ctx := context.Background()

	repo, err := sessionRepo.NewMemory(&sessionRepo.MemoryConfig{})
	require.NoError(t, err)

	svc, err := New(&Config{Repository: repo, Clock: clock.New()})
	require.NoError(t, err)

	_, err = svc.CreateSession(ctx, &CreateSessionInput{
		Code:       "GUESTS",
		CreatorID:  "alice",
		Candidates: restaurants("a", "b"),
	})
	require.NoError(t, err)
	_, err = svc.JoinSession(ctx, &JoinSessionInput{Code: "GUESTS", UserID: "carol"})
	require.NoError(t, err)

	vote(t, svc, "GUESTS", "alice", "a", true)
	out := vote(t, svc, "GUESTS", "bob", "a", true)
	assert.False(t, out.Joined)
	vote(t, svc, "GUESTS", "carol", "a", false)

	result, err := svc.GetDecision(ctx, &GetDecisionInput{Code: "GUESTS"})
	require.NoError(t, err)
	require.Equal(t, models.DecisionBestMatch, result.Decision.Kind)
	assert.True(t, result.Decision.Majority)
	assert.Equal(t, 2, result.Decision.MemberCount)
}
