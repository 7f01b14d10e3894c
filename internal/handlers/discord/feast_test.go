package discord

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/feastfinder/internal/common/clock"
	clockMocks "github.com/KirkDiggler/feastfinder/internal/common/clock/mocks"
	"github.com/KirkDiggler/feastfinder/internal/models"
	"github.com/KirkDiggler/feastfinder/internal/picker"
	pickerMocks "github.com/KirkDiggler/feastfinder/internal/picker/mocks"
	sessionRepo "github.com/KirkDiggler/feastfinder/internal/repositories/session"
	"github.com/KirkDiggler/feastfinder/internal/services/candidates"
	candidateMocks "github.com/KirkDiggler/feastfinder/internal/services/candidates/mocks"
	"github.com/KirkDiggler/feastfinder/internal/services/messaging"
	sessionService "github.com/KirkDiggler/feastfinder/internal/services/session"
	sessionMocks "github.com/KirkDiggler/feastfinder/internal/services/session/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FeastTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockSessions   *sessionMocks.MockService
	mockCandidates *candidateMocks.MockProvider
	mockClock      *clockMocks.MockClock
	feast          *feast
	ctx            context.Context
	testTime       time.Time
	caller         user
	restaurants    []models.Candidate
}

func (s *FeastTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = sessionMocks.NewMockService(s.mockCtrl)
	s.mockCandidates = candidateMocks.NewMockProvider(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	s.caller = user{ID: "u-alice", Name: "Alice"}
	s.restaurants = []models.Candidate{
		{ID: "r1", Name: "Tacos El Gordo", Rating: 4.6, ReviewCount: 1520, PriceLevel: "$"},
		{ID: "r2", Name: "Noodle Bar", Rating: 4.2, ReviewCount: 310, Cuisines: []string{"ramen"}},
	}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	mockPicker := pickerMocks.NewMockPicker(s.mockCtrl)
	mockPicker.EXPECT().Pick(gomock.Any(), 1).Return([]int{0}).AnyTimes()

	messages, err := messaging.NewService(&messaging.Config{Picker: mockPicker})
	s.Require().NoError(err)

	f, err := newFeast(&Config{
		SessionService: s.mockSessions,
		Candidates:     s.mockCandidates,
		Messaging:      messages,
		Clock:          s.mockClock,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		CandidateLimit: 2,
	})
	s.Require().NoError(err)
	s.feast = f
}

func (s *FeastTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *FeastTestSuite) TestNewFeast_Validation() {
	_, err := newFeast(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = newFeast(&Config{})
	s.ErrorIs(err, ErrNilSessionService)

	_, err = newFeast(&Config{SessionService: s.mockSessions})
	s.ErrorIs(err, ErrNilCandidates)

	_, err = newFeast(&Config{SessionService: s.mockSessions, Candidates: s.mockCandidates})
	s.ErrorIs(err, ErrNilMessaging)
}

func (s *FeastTestSuite) TestStart() {
	s.mockCandidates.EXPECT().
		Nearby(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *candidates.NearbyInput) (*candidates.NearbyOutput, error) {
			s.Equal(candidates.CatalogCenter, *input.Location)
			s.Equal(2, input.Limit)
			s.EqualValues(wideRadiusMeters, input.RadiusMeters)
			return &candidates.NearbyOutput{Restaurants: s.restaurants, Matched: 2}, nil
		})

	s.mockSessions.EXPECT().
		CreateSession(s.ctx, &sessionService.CreateSessionInput{
			Code:       "",
			CreatorID:  "u-alice",
			Candidates: s.restaurants,
		}).
		Return(&sessionService.CreateSessionOutput{
			Session: &models.Session{Code: "ABC123", CreatedBy: "u-alice", Candidates: s.restaurants},
		}, nil)

	response, err := s.feast.start(s.ctx, s.caller, "")
	s.Require().NoError(err)

	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, response.Type)
	s.Require().Len(response.Data.Embeds, 1)
	s.Equal("Session ABC123", response.Data.Embeds[0].Title)
	s.Contains(response.Data.Embeds[0].Description, "Alice")

	row := response.Data.Components[0].(discordgo.ActionsRow)
	s.Equal("ballot|ABC123", row.Components[0].(discordgo.Button).CustomID)
	s.Equal("results|ABC123", row.Components[1].(discordgo.Button).CustomID)
}

func (s *FeastTestSuite) TestStart_CodeTaken() {
	s.mockCandidates.EXPECT().
		Nearby(s.ctx, gomock.Any()).
		Return(&candidates.NearbyOutput{Restaurants: s.restaurants}, nil)

	s.mockSessions.EXPECT().
		CreateSession(s.ctx, gomock.Any()).
		Return(nil, sessionService.ErrSessionAlreadyExists)

	response, err := s.feast.start(s.ctx, s.caller, "TAKEN")
	s.NoError(err)
	s.Equal("Code already taken", response.Data.Embeds[0].Title)
	s.Equal(discordgo.MessageFlagsEphemeral, response.Data.Flags)
}

func (s *FeastTestSuite) TestStart_RejectsCodesButtonsCannotCarry() {
	for _, code := range []string{"LUNCH|1", strings.Repeat("A", maxCodeLength+1)} {
		response, err := s.feast.start(s.ctx, s.caller, code)
		s.NoError(err, code)
		s.Equal("Invalid request", response.Data.Embeds[0].Title, code)
	}
}

func (s *FeastTestSuite) TestJoin_RejectsCodeWithSeparator() {
	response, err := s.feast.join(s.ctx, s.caller, "LUNCH|1")
	s.NoError(err)
	s.Equal("Invalid request", response.Data.Embeds[0].Title)
}

func (s *FeastTestSuite) TestJoin_NotFound() {
	s.mockSessions.EXPECT().
		JoinSession(s.ctx, &sessionService.JoinSessionInput{Code: "NOPE", UserID: "u-alice"}).
		Return(nil, sessionService.ErrSessionNotFound)

	response, err := s.feast.join(s.ctx, s.caller, "NOPE")
	s.NoError(err)
	s.Equal("Session not found", response.Data.Embeds[0].Title)
}

func (s *FeastTestSuite) TestJoin() {
	s.mockSessions.EXPECT().
		JoinSession(s.ctx, &sessionService.JoinSessionInput{Code: "ABC123", UserID: "u-alice"}).
		Return(&sessionService.JoinSessionOutput{Success: true, MemberCount: 3}, nil)

	response, err := s.feast.join(s.ctx, s.caller, "ABC123")
	s.Require().NoError(err)
	s.Equal("Alice pulled up a chair. That's 3 hungry people now.", response.Data.Content)
	s.Equal(discordgo.MessageFlagsEphemeral, response.Data.Flags)
}

func (s *FeastTestSuite) TestUnexpectedErrorIsReturned() {
	boom := context.DeadlineExceeded
	s.mockSessions.EXPECT().
		GetDecision(s.ctx, gomock.Any()).
		Return(nil, boom)

	response, err := s.feast.results(s.ctx, "ABC123")
	s.ErrorIs(err, boom)
	s.Require().NotNil(response)
	s.Equal("Something went wrong", response.Data.Embeds[0].Title)
}

func (s *FeastTestSuite) TestResults_NoDecision() {
	s.mockSessions.EXPECT().
		GetDecision(s.ctx, &sessionService.GetDecisionInput{Code: "ABC123"}).
		Return(&sessionService.GetDecisionOutput{
			Decision: &models.Decision{Kind: models.DecisionNone, MemberCount: 2},
		}, nil)

	response, err := s.feast.results(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal("No matches found", response.Data.Embeds[0].Title)
	s.Equal(colorOrange, response.Data.Embeds[0].Color)
}

func (s *FeastTestSuite) TestResults_FullAgreement() {
	winner := s.restaurants[0]
	s.mockSessions.EXPECT().
		GetDecision(s.ctx, gomock.Any()).
		Return(&sessionService.GetDecisionOutput{
			Decision: &models.Decision{
				Kind:        models.DecisionFullAgreement,
				Winner:      &winner,
				YesCount:    2,
				MemberCount: 2,
				Tallies: []*models.Tally{
					{Candidate: winner, YesCount: 2},
					{Candidate: s.restaurants[1], YesCount: 1, NoCount: 1},
				},
			},
			AllFinished: true,
		}, nil)

	response, err := s.feast.results(s.ctx, "ABC123")
	s.Require().NoError(err)

	embed := response.Data.Embeds[0]
	s.Equal("It's a match!", embed.Title)
	s.Contains(embed.Description, "Tacos El Gordo")
	s.Require().Len(embed.Fields, 1)
	s.Equal("1. Tacos El Gordo: 2 yes / 0 no\n2. Noodle Bar: 1 yes / 1 no", embed.Fields[0].Value)
}

func (s *FeastTestSuite) TestStatus() {
	session := &models.Session{
		Code:       "ABC123",
		CreatedAt:  s.testTime.Add(-2 * time.Hour),
		Candidates: s.restaurants,
	}
	s.mockSessions.EXPECT().
		GetSession(s.ctx, &sessionService.GetSessionInput{Code: "ABC123"}).
		Return(&sessionService.GetSessionOutput{Session: session, State: models.SessionStateCollecting}, nil)
	s.mockSessions.EXPECT().
		GetStatus(s.ctx, &sessionService.GetStatusInput{Code: "ABC123"}).
		Return(&sessionService.GetStatusOutput{
			State:         models.SessionStateCollecting,
			MemberCount:   3,
			FinishedCount: 1,
		}, nil)

	response, err := s.feast.status(s.ctx, "ABC123")
	s.Require().NoError(err)

	embed := response.Data.Embeds[0]
	s.Equal("1 of 3 people have finished voting.", embed.Description)
	s.Equal("collecting", embed.Fields[0].Value)
	s.Equal("2 hours ago", embed.Fields[2].Value)
}

func (s *FeastTestSuite) TestBallotButton_ShowsFirstCard() {
	s.mockSessions.EXPECT().
		JoinSession(s.ctx, &sessionService.JoinSessionInput{Code: "ABC123", UserID: "u-alice"}).
		Return(&sessionService.JoinSessionOutput{Success: true, AlreadyMember: true, MemberCount: 2}, nil)
	s.mockSessions.EXPECT().
		GetBallot(s.ctx, &sessionService.GetBallotInput{Code: "ABC123", UserID: "u-alice"}).
		Return(&sessionService.GetBallotOutput{Remaining: s.restaurants, Total: 2}, nil)

	response, err := s.feast.component(s.ctx, s.caller, "ballot|ABC123")
	s.Require().NoError(err)

	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, response.Type)
	s.Equal(discordgo.MessageFlagsEphemeral, response.Data.Flags)

	embed := response.Data.Embeds[0]
	s.Equal("Tacos El Gordo", embed.Title)
	s.Equal("1st of 2 places", embed.Footer.Text)
	s.Equal("1,520", embed.Fields[1].Value)

	row := response.Data.Components[0].(discordgo.ActionsRow)
	s.Equal("vote|ABC123|r1|yes", row.Components[0].(discordgo.Button).CustomID)
	s.Equal("vote|ABC123|r1|no", row.Components[1].(discordgo.Button).CustomID)
}

func (s *FeastTestSuite) TestBallotButton_AlreadyFinished() {
	s.mockSessions.EXPECT().
		JoinSession(s.ctx, gomock.Any()).
		Return(&sessionService.JoinSessionOutput{Success: true, AlreadyMember: true}, nil)
	s.mockSessions.EXPECT().
		GetBallot(s.ctx, gomock.Any()).
		Return(&sessionService.GetBallotOutput{VotedCount: 2, Total: 2, Finished: true}, nil)
	s.mockSessions.EXPECT().
		GetStatus(s.ctx, &sessionService.GetStatusInput{Code: "ABC123"}).
		Return(&sessionService.GetStatusOutput{AllFinished: false}, nil)

	response, err := s.feast.component(s.ctx, s.caller, "ballot|ABC123")
	s.Require().NoError(err)
	s.Equal("All done!", response.Data.Embeds[0].Title)
	s.Equal("You're done! Waiting on the rest of the group.", response.Data.Embeds[0].Description)
	s.Empty(response.Data.Components)
}

func (s *FeastTestSuite) TestVoteButton_AdvancesToNextCard() {
	s.mockSessions.EXPECT().
		RecordVote(s.ctx, &sessionService.RecordVoteInput{
			Code:        "ABC123",
			UserID:      "u-alice",
			CandidateID: "r1",
			Liked:       true,
		}).
		Return(&sessionService.RecordVoteOutput{}, nil)
	s.mockSessions.EXPECT().
		GetBallot(s.ctx, gomock.Any()).
		Return(&sessionService.GetBallotOutput{Remaining: s.restaurants[1:], VotedCount: 1, Total: 2}, nil)

	response, err := s.feast.component(s.ctx, s.caller, "vote|ABC123|r1|yes")
	s.Require().NoError(err)

	s.Equal(discordgo.InteractionResponseUpdateMessage, response.Type)
	embed := response.Data.Embeds[0]
	s.Equal("Noodle Bar", embed.Title)
	s.Equal("Noted, you'd eat there. 1 to go.", embed.Description)
	s.Equal("2nd of 2 places", embed.Footer.Text)
}

func (s *FeastTestSuite) TestVoteButton_LastVoteFinishesGroup() {
	s.mockSessions.EXPECT().
		RecordVote(s.ctx, &sessionService.RecordVoteInput{
			Code:        "ABC123",
			UserID:      "u-alice",
			CandidateID: "r2",
			Liked:       false,
		}).
		Return(&sessionService.RecordVoteOutput{UserFinished: true, AllFinished: true}, nil)

	response, err := s.feast.component(s.ctx, s.caller, "vote|ABC123|r2|no")
	s.Require().NoError(err)

	s.Equal(discordgo.InteractionResponseUpdateMessage, response.Type)
	s.Equal("Everyone has voted! Time to see where you're eating.", response.Data.Embeds[0].Description)

	row := response.Data.Components[0].(discordgo.ActionsRow)
	s.Equal("results|ABC123", row.Components[0].(discordgo.Button).CustomID)
}

func (s *FeastTestSuite) TestComponent_Malformed() {
	response, err := s.feast.component(s.ctx, s.caller, "vote|ABC123")
	s.NoError(err)
	s.Equal("Invalid request", response.Data.Embeds[0].Title)
}

func TestFeastSuite(t *testing.T) {
	suite.Run(t, new(FeastTestSuite))
}

func TestFeast_ChosenCodeButtonsRoundTrip(t *testing.T) {
	repo, err := sessionRepo.NewMemory(&sessionRepo.MemoryConfig{})
	require.NoError(t, err)

	p := picker.New(&picker.Config{Seed: 7})

	sessions, err := sessionService.New(&sessionService.Config{
		Repository:    repo,
		Clock:         clock.New(),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		CodeGenerator: p,
		JoinOnVote:    true,
	})
	require.NoError(t, err)

	provider, err := candidates.NewCatalog(&candidates.Config{Picker: p})
	require.NoError(t, err)

	messages, err := messaging.NewService(&messaging.Config{Picker: p})
	require.NoError(t, err)

	f, err := newFeast(&Config{
		SessionService: sessions,
		Candidates:     provider,
		Messaging:      messages,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		CandidateLimit: 3,
	})
	require.NoError(t, err)

	ctx := context.Background()
	alice := user{ID: "u-alice", Name: "Alice"}

	// A code the buttons cannot carry never becomes a session
	response, err := f.start(ctx, alice, "LUNCH|1")
	require.NoError(t, err)
	assert.Equal(t, "Invalid request", response.Data.Embeds[0].Title)

	_, err = sessions.GetSession(ctx, &sessionService.GetSessionInput{Code: "LUNCH|1"})
	assert.ErrorIs(t, err, sessionService.ErrSessionNotFound)

	// A longest allowed code drives every button through to a decision
	code := strings.Repeat("L", maxCodeLength)
	response, err = f.start(ctx, alice, code)
	require.NoError(t, err)

	row := response.Data.Components[0].(discordgo.ActionsRow)
	id := row.Components[0].(discordgo.Button).CustomID
	assert.LessOrEqual(t, len(id), maxCustomIDLength)

	response, err = f.component(ctx, alice, id)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		row = response.Data.Components[0].(discordgo.ActionsRow)
		id = row.Components[0].(discordgo.Button).CustomID
		require.LessOrEqual(t, len(id), maxCustomIDLength)
		require.True(t, strings.HasPrefix(id, ActionVote+customIDSeparator), id)

		response, err = f.component(ctx, alice, id)
		require.NoError(t, err)
	}

	assert.Equal(t, "All done!", response.Data.Embeds[0].Title)

	row = response.Data.Components[0].(discordgo.ActionsRow)
	response, err = f.component(ctx, alice, row.Components[0].(discordgo.Button).CustomID)
	require.NoError(t, err)
	assert.Equal(t, "It's a match!", response.Data.Embeds[0].Title)
}
