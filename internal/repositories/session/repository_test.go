package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/feastfinder/internal/models"
	"github.com/stretchr/testify/suite"
)

// repositoryContract holds behaviour every Repository implementation shares.
// Concrete suites embed it and assign repo in SetupTest.
type repositoryContract struct {
	suite.Suite
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *repositoryContract) newSession(code string) *models.Session {
	return &models.Session{
		Code:      code,
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
		CreatedBy: "creator",
		Members:   []string{"creator"},
		Candidates: []models.Candidate{
			{ID: "r1", Name: "Pho Real", Cuisines: []string{"vietnamese"}},
			{ID: "r2", Name: "Taco Bout It"},
		},
		Votes: models.NewVoteLedger(),
	}
}

func (s *repositoryContract) TestCreateAndGetSession() {
	created, err := s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: s.newSession("ABC123"),
	})
	s.Require().NoError(err)
	s.Equal("ABC123", created.Code)

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{Code: "ABC123"})
	s.Require().NoError(err)
	s.Equal("creator", retrieved.CreatedBy)
	s.Equal([]string{"creator"}, retrieved.Members)
	s.Require().Len(retrieved.Candidates, 2)
	s.Equal("r1", retrieved.Candidates[0].ID)
	s.Equal([]string{"vietnamese"}, retrieved.Candidates[0].Cuisines)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
	s.Equal(0, retrieved.Votes.Len())
}

func (s *repositoryContract) TestCreateSessionDuplicateCode() {
	_, err := s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.newSession("DUP001")})
	s.Require().NoError(err)

	_, err = s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.newSession("DUP001")})
	s.ErrorIs(err, ErrSessionExists)
}

func (s *repositoryContract) TestCreateSessionValidation() {
	_, err := s.repo.CreateSession(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.newSession("")})
	s.ErrorIs(err, ErrEmptyCode)
}

func (s *repositoryContract) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{Code: "NOPE00"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *repositoryContract) TestUpdateSessionCommits() {
	_, err := s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.newSession("UPD001")})
	s.Require().NoError(err)

	updated, err := s.repo.UpdateSession(s.ctx, &UpdateSessionInput{
		Code: "UPD001",
		Update: func(session *models.Session) error {
			session.AddMember("friend")
			session.Ledger().Record("friend", "r2", true)
			return nil
		},
	})
	s.Require().NoError(err)
	s.Equal([]string{"creator", "friend"}, updated.Members)

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{Code: "UPD001"})
	s.Require().NoError(err)
	s.Equal([]string{"creator", "friend"}, retrieved.Members)
	s.True(retrieved.Votes.HasVoted("friend", "r2"))
}

func (s *repositoryContract) TestUpdateSessionErrorDiscardsChanges() {
	_, err := s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.newSession("UPD002")})
	s.Require().NoError(err)

	boom := errors.New("boom")
	_, err = s.repo.UpdateSession(s.ctx, &UpdateSessionInput{
		Code: "UPD002",
		Update: func(session *models.Session) error {
			session.AddMember("ghost")
			return boom
		},
	})
	s.ErrorIs(err, boom)

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{Code: "UPD002"})
	s.Require().NoError(err)
	s.Equal([]string{"creator"}, retrieved.Members)
}

func (s *repositoryContract) TestUpdateSessionNotFound() {
	_, err := s.repo.UpdateSession(s.ctx, &UpdateSessionInput{
		Code:   "NOPE00",
		Update: func(*models.Session) error { return nil },
	})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *repositoryContract) TestSnapshotsAreIsolated() {
	_, err := s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.newSession("ISO001")})
	s.Require().NoError(err)

	snapshot, err := s.repo.GetSession(s.ctx, &GetSessionInput{Code: "ISO001"})
	s.Require().NoError(err)
	snapshot.AddMember("sneaky")
	snapshot.Ledger().Record("sneaky", "r1", true)

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{Code: "ISO001"})
	s.Require().NoError(err)
	s.Equal([]string{"creator"}, retrieved.Members)
	s.Equal(0, retrieved.Votes.Len())
}

func (s *repositoryContract) TestConcurrentUpdatesAreNotLost() {
	_, err := s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.newSession("CON001")})
	s.Require().NoError(err)

	const voters = 10
	var wg sync.WaitGroup
	errs := make(chan error, voters)

	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", i)
			_, err := s.repo.UpdateSession(s.ctx, &UpdateSessionInput{
				Code: "CON001",
				Update: func(session *models.Session) error {
					session.AddMember(userID)
					session.Ledger().Record(userID, "r1", true)
					return nil
				},
			})
			errs <- err
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{Code: "CON001"})
	s.Require().NoError(err)
	s.Len(retrieved.Members, voters+1)
	s.Equal(voters, retrieved.Votes.Len())
}
