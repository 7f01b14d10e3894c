package decision

import (
	"github.com/KirkDiggler/feastfinder/internal/models"
)

// UserFinished reports whether userID has voted on as many distinct candidate
// IDs as the session has candidates. Only the count is compared; the IDs are
// not checked against the candidate set.
func UserFinished(session *models.Session, userID string) bool {
	return len(session.Votes.VotesFor(userID)) >= len(session.Candidates)
}

// AllFinished reports whether every current member is finished.
// It is recomputed from current state, so a late join can flip it back to false.
func AllFinished(session *models.Session) bool {
	for _, member := range session.Members {
		if !UserFinished(session, member) {
			return false
		}
	}
	return true
}

// FinishedCount returns how many current members are finished
func FinishedCount(session *models.Session) int {
	count := 0
	for _, member := range session.Members {
		if UserFinished(session, member) {
			count++
		}
	}
	return count
}

// Remaining returns the candidates userID has not voted on yet, in candidate order
func Remaining(session *models.Session, userID string) []models.Candidate {
	remaining := make([]models.Candidate, 0, len(session.Candidates))
	for _, candidate := range session.Candidates {
		if !session.Votes.HasVoted(userID, candidate.ID) {
			remaining = append(remaining, candidate)
		}
	}
	return remaining
}

// State labels the session at query time
func State(session *models.Session) models.SessionState {
	if session.Votes.Len() == 0 {
		return models.SessionStateCreated
	}
	if AllFinished(session) && !Compute(session).Kind.IsNone() {
		return models.SessionStateDecided
	}
	return models.SessionStateCollecting
}
