// Package decision computes completion and winners for a session.
// Everything here is a pure function of the session value passed in.
package decision

import (
	"sort"

	"github.com/KirkDiggler/feastfinder/internal/models"
)

// Tally aggregates the session's votes per candidate, in candidate order.
// Votes for IDs outside the candidate set are dropped. A duplicated candidate
// ID collects its votes on the first occurrence only.
func Tally(session *models.Session) []*models.Tally {
	tallies := make([]*models.Tally, len(session.Candidates))
	byID := make(map[string]*models.Tally, len(session.Candidates))

	for i, candidate := range session.Candidates {
		tallies[i] = &models.Tally{
			Candidate: candidate,
			VoterMap:  make(map[string]bool),
		}
		if _, ok := byID[candidate.ID]; !ok {
			byID[candidate.ID] = tallies[i]
		}
	}

	for _, vote := range session.Votes.All() {
		tally, ok := byID[vote.CandidateID]
		if !ok {
			continue
		}

		tally.VoterMap[vote.UserID] = vote.Liked
		tally.TotalVotes++
		if vote.Liked {
			tally.YesCount++
		} else {
			tally.NoCount++
		}
	}

	return tallies
}

// Rank orders tallies by yes count descending; equal counts keep their input order
func Rank(tallies []*models.Tally) []*models.Tally {
	ranked := append([]*models.Tally(nil), tallies...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].YesCount > ranked[j].YesCount
	})
	return ranked
}

// Compute evaluates the session. It never fails: an absent winner is DecisionNone.
func Compute(session *models.Session) *models.Decision {
	tallies := Tally(session)
	members := len(session.Members)

	result := &models.Decision{
		Kind:        models.DecisionNone,
		MemberCount: members,
		Tallies:     Rank(tallies),
	}

	// Full agreement is checked in candidate order so the first agreed candidate wins.
	for _, tally := range tallies {
		if members > 0 && tally.YesCount == members && len(tally.VoterMap) == members {
			winner := tally.Candidate
			result.Kind = models.DecisionFullAgreement
			result.Winner = &winner
			result.YesCount = tally.YesCount
			return result
		}
	}

	if len(result.Tallies) == 0 || result.Tallies[0].YesCount == 0 {
		return result
	}

	// The yes-count check alone is looser than full agreement: votes from
	// non-members can satisfy it while the voter count does not match.
	best := result.Tallies[0]
	winner := best.Candidate
	result.Kind = models.DecisionBestMatch
	result.Winner = &winner
	result.YesCount = best.YesCount
	result.Majority = best.YesCount == members

	return result
}
