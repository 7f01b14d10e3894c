package models

import (
	"encoding/json"
)

// Vote is one user's verdict on one candidate
type Vote struct {
	UserID      string `json:"userId"`
	CandidateID string `json:"candidateId"`
	Liked       bool   `json:"liked"`
}

type voteKey struct {
	userID      string
	candidateID string
}

// VoteLedger stores at most one vote per (user, candidate) pair.
// A later vote for the same pair replaces the earlier one in place.
type VoteLedger struct {
	votes []Vote
	index map[voteKey]int
}

// NewVoteLedger creates an empty ledger
func NewVoteLedger() *VoteLedger {
	return &VoteLedger{
		index: make(map[voteKey]int),
	}
}

// Record upserts a vote and reports whether an earlier vote was replaced.
// Candidate IDs are not validated here.
func (l *VoteLedger) Record(userID, candidateID string, liked bool) bool {
	if l.index == nil {
		l.reindex()
	}

	key := voteKey{userID: userID, candidateID: candidateID}
	if i, ok := l.index[key]; ok {
		l.votes[i].Liked = liked
		return true
	}

	l.index[key] = len(l.votes)
	l.votes = append(l.votes, Vote{
		UserID:      userID,
		CandidateID: candidateID,
		Liked:       liked,
	})
	return false
}

// VotesFor returns the distinct candidate IDs userID has voted on, in first-vote order
func (l *VoteLedger) VotesFor(userID string) []string {
	if l == nil {
		return nil
	}

	var ids []string
	for _, vote := range l.votes {
		if vote.UserID == userID {
			ids = append(ids, vote.CandidateID)
		}
	}
	return ids
}

// HasVoted reports whether userID has a vote on candidateID
func (l *VoteLedger) HasVoted(userID, candidateID string) bool {
	if l == nil {
		return false
	}
	if l.index == nil {
		for _, vote := range l.votes {
			if vote.UserID == userID && vote.CandidateID == candidateID {
				return true
			}
		}
		return false
	}
	_, ok := l.index[voteKey{userID: userID, candidateID: candidateID}]
	return ok
}

// All returns a copy of every vote in first-recorded order
func (l *VoteLedger) All() []Vote {
	if l == nil {
		return nil
	}
	return append([]Vote(nil), l.votes...)
}

// Len returns the number of stored (user, candidate) pairs
func (l *VoteLedger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.votes)
}

// Clone returns an independent copy of the ledger
func (l *VoteLedger) Clone() *VoteLedger {
	if l == nil {
		return nil
	}

	clone := &VoteLedger{
		votes: append([]Vote(nil), l.votes...),
	}
	clone.reindex()
	return clone
}

func (l *VoteLedger) reindex() {
	l.index = make(map[voteKey]int, len(l.votes))
	for i, vote := range l.votes {
		l.index[voteKey{userID: vote.UserID, candidateID: vote.CandidateID}] = i
	}
}

// MarshalJSON encodes the ledger as a plain vote list
func (l *VoteLedger) MarshalJSON() ([]byte, error) {
	if l == nil || l.votes == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.votes)
}

// UnmarshalJSON decodes a vote list, collapsing duplicate pairs to the last entry
func (l *VoteLedger) UnmarshalJSON(data []byte) error {
	var votes []Vote
	if err := json.Unmarshal(data, &votes); err != nil {
		return err
	}

	l.votes = nil
	l.index = make(map[voteKey]int, len(votes))
	for _, vote := range votes {
		l.Record(vote.UserID, vote.CandidateID, vote.Liked)
	}
	return nil
}
