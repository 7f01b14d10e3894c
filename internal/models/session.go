package models

import (
	"time"
)

// SessionState is the query-time label of a session. It is never stored.
type SessionState string

const (
	// SessionStateCreated indicates no votes have been recorded yet
	SessionStateCreated SessionState = "created"

	// SessionStateCollecting indicates members are still voting
	SessionStateCollecting SessionState = "collecting"

	// SessionStateDecided indicates every current member is finished and a winner exists
	SessionStateDecided SessionState = "decided"
)

// Session represents one group-decision round
type Session struct {
	// Code is the shareable identifier chosen by the creator
	Code string `json:"code"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every join and vote; used for idle eviction
	UpdatedAt time.Time `json:"updatedAt"`

	// CreatedBy is the user ID of the creator (always Members[0])
	CreatedBy string `json:"createdBy"`

	// Members are the participants in join order
	Members []string `json:"members"`

	// Candidates is the fixed, ordered choice set
	Candidates []Candidate `json:"candidates"`

	// Votes is the vote ledger for this session
	Votes *VoteLedger `json:"votes"`

	// Finished caches whether all members were finished after the last mutation.
	// Invalidated by join and vote; readers should recompute rather than trust it.
	Finished bool `json:"finished"`
}

// HasMember reports whether userID has joined the session
func (s *Session) HasMember(userID string) bool {
	for _, member := range s.Members {
		if member == userID {
			return true
		}
	}
	return false
}

// AddMember appends userID to the member list if absent and reports whether it was added
func (s *Session) AddMember(userID string) bool {
	if s.HasMember(userID) {
		return false
	}
	s.Members = append(s.Members, userID)
	return true
}

// Ledger returns the session's vote ledger, creating it on first use
func (s *Session) Ledger() *VoteLedger {
	if s.Votes == nil {
		s.Votes = NewVoteLedger()
	}
	return s.Votes
}

// Clone returns a deep copy safe to hand out of a store
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	clone := *s
	clone.Members = append([]string(nil), s.Members...)
	clone.Candidates = make([]Candidate, len(s.Candidates))
	for i, candidate := range s.Candidates {
		clone.Candidates[i] = candidate.Clone()
	}
	clone.Votes = s.Votes.Clone()

	return &clone
}
