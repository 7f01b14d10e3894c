package models

// DecisionKind classifies the outcome of a session
type DecisionKind string

const (
	// DecisionNone means no candidate has a yes vote yet
	DecisionNone DecisionKind = "none"

	// DecisionFullAgreement means every current member voted yes on the winner
	DecisionFullAgreement DecisionKind = "full-agreement"

	// DecisionBestMatch means the winner has the most yes votes without full agreement
	DecisionBestMatch DecisionKind = "best-match"
)

// IsNone reports whether no decision was reached
func (k DecisionKind) IsNone() bool {
	return k == DecisionNone || k == ""
}

// IsFullAgreement reports whether everyone agreed
func (k DecisionKind) IsFullAgreement() bool {
	return k == DecisionFullAgreement
}

// IsBestMatch reports whether the winner is a best match
func (k DecisionKind) IsBestMatch() bool {
	return k == DecisionBestMatch
}

// Tally aggregates the votes cast on one candidate. Derived, never stored.
type Tally struct {
	Candidate  Candidate       `json:"restaurant"`
	YesCount   int             `json:"yesCount"`
	NoCount    int             `json:"noCount"`
	TotalVotes int             `json:"totalVotes"`
	VoterMap   map[string]bool `json:"userVotes"`
}

// Decision is the result of evaluating a session
type Decision struct {
	// Kind is none, full-agreement or best-match
	Kind DecisionKind `json:"type"`

	// Winner is set unless Kind is none
	Winner *Candidate `json:"restaurant,omitempty"`

	// YesCount is the winner's yes votes
	YesCount int `json:"yesCount,omitempty"`

	// MemberCount is the number of members when the decision was computed
	MemberCount int `json:"userCount"`

	// Majority is set on a best match whose yes count equals the member count
	Majority bool `json:"majority,omitempty"`

	// Tallies lists every candidate sorted by yes count, candidate order breaking ties
	Tallies []*Tally `json:"allVotes"`
}
