package model

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// transitions is the single source of truth for reservation status
// changes. Everything not listed here is illegal.
var transitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusApproved:  true,
		StatusRejected:  true,
		StatusCancelled: true,
	},
}

func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions exist from s.
func (s Status) Terminal() bool {
	return s.Known() && len(transitions[s]) == 0
}

func (s Status) CanTransition(to Status) bool {
	return transitions[s][to]
}
