package domain

import "github.com/google/uuid"

// TransactionState is the lifecycle state of one search request.
type TransactionState int

const (
	// StateNotAsked means no request has been submitted yet.
	StateNotAsked TransactionState = iota

	// StateLoading means a request is in flight.
	StateLoading

	// StateSuccess means the last request decoded successfully.
	// This is the steady accepting state; a completed search stays
	// here until the user submits again.
	StateSuccess

	// StateFailure means the last request failed in transport or
	// decoding. Terminal until the user resubmits.
	StateFailure
)

// String returns the state name for logs and status display.
func (s TransactionState) String() string {
	switch s {
	case StateNotAsked:
		return "not asked"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// QueryTransaction tracks the lifecycle of one outstanding search request.
// It carries no result payload; records live in the surrounding model.
type QueryTransaction struct {
	// ID correlates log lines for one request. Regenerated per submit.
	ID uuid.UUID

	// State is the current lifecycle state.
	State TransactionState
}

// NewQueryTransaction returns a transaction in the initial NotAsked state.
func NewQueryTransaction() QueryTransaction {
	return QueryTransaction{State: StateNotAsked}
}

// Begin transitions to Loading and assigns a fresh transaction ID.
// Valid from every state: a new submit from Success or Failure simply
// re-enters Loading.
func (t QueryTransaction) Begin() QueryTransaction {
	return QueryTransaction{ID: uuid.New(), State: StateLoading}
}

// Succeed transitions to Success, keeping the transaction ID.
func (t QueryTransaction) Succeed() QueryTransaction {
	return QueryTransaction{ID: t.ID, State: StateSuccess}
}

// Fail transitions to Failure, keeping the transaction ID. There is no
// automatic retry; recovery requires a new Begin.
func (t QueryTransaction) Fail() QueryTransaction {
	return QueryTransaction{ID: t.ID, State: StateFailure}
}

// InFlight reports whether a request is currently outstanding.
func (t QueryTransaction) InFlight() bool {
	return t.State == StateLoading
}
