package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewQueryTransaction(t *testing.T) {
	txn := NewQueryTransaction()

	assert.Equal(t, StateNotAsked, txn.State)
	assert.Equal(t, uuid.Nil, txn.ID)
	assert.False(t, txn.InFlight())
}

func TestQueryTransaction_Begin(t *testing.T) {
	txn := NewQueryTransaction().Begin()

	assert.Equal(t, StateLoading, txn.State)
	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.True(t, txn.InFlight())
}

// TestQueryTransaction_BeginAssignsFreshID regenerates the ID per submit.
func TestQueryTransaction_BeginAssignsFreshID(t *testing.T) {
	first := NewQueryTransaction().Begin()
	second := first.Succeed().Begin()

	assert.NotEqual(t, first.ID, second.ID)
}

func TestQueryTransaction_Succeed(t *testing.T) {
	loading := NewQueryTransaction().Begin()
	txn := loading.Succeed()

	assert.Equal(t, StateSuccess, txn.State)
	assert.Equal(t, loading.ID, txn.ID)
	assert.False(t, txn.InFlight())
}

func TestQueryTransaction_Fail(t *testing.T) {
	loading := NewQueryTransaction().Begin()
	txn := loading.Fail()

	assert.Equal(t, StateFailure, txn.State)
	assert.Equal(t, loading.ID, txn.ID)
}

// TestQueryTransaction_ResubmitAfterFailure re-enters Loading: failure is
// terminal only until the user submits again.
func TestQueryTransaction_ResubmitAfterFailure(t *testing.T) {
	txn := NewQueryTransaction().Begin().Fail().Begin()

	assert.Equal(t, StateLoading, txn.State)
}

func TestTransactionState_String(t *testing.T) {
	assert.Equal(t, "not asked", StateNotAsked.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "failure", StateFailure.String())
	assert.Equal(t, "unknown", TransactionState(99).String())
}
