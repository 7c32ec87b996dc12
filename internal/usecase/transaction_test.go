package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTransactionRunsInOrder
func TestTransactionRunsInOrder(t *testing.T) {
	var order []string

	txn := NewTransaction()
	txn.AddOperation("primeira", func(ctx context.Context) error {
		order = append(order, "primeira")
		return nil
	})
	txn.AddOperation("segunda", func(ctx context.Context) error {
		order = append(order, "segunda")
		return nil
	})

	err := txn.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"primeira", "segunda"}, order)
}

// TestTransactionRollsBackOnFailure - falha na segunda operação desfaz a
// primeira, em ordem reversa
func TestTransactionRollsBackOnFailure(t *testing.T) {
	var order []string
	boom := errors.New("segunda falhou")

	txn := NewTransaction()
	txn.AddOperation("primeira", func(ctx context.Context) error {
		order = append(order, "primeira")
		return nil
	})
	txn.AddCompensation("desfaz_primeira", func(ctx context.Context) error {
		order = append(order, "desfaz_primeira")
		return nil
	})
	txn.AddOperation("segunda", func(ctx context.Context) error {
		return boom
	})

	err := txn.Execute(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "segunda")
	assert.Equal(t, []string{"primeira", "desfaz_primeira"}, order)
}

// TestTransactionFirstFailureSkipsRollback - nada a desfazer quando a
// primeira operação já falha
func TestTransactionFirstFailureSkipsRollback(t *testing.T) {
	compensated := false

	txn := NewTransaction()
	txn.AddOperation("primeira", func(ctx context.Context) error {
		return errors.New("boom")
	})
	txn.AddCompensation("desfaz_primeira", func(ctx context.Context) error {
		compensated = true
		return nil
	})

	err := txn.Execute(context.Background())

	assert.Error(t, err)
	assert.False(t, compensated)
}
