package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bennett39/stocktrader/biz/dal/memory"
	"github.com/bennett39/stocktrader/biz/model"
	"github.com/bennett39/stocktrader/biz/money"
	"github.com/bennett39/stocktrader/biz/trading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInTradeRollsBackOnError(t *testing.T) {
	store := memory.NewStore()
	id := store.CreateAccount("alice", money.MustFromString("500.00"))
	ctx := context.Background()

	err := store.InTrade(ctx, id, func(tx trading.Store) error {
		sec, err := tx.EnsureSecurity(ctx, "ABC", "ABC Corp")
		require.NoError(t, err)
		require.NoError(t, tx.AppendTransaction(ctx, &model.Transaction{
			TxnID: 1, AccountID: id, SecurityID: sec.ID, Symbol: "ABC",
			Quantity: "10.00", Price: "5.00",
		}))
		require.NoError(t, tx.UpdateCash(ctx, id, money.MustFromString("450.00")))
		return errors.New("validation failed late")
	})
	require.Error(t, err)

	acct, err := store.Account(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "500.00", acct.Cash)
	txns, err := store.TransactionsFor(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestInTradeUnknownAccount(t *testing.T) {
	store := memory.NewStore()
	err := store.InTrade(context.Background(), 42, func(tx trading.Store) error {
		t.Fatal("fn must not run for an unknown account")
		return nil
	})
	assert.Error(t, err)
}

func TestEnsureSecurityIdempotent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	a, err := store.EnsureSecurity(ctx, "ABC", "ABC Corp")
	require.NoError(t, err)
	b, err := store.EnsureSecurity(ctx, "ABC", "ABC Corporation")
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
}

func TestAccountReturnsCopy(t *testing.T) {
	store := memory.NewStore()
	id := store.CreateAccount("alice", money.MustFromString("100.00"))
	ctx := context.Background()

	acct, err := store.Account(ctx, id)
	require.NoError(t, err)
	acct.Cash = "0.00"

	fresh, err := store.Account(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "100.00", fresh.Cash)
}
