package trading

import (
	"context"
	"fmt"

	"github.com/bennett39/stocktrader/biz/model"
	"github.com/bennett39/stocktrader/biz/money"
	"github.com/bennett39/stocktrader/util"
)

// Ledger is the append-only transaction log for an account. It is the sole
// source of truth: holdings are always derived by folding signed quantities,
// never stored redundantly.
type Ledger struct {
	store Store
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// Append records one immutable transaction and returns its id. quantity is
// signed: positive for a buy, negative for a sell.
func (l *Ledger) Append(ctx context.Context, accountID uint64, sec *model.Security, quantity, price money.Amount) (uint64, error) {
	id, err := util.NextTxnID()
	if err != nil {
		return 0, &PersistenceError{Op: "generate txn id", Err: err}
	}
	txn := &model.Transaction{
		TxnID:      id,
		AccountID:  accountID,
		SecurityID: sec.ID,
		Symbol:     sec.Symbol,
		Quantity:   quantity.String(),
		Price:      price.String(),
	}
	if err := l.store.AppendTransaction(ctx, txn); err != nil {
		return 0, &PersistenceError{Op: "append transaction", Err: err}
	}
	return id, nil
}

// HoldingsFor folds the account's transactions into net quantity per symbol.
// Symbols whose net is exactly zero are omitted. Summation is commutative,
// so the result is independent of replay order.
func (l *Ledger) HoldingsFor(ctx context.Context, accountID uint64) (map[string]money.Amount, error) {
	txns, err := l.TransactionsFor(ctx, accountID)
	if err != nil {
		return nil, err
	}
	holdings := make(map[string]money.Amount)
	for _, t := range txns {
		qty, err := money.FromString(t.Quantity)
		if err != nil {
			return nil, fmt.Errorf("txn %d: %w", t.TxnID, err)
		}
		net := holdings[t.Symbol].Add(qty)
		if net.IsZero() {
			delete(holdings, t.Symbol)
		} else {
			holdings[t.Symbol] = net
		}
	}
	return holdings, nil
}

// TransactionsFor returns the account's transactions, oldest first.
func (l *Ledger) TransactionsFor(ctx context.Context, accountID uint64) ([]model.Transaction, error) {
	txns, err := l.store.TransactionsFor(ctx, accountID)
	if err != nil {
		return nil, &PersistenceError{Op: "list transactions", Err: err}
	}
	return txns, nil
}
