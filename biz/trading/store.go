// Package trading is the transaction-and-balance core: it reconstructs
// holdings from the append-only ledger, validates proposed trades, and
// commits a trade as one atomic ledger-append plus balance-update.
package trading

import (
	"context"

	"github.com/bennett39/stocktrader/biz/model"
	"github.com/bennett39/stocktrader/biz/money"
)

// Store is the durable state backing the trading core. Implementations live
// in biz/dal/pg (GORM/Postgres) and biz/dal/memory.
type Store interface {
	// Account returns the account by id.
	Account(ctx context.Context, id uint64) (*model.Account, error)

	// EnsureSecurity returns the security for symbol, creating it with the
	// given name if it does not exist yet. Idempotent, keyed by symbol.
	EnsureSecurity(ctx context.Context, symbol, name string) (*model.Security, error)

	// AppendTransaction inserts one immutable ledger row. Existing rows are
	// never touched.
	AppendTransaction(ctx context.Context, txn *model.Transaction) error

	// TransactionsFor returns all transactions for the account, oldest first.
	TransactionsFor(ctx context.Context, accountID uint64) ([]model.Transaction, error)

	// UpdateCash persists a new cash balance for the account.
	UpdateCash(ctx context.Context, accountID uint64, cash money.Amount) error

	// InTrade runs fn inside an atomic region serialized per account: the
	// read-validate-write sequence of two concurrent trades on the same
	// account can never interleave. If fn returns an error, every write made
	// through tx is rolled back.
	InTrade(ctx context.Context, accountID uint64, fn func(tx Store) error) error
}
