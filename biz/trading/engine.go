package trading

import (
	"context"
	"errors"
	"fmt"

	"github.com/bennett39/stocktrader/biz/model"
	"github.com/bennett39/stocktrader/biz/money"
	"github.com/bennett39/stocktrader/biz/quote"
	"go.uber.org/zap"
)

// Side says whether a trade increases the holding (buy) or decreases it
// (sell). Always passed explicitly, never inferred from request shape.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Publisher receives successfully committed transactions, e.g. for a Kafka
// trade feed. Implementations must not block the caller.
type Publisher interface {
	PublishTransaction(txn *model.Transaction)
}

// Engine validates and commits buys and sells. The oracle call runs outside
// the atomic region; validation and the paired ledger-append plus
// balance-update run inside Store.InTrade, so the two writes never diverge.
type Engine struct {
	oracle    quote.Oracle
	store     Store
	cashFloor money.Amount
	events    Publisher
	log       *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCashFloor sets the balance a trade must strictly exceed after the
// cash delta is applied. Default 0.00: a buy that exactly exhausts cash is
// rejected.
func WithCashFloor(floor money.Amount) Option {
	return func(e *Engine) { e.cashFloor = floor }
}

// WithPublisher emits committed transactions to p.
func WithPublisher(p Publisher) Option {
	return func(e *Engine) { e.events = p }
}

func NewEngine(oracle quote.Oracle, store Store, log *zap.Logger, opts ...Option) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{oracle: oracle, store: store, log: log}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// classify keeps taxonomy errors as-is and folds anything else escaping the
// atomic region, such as a commit failure, into a PersistenceError.
func classify(err error) error {
	var (
		shares *InsufficientSharesError
		cash   *InsufficientCashError
		perr   *PersistenceError
	)
	if errors.As(err, &shares) || errors.As(err, &cash) || errors.As(err, &perr) ||
		errors.Is(err, ErrQuoteUnavailable) || errors.Is(err, ErrInvalidQuantity) {
		return err
	}
	return &PersistenceError{Op: "commit trade", Err: err}
}

// Execute runs one trade. On success it returns the new transaction's id;
// on failure the account's ledger and balance are exactly as before.
func (e *Engine) Execute(ctx context.Context, accountID uint64, symbol string, quantity money.Amount, side Side) (uint64, error) {
	if quantity.Sign() <= 0 {
		return 0, ErrInvalidQuantity
	}
	if side != SideBuy && side != SideSell {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSide, side)
	}

	// Network call with unbounded latency: keep it outside the lock.
	q, err := e.oracle.LookupPrice(ctx, symbol)
	if err != nil {
		if !errors.Is(err, quote.ErrUnavailable) {
			err = fmt.Errorf("%w: %v", ErrQuoteUnavailable, err)
		}
		return 0, err
	}

	total := quantity.Mul(q.Price)
	signedQty, cashDelta := quantity, total.Neg()
	if side == SideSell {
		signedQty, cashDelta = quantity.Neg(), total
	}

	var committed *model.Transaction
	err = e.store.InTrade(ctx, accountID, func(tx Store) error {
		ledger := NewLedger(tx)

		sec, err := tx.EnsureSecurity(ctx, q.Symbol, q.Name)
		if err != nil {
			return &PersistenceError{Op: "ensure security", Err: err}
		}

		if side == SideSell {
			holdings, err := ledger.HoldingsFor(ctx, accountID)
			if err != nil {
				return err
			}
			owned := holdings[q.Symbol]
			if quantity.GreaterThan(owned) {
				return &InsufficientSharesError{Requested: quantity, Owned: owned}
			}
		}

		acct, err := tx.Account(ctx, accountID)
		if err != nil {
			return &PersistenceError{Op: "load account", Err: err}
		}
		cash, err := money.FromString(acct.Cash)
		if err != nil {
			return fmt.Errorf("account %d balance: %w", accountID, err)
		}
		newCash := cash.Add(cashDelta)
		if !newCash.GreaterThan(e.cashFloor) {
			return &InsufficientCashError{Required: total, Available: cash}
		}

		id, err := ledger.Append(ctx, accountID, sec, signedQty, q.Price)
		if err != nil {
			return err
		}
		if err := tx.UpdateCash(ctx, accountID, newCash); err != nil {
			return &PersistenceError{Op: "update balance", Err: err}
		}
		committed = &model.Transaction{
			TxnID:      id,
			AccountID:  accountID,
			SecurityID: sec.ID,
			Symbol:     sec.Symbol,
			Quantity:   signedQty.String(),
			Price:      q.Price.String(),
		}
		return nil
	})
	if err != nil {
		return 0, classify(err)
	}

	e.log.Info("trade committed",
		zap.Uint64("account_id", accountID),
		zap.Uint64("txn_id", committed.TxnID),
		zap.String("symbol", committed.Symbol),
		zap.String("side", string(side)),
		zap.String("quantity", committed.Quantity),
		zap.String("price", committed.Price))

	if e.events != nil {
		e.events.PublishTransaction(committed)
	}
	return committed.TxnID, nil
}
