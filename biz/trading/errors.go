package trading

import (
	"errors"
	"fmt"

	"github.com/bennett39/stocktrader/biz/money"
	"github.com/bennett39/stocktrader/biz/quote"
)

// ErrQuoteUnavailable reports an oracle failure. The trade is recoverable;
// the user may retry.
var ErrQuoteUnavailable = quote.ErrUnavailable

// ErrInvalidQuantity reports a non-positive trade quantity.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// ErrInvalidSide reports a side other than buy or sell.
var ErrInvalidSide = errors.New("invalid trade side")

// InsufficientSharesError reports a sell that exceeds the current holding.
type InsufficientSharesError struct {
	Requested money.Amount
	Owned     money.Amount
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("insufficient shares: requested %s, owned %s",
		e.Requested, e.Owned)
}

// InsufficientCashError reports a buy that would drop the balance to or
// below the cash floor.
type InsufficientCashError struct {
	Required  money.Amount
	Available money.Amount
}

func (e *InsufficientCashError) Error() string {
	return fmt.Sprintf("insufficient cash: required %s, available %s",
		e.Required.USD(), e.Available.USD())
}

// PersistenceError reports a failed durable write or read. The failed trade
// leaves no partial state behind.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
