// Package quote defines the price-lookup contract and its HTTP
// implementation. The pricing source is treated as unreliable: every failure
// mode collapses into ErrUnavailable so callers never see raw transport
// errors.
package quote

import (
	"context"
	"errors"

	"github.com/bennett39/stocktrader/biz/money"
)

// ErrUnavailable is returned for any oracle failure: network error, non-2xx
// response, malformed body, or unknown symbol.
var ErrUnavailable = errors.New("quote unavailable")

// Quote is the price snapshot for one symbol.
type Quote struct {
	Symbol string       `json:"symbol"`
	Name   string       `json:"name"`
	Price  money.Amount `json:"price"`
}

// Oracle looks up the current price for a symbol. Implementations must wrap
// every failure in ErrUnavailable. Callers may bound latency through ctx.
type Oracle interface {
	LookupPrice(ctx context.Context, symbol string) (*Quote, error)
}
