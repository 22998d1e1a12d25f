// Package handler holds the REST handlers. Wiring happens once at startup
// through Init; handlers after that are plain package functions, mirroring
// the dal packages.
package handler

import (
	"github.com/bennett39/stocktrader/biz/quote"
	"github.com/bennett39/stocktrader/biz/trading"
	"github.com/cloudwego/hertz/pkg/app"
)

var (
	engine  *trading.Engine
	builder *trading.PortfolioBuilder
	ledger  *trading.Ledger
	oracle  quote.Oracle
)

// Init wires the handlers to the trading core.
func Init(e *trading.Engine, b *trading.PortfolioBuilder, l *trading.Ledger, o quote.Oracle) {
	engine = e
	builder = b
	ledger = l
	oracle = o
}

// accountID returns the account id stored by the auth middleware.
func accountID(c *app.RequestContext) (uint64, bool) {
	v, ok := c.Get("account_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
