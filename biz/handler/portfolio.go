package handler

import (
	"context"

	"github.com/bennett39/stocktrader/biz/dal/pg"
	"github.com/bennett39/stocktrader/biz/money"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type positionView struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Value    string `json:"value"`
	ValueUSD string `json:"value_usd"`
}

// GetPortfolio returns the account's valued positions plus cash and total
// equity. Fails whole if any quote is unavailable, rather than silently
// misreporting equity.
func GetPortfolio(ctx context.Context, c *app.RequestContext) {
	id, ok := accountID(c)
	if !ok {
		c.JSON(consts.StatusUnauthorized, map[string]interface{}{"error": "not logged in"})
		return
	}
	positions, err := builder.Build(ctx, id)
	if err != nil {
		c.JSON(consts.StatusBadGateway, map[string]interface{}{"error": "portfolio unavailable: " + err.Error()})
		return
	}
	acct, err := pg.GetAccount(id)
	if err != nil {
		c.JSON(consts.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}
	cash, err := money.FromString(acct.Cash)
	if err != nil {
		c.JSON(consts.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	views := make(map[string]positionView, len(positions))
	equity := cash
	for symbol, p := range positions {
		equity = equity.Add(p.Value)
		views[symbol] = positionView{
			Symbol:   p.Symbol,
			Name:     p.Name,
			Quantity: p.Quantity.String(),
			Value:    p.Value.String(),
			ValueUSD: p.Value.USD(),
		}
	}
	c.JSON(consts.StatusOK, map[string]interface{}{
		"cash":             cash.String(),
		"cash_usd":         cash.USD(),
		"positions":        views,
		"total_equity":     equity.String(),
		"total_equity_usd": equity.USD(),
	})
}

// GetHoldings returns raw net share counts per symbol without hitting the
// quote oracle. Used to populate the sell form's symbol choices.
func GetHoldings(ctx context.Context, c *app.RequestContext) {
	id, ok := accountID(c)
	if !ok {
		c.JSON(consts.StatusUnauthorized, map[string]interface{}{"error": "not logged in"})
		return
	}
	holdings, err := pg.AggregateHoldings(ctx, id)
	if err != nil {
		c.JSON(consts.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}
	out := make(map[string]string, len(holdings))
	for symbol, qty := range holdings {
		out[symbol] = qty.String()
	}
	c.JSON(consts.StatusOK, out)
}

type transactionView struct {
	TxnID     uint64 `json:"txn_id"`
	Symbol    string `json:"symbol"`
	Side      string `json:"side"`
	Quantity  string `json:"quantity"`
	Price     string `json:"price"`
	CreatedAt int64  `json:"created_at"`
}

// GetHistory returns the account's full transaction history, oldest first.
func GetHistory(ctx context.Context, c *app.RequestContext) {
	id, ok := accountID(c)
	if !ok {
		c.JSON(consts.StatusUnauthorized, map[string]interface{}{"error": "not logged in"})
		return
	}
	txns, err := ledger.TransactionsFor(ctx, id)
	if err != nil {
		c.JSON(consts.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}
	views := make([]transactionView, 0, len(txns))
	for _, t := range txns {
		side := "buy"
		if qty, err := money.FromString(t.Quantity); err == nil && qty.Sign() < 0 {
			side = "sell"
		}
		views = append(views, transactionView{
			TxnID:     t.TxnID,
			Symbol:    t.Symbol,
			Side:      side,
			Quantity:  t.Quantity,
			Price:     t.Price,
			CreatedAt: t.CreatedAt,
		})
	}
	c.JSON(consts.StatusOK, views)
}
