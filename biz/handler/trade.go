package handler

import (
	"context"
	"errors"

	"github.com/bennett39/stocktrader/biz/money"
	"github.com/bennett39/stocktrader/biz/quote"
	"github.com/bennett39/stocktrader/biz/trading"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type tradeRequest struct {
	Symbol   string `json:"symbol"`
	Quantity string `json:"quantity"`
}

// Buy purchases shares at the current oracle price.
func Buy(ctx context.Context, c *app.RequestContext) {
	executeTrade(ctx, c, trading.SideBuy)
}

// Sell liquidates shares the account already owns.
func Sell(ctx context.Context, c *app.RequestContext) {
	executeTrade(ctx, c, trading.SideSell)
}

func executeTrade(ctx context.Context, c *app.RequestContext, side trading.Side) {
	id, ok := accountID(c)
	if !ok {
		c.JSON(consts.StatusUnauthorized, map[string]interface{}{"error": "not logged in"})
		return
	}
	var req tradeRequest
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(consts.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	if req.Symbol == "" || req.Quantity == "" {
		c.JSON(consts.StatusBadRequest, map[string]interface{}{"error": "missing required fields"})
		return
	}
	qty, err := money.FromString(req.Quantity)
	if err != nil {
		c.JSON(consts.StatusBadRequest, map[string]interface{}{"error": "invalid quantity"})
		return
	}

	txnID, err := engine.Execute(ctx, id, req.Symbol, qty, side)
	if err != nil {
		status, body := tradeErrorResponse(err)
		c.JSON(status, body)
		return
	}
	c.JSON(consts.StatusOK, map[string]interface{}{
		"txn_id": txnID,
		"symbol": req.Symbol,
		"side":   string(side),
		"status": "executed",
	})
}

// tradeErrorResponse maps the trade error taxonomy onto HTTP responses.
func tradeErrorResponse(err error) (int, map[string]interface{}) {
	var shares *trading.InsufficientSharesError
	if errors.As(err, &shares) {
		return consts.StatusUnprocessableEntity, map[string]interface{}{
			"error":     "insufficient shares",
			"requested": shares.Requested.String(),
			"owned":     shares.Owned.String(),
		}
	}
	var cash *trading.InsufficientCashError
	if errors.As(err, &cash) {
		return consts.StatusUnprocessableEntity, map[string]interface{}{
			"error":     "insufficient cash",
			"required":  cash.Required.String(),
			"available": cash.Available.String(),
		}
	}
	switch {
	case errors.Is(err, trading.ErrInvalidQuantity), errors.Is(err, trading.ErrInvalidSide):
		return consts.StatusBadRequest, map[string]interface{}{"error": err.Error()}
	case errors.Is(err, quote.ErrUnavailable):
		return consts.StatusBadGateway, map[string]interface{}{"error": "quote unavailable, try again"}
	default:
		return consts.StatusInternalServerError, map[string]interface{}{"error": err.Error()}
	}
}
