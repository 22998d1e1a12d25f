package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// GetQuote looks up the current price for a symbol.
func GetQuote(ctx context.Context, c *app.RequestContext) {
	symbol := string(c.Query("symbol"))
	if symbol == "" {
		c.JSON(consts.StatusBadRequest, map[string]interface{}{"error": "missing symbol"})
		return
	}
	q, err := oracle.LookupPrice(ctx, symbol)
	if err != nil {
		c.JSON(consts.StatusBadGateway, map[string]interface{}{"error": "quote unavailable"})
		return
	}
	c.JSON(consts.StatusOK, map[string]interface{}{
		"symbol":    q.Symbol,
		"name":      q.Name,
		"price":     q.Price.String(),
		"price_usd": q.Price.USD(),
	})
}
