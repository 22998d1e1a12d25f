package trading

import (
	"context"
	"sync"

	"github.com/bennett39/stocktrader/biz/money"
	"github.com/bennett39/stocktrader/biz/quote"
	"github.com/panjf2000/ants/v2"
)

// Position is one valued holding, derived from the ledger plus a live quote.
type Position struct {
	Symbol   string       `json:"symbol"`
	Name     string       `json:"name"`
	Quantity money.Amount `json:"quantity"`
	Value    money.Amount `json:"value"`
}

// PortfolioBuilder combines ledger holdings with live quotes. Quote
// lookups fan out over a shared goroutine pool.
type PortfolioBuilder struct {
	ledger *Ledger
	oracle quote.Oracle
	pool   *ants.Pool
}

func NewPortfolioBuilder(store Store, oracle quote.Oracle, pool *ants.Pool) *PortfolioBuilder {
	return &PortfolioBuilder{ledger: NewLedger(store), oracle: oracle, pool: pool}
}

// Build returns the account's nonzero positions keyed by symbol, each valued
// at quantity × current price. If any quote fails the whole build fails:
// a portfolio missing a position would misrepresent total equity.
func (b *PortfolioBuilder) Build(ctx context.Context, accountID uint64) (map[string]Position, error) {
	holdings, err := b.ledger.HoldingsFor(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		positions = make(map[string]Position, len(holdings))
		firstErr  error
	)
	for symbol, qty := range holdings {
		symbol, qty := symbol, qty
		wg.Add(1)
		task := func() {
			defer wg.Done()
			q, err := b.oracle.LookupPrice(ctx, symbol)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			positions[q.Symbol] = Position{
				Symbol:   q.Symbol,
				Name:     q.Name,
				Quantity: qty,
				Value:    qty.Mul(q.Price),
			}
		}
		if b.pool == nil || b.pool.Submit(task) != nil {
			task()
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return positions, nil
}
