package pg

import (
	"context"

	"github.com/bennett39/stocktrader/biz/money"
)

// AggregateHoldings sums signed transaction quantities per symbol for one
// account, skipping symbols that net to zero. Read-only fast path over the
// pgx pool; the ledger fold inside the trade transaction stays on GORM.
func AggregateHoldings(ctx context.Context, accountID uint64) (map[string]money.Amount, error) {
	rows, err := GetPool().Query(ctx,
		`SELECT symbol, SUM(quantity)::text
		 FROM transactions
		 WHERE account_id = $1
		 GROUP BY symbol
		 HAVING SUM(quantity) <> 0`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holdings := make(map[string]money.Amount)
	for rows.Next() {
		var symbol, qty string
		if err := rows.Scan(&symbol, &qty); err != nil {
			return nil, err
		}
		amt, err := money.FromString(qty)
		if err != nil {
			return nil, err
		}
		holdings[symbol] = amt
	}
	return holdings, rows.Err()
}
