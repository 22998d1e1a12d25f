package model

// Transaction is one immutable ledger entry (GORM). Quantity is signed:
// positive for a buy, negative for a sell. Rows are append-only; holdings
// are always derived by summing, never stored.
type Transaction struct {
	TxnID      uint64 `gorm:"primaryKey;column:txn_id" json:"txn_id"`
	AccountID  uint64 `gorm:"column:account_id;index;not null" json:"account_id"`
	SecurityID uint64 `gorm:"column:security_id;not null" json:"security_id"`
	Symbol     string `gorm:"column:symbol;index;not null" json:"symbol"`
	Quantity   string `gorm:"column:quantity;type:numeric(12,2);not null" json:"quantity"`
	Price      string `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	CreatedAt  int64  `gorm:"column:created_at;autoCreateTime:milli" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
