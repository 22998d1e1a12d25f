package model

// Account is a registered user with a simulated cash balance (GORM).
// Cash is mutated only through the trade engine's atomic commit.
type Account struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"id"`
	Username     string `gorm:"column:username;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Cash         string `gorm:"column:cash;type:numeric(12,2);not null" json:"cash"`
	CreatedAt    int64  `gorm:"column:created_at" json:"created_at"`
}

func (Account) TableName() string {
	return "accounts"
}
