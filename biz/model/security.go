package model

// Security is a tradable stock, created lazily the first time its symbol is
// traded. Immutable apart from name corrections.
type Security struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"id"`
	Symbol string `gorm:"column:symbol;uniqueIndex;not null" json:"symbol"`
	Name   string `gorm:"column:name;not null" json:"name"`
}

func (Security) TableName() string {
	return "securities"
}
