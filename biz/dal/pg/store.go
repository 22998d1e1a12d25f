package pg

import (
	"context"
	"errors"

	"github.com/bennett39/stocktrader/biz/model"
	"github.com/bennett39/stocktrader/biz/money"
	"github.com/bennett39/stocktrader/biz/trading"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Compile-time interface check.
var _ trading.Store = (*Store)(nil)

// Store implements the trading store on GORM/Postgres.
type Store struct {
	db *gorm.DB
}

func NewStore() *Store {
	return &Store{db: GormDB}
}

func (s *Store) Account(ctx context.Context, id uint64) (*model.Account, error) {
	var acct model.Account
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&acct).Error
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

// EnsureSecurity is an idempotent lookup-or-insert keyed by symbol. A
// changed company name from the oracle is taken as a name correction.
func (s *Store) EnsureSecurity(ctx context.Context, symbol, name string) (*model.Security, error) {
	var sec model.Security
	err := s.db.WithContext(ctx).Where("symbol = ?", symbol).First(&sec).Error
	if err == nil {
		if name != "" && sec.Name != name {
			if err := s.db.WithContext(ctx).Model(&sec).Update("name", name).Error; err != nil {
				return nil, err
			}
			sec.Name = name
		}
		return &sec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sec = model.Security{Symbol: symbol, Name: name}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "symbol"}}, DoNothing: true}).
		Create(&sec).Error
	if err != nil {
		return nil, err
	}
	if sec.ID == 0 {
		// Lost the insert race, fetch the winner.
		if err := s.db.WithContext(ctx).Where("symbol = ?", symbol).First(&sec).Error; err != nil {
			return nil, err
		}
	}
	return &sec, nil
}

func (s *Store) AppendTransaction(ctx context.Context, txn *model.Transaction) error {
	return s.db.WithContext(ctx).Create(txn).Error
}

func (s *Store) TransactionsFor(ctx context.Context, accountID uint64) ([]model.Transaction, error) {
	var txns []model.Transaction
	err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at asc, txn_id asc").
		Find(&txns).Error
	return txns, err
}

func (s *Store) UpdateCash(ctx context.Context, accountID uint64, cash money.Amount) error {
	return s.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", accountID).
		Update("cash", cash.String()).Error
}

// InTrade wraps fn in a database transaction and locks the account row FOR
// UPDATE for its duration. Two concurrent trades on the same account are
// serialized on that row lock; trades on different accounts proceed in
// parallel. Any error from fn rolls the whole transaction back.
func (s *Store) InTrade(ctx context.Context, accountID uint64, fn func(tx trading.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var acct model.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", accountID).
			First(&acct).Error; err != nil {
			return err
		}
		return fn(&Store{db: tx})
	})
}
