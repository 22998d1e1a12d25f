// Package memory is an in-process implementation of the trading store, used
// by tests and by dev mode when no database is configured. Per-account
// mutexes serialize the read-validate-write sequence; a snapshot taken at
// the start of each trade is restored on error, so failed trades leave no
// partial state.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bennett39/stocktrader/biz/model"
	"github.com/bennett39/stocktrader/biz/money"
	"github.com/bennett39/stocktrader/biz/trading"
)

// Compile-time interface check.
var _ trading.Store = (*Store)(nil)

type Store struct {
	mu         sync.Mutex
	accounts   map[uint64]*model.Account
	securities map[string]*model.Security
	txns       map[uint64][]model.Transaction
	tradeLocks map[uint64]*sync.Mutex
	nextID     uint64
}

func NewStore() *Store {
	return &Store{
		accounts:   make(map[uint64]*model.Account),
		securities: make(map[string]*model.Security),
		txns:       make(map[uint64][]model.Transaction),
		tradeLocks: make(map[uint64]*sync.Mutex),
	}
}

// CreateAccount registers an account with the given starting cash and
// returns its id.
func (s *Store) CreateAccount(username string, cash money.Amount) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.accounts[id] = &model.Account{
		ID:        id,
		Username:  username,
		Cash:      cash.String(),
		CreatedAt: time.Now().Unix(),
	}
	s.tradeLocks[id] = &sync.Mutex{}
	return id
}

func (s *Store) Account(_ context.Context, id uint64) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %d not found", id)
	}
	cp := *acct
	return &cp, nil
}

func (s *Store) EnsureSecurity(_ context.Context, symbol, name string) (*model.Security, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sec, ok := s.securities[symbol]; ok {
		cp := *sec
		return &cp, nil
	}
	s.nextID++
	sec := &model.Security{ID: s.nextID, Symbol: symbol, Name: name}
	s.securities[symbol] = sec
	cp := *sec
	return &cp, nil
}

func (s *Store) AppendTransaction(_ context.Context, txn *model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if txn.CreatedAt == 0 {
		txn.CreatedAt = time.Now().UnixMilli()
	}
	s.txns[txn.AccountID] = append(s.txns[txn.AccountID], *txn)
	return nil
}

func (s *Store) TransactionsFor(_ context.Context, accountID uint64) ([]model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Transaction, len(s.txns[accountID]))
	copy(out, s.txns[accountID])
	return out, nil
}

func (s *Store) UpdateCash(_ context.Context, accountID uint64, cash money.Amount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[accountID]
	if !ok {
		return fmt.Errorf("account %d not found", accountID)
	}
	acct.Cash = cash.String()
	return nil
}

// InTrade serializes trades per account and rolls back the account balance
// and ledger tail if fn fails. Securities created by fn stay created; the
// lookup-or-insert is idempotent, so that is observationally harmless.
func (s *Store) InTrade(_ context.Context, accountID uint64, fn func(tx trading.Store) error) error {
	s.mu.Lock()
	lock, ok := s.tradeLocks[accountID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("account %d not found", accountID)
	}
	s.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	snapshot := *s.accounts[accountID]
	txnLen := len(s.txns[accountID])
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		restored := snapshot
		s.accounts[accountID] = &restored
		s.txns[accountID] = s.txns[accountID][:txnLen]
		s.mu.Unlock()
		return err
	}
	return nil
}
