package pg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/bennett39/stocktrader/biz/model"
	"github.com/bennett39/stocktrader/biz/money"
	"github.com/bennett39/stocktrader/biz/trading"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Integration tests need a running Postgres; set STOCKTRADER_TEST_DSN to
// enable them.
func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("STOCKTRADER_TEST_DSN")
	if dsn == "" {
		t.Skip("STOCKTRADER_TEST_DSN not set")
	}
	if GormDB == nil {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			t.Fatalf("gorm open failed: %v", err)
		}
		GormDB = db
		if err := AutoMigrate(); err != nil {
			t.Fatalf("auto migrate failed: %v", err)
		}
		pool, err := pgxpool.New(context.Background(), dsn)
		if err != nil {
			t.Fatalf("pgx pool failed: %v", err)
		}
		PostgresClient = pool
	}
	return NewStore()
}

func createTestAccount(t *testing.T, cash string) uint64 {
	t.Helper()
	username := fmt.Sprintf("test-%d", time.Now().UnixNano())
	acct, err := CreateAccount(username, "x", cash)
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	return acct.ID
}

func TestEnsureSecurityIdempotent(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	symbol := fmt.Sprintf("T%d", time.Now().UnixNano()%1e9)
	a, err := store.EnsureSecurity(ctx, symbol, "Test Corp")
	if err != nil {
		t.Fatalf("EnsureSecurity failed: %v", err)
	}
	b, err := store.EnsureSecurity(ctx, symbol, "Test Corp")
	if err != nil {
		t.Fatalf("EnsureSecurity failed: %v", err)
	}
	if a.ID != b.ID {
		t.Errorf("EnsureSecurity not idempotent: %d != %d", a.ID, b.ID)
	}
}

func TestInTradeCommitAndRollback(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	id := createTestAccount(t, "1000.00")

	sec, err := store.EnsureSecurity(ctx, fmt.Sprintf("R%d", time.Now().UnixNano()%1e9), "Rollback Corp")
	if err != nil {
		t.Fatalf("EnsureSecurity failed: %v", err)
	}

	// Failed trade: both writes must roll back.
	err = store.InTrade(ctx, id, func(tx trading.Store) error {
		if err := tx.AppendTransaction(ctx, &model.Transaction{
			TxnID: uint64(time.Now().UnixNano()), AccountID: id,
			SecurityID: sec.ID, Symbol: sec.Symbol, Quantity: "1.00", Price: "1.00",
		}); err != nil {
			return err
		}
		if err := tx.UpdateCash(ctx, id, money.MustFromString("999.00")); err != nil {
			return err
		}
		return errors.New("abort")
	})
	if err == nil {
		t.Fatal("expected error from InTrade")
	}

	acct, err := store.Account(ctx, id)
	if err != nil {
		t.Fatalf("Account failed: %v", err)
	}
	if money.MustFromString(acct.Cash).String() != "1000.00" {
		t.Errorf("balance changed after rollback: %s", acct.Cash)
	}
	txns, err := store.TransactionsFor(ctx, id)
	if err != nil {
		t.Fatalf("TransactionsFor failed: %v", err)
	}
	if len(txns) != 0 {
		t.Errorf("ledger changed after rollback: %d rows", len(txns))
	}

	// Committed trade: both writes must land.
	err = store.InTrade(ctx, id, func(tx trading.Store) error {
		if err := tx.AppendTransaction(ctx, &model.Transaction{
			TxnID: uint64(time.Now().UnixNano()), AccountID: id,
			SecurityID: sec.ID, Symbol: sec.Symbol, Quantity: "2.00", Price: "3.00",
		}); err != nil {
			return err
		}
		return tx.UpdateCash(ctx, id, money.MustFromString("994.00"))
	})
	if err != nil {
		t.Fatalf("InTrade failed: %v", err)
	}

	holdings, err := AggregateHoldings(ctx, id)
	if err != nil {
		t.Fatalf("AggregateHoldings failed: %v", err)
	}
	if got := holdings[sec.Symbol].String(); got != "2.00" {
		t.Errorf("AggregateHoldings = %s, want 2.00", got)
	}
}
