package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sigitdim/fortisapp-sub002/internal/application/inventory"
	"github.com/sigitdim/fortisapp-sub002/internal/application/pricing"
	"github.com/sigitdim/fortisapp-sub002/internal/application/setup"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

var (
	_ inventory.TxRunner = (*TxRunner)(nil)
	_ pricing.TxRunner   = (*TxRunner)(nil)
	_ setup.TxRunner     = (*TxRunner)(nil)
)

// TxRunner runs callbacks inside one PostgreSQL transaction with repositories bound to it.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// within begins a transaction, publishes the tenant to row-level security policies,
// runs fn and commits. Any error rolls everything back.
func (r *TxRunner) within(ctx context.Context, ownerID string, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT set_config($1, $2, true)`, ownerSetting, ownerID); err != nil {
		return mapError("set tenant", err)
	}
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPricing updates a product price and its audit row atomically.
func (r *TxRunner) RunPricing(ctx context.Context, ownerID string, fn func(
	produkRepo repository.ProdukRepository,
	logRepo repository.PricingLogRepository,
) error) error {
	return r.within(ctx, ownerID, func(tx pgx.Tx) error {
		return fn(NewProdukRepository(tx), NewPricingLogRepository(tx))
	})
}

// RunInventory reads the ledger and appends one entry from the same snapshot. A purchase
// price on the movement re-averages the ingredient price in the same transaction.
func (r *TxRunner) RunInventory(ctx context.Context, ownerID string, fn func(
	bahanRepo repository.BahanRepository,
	logRepo repository.InventoryLogRepository,
	priceLogRepo repository.BahanPriceLogRepository,
) error) error {
	return r.within(ctx, ownerID, func(tx pgx.Tx) error {
		return fn(NewBahanRepository(tx), NewInventoryLogRepository(tx), NewBahanPriceLogRepository(tx))
	})
}

// RunBahan updates an ingredient and its price log atomically.
func (r *TxRunner) RunBahan(ctx context.Context, ownerID string, fn func(
	bahanRepo repository.BahanRepository,
	priceLogRepo repository.BahanPriceLogRepository,
) error) error {
	return r.within(ctx, ownerID, func(tx pgx.Tx) error {
		return fn(NewBahanRepository(tx), NewBahanPriceLogRepository(tx))
	})
}
