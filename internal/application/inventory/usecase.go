// Package inventory records ingredient movements on the append-only ledger and reports balances.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/costing"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/ledger"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

// DefaultHistoryLimit caps GET /inventory/history when no limit is given.
const DefaultHistoryLimit = 100

type UseCase struct {
	txRunner   TxRunner
	bahanRepo  repository.BahanRepository
	logRepo    repository.InventoryLogRepository
	thresholds ThresholdSource
	now        func() time.Time
}

func NewUseCase(
	txRunner TxRunner,
	bahanRepo repository.BahanRepository,
	logRepo repository.InventoryLogRepository,
	thresholds ThresholdSource,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		bahanRepo:  bahanRepo,
		logRepo:    logRepo,
		thresholds: thresholds,
		now:        time.Now,
	}
}

// MovementInput is one ledger write request. RefID is only used by void. HargaBeli, the
// purchase price per base unit, is only accepted on in and re-averages the ingredient price.
type MovementInput struct {
	OwnerID   string
	BahanID   string
	Tipe      string
	Qty       decimal.Decimal
	Catatan   string
	RefID     *string
	HargaBeli *decimal.Decimal
}

// RecordMovement validates the movement, folds the current history for the before balance
// and appends a single entry carrying the snapshot. Nothing is written on validation failure.
// Negative balances are allowed.
func (uc *UseCase) RecordMovement(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	if err := ledger.ValidateQty(in.Tipe, in.Qty); err != nil {
		return nil, err
	}
	if in.BahanID == "" {
		return nil, domain.Invalid("bahan_id is required")
	}
	if in.HargaBeli != nil {
		if in.Tipe != entity.MovementIn {
			return nil, domain.Invalid("harga_beli is only accepted on in movements")
		}
		if in.HargaBeli.IsNegative() {
			return nil, domain.Invalid("harga_beli must not be negative")
		}
	}

	var out *dto.MovementResponse
	err := uc.txRunner.RunInventory(ctx, in.OwnerID, func(
		bahanRepo repository.BahanRepository,
		logRepo repository.InventoryLogRepository,
		priceLogRepo repository.BahanPriceLogRepository,
	) error {
		bahan, err := bahanRepo.GetByID(ctx, in.OwnerID, in.BahanID)
		if err != nil {
			return fmt.Errorf("load bahan: %w", err)
		}
		if bahan == nil {
			return domain.Missing("bahan", in.BahanID)
		}
		history, err := logRepo.ListByBahan(ctx, in.OwnerID, in.BahanID)
		if err != nil {
			return fmt.Errorf("load ledger: %w", err)
		}

		entry := entity.InventoryLog{
			ID:        uuid.New().String(),
			OwnerID:   in.OwnerID,
			BahanID:   in.BahanID,
			Tipe:      in.Tipe,
			Qty:       in.Qty,
			Catatan:   in.Catatan,
			CreatedAt: uc.now(),
		}
		if in.Tipe == entity.MovementVoid {
			ref := ""
			if in.RefID != nil {
				ref = *in.RefID
			}
			target, err := ledger.VoidTarget(history, in.BahanID, ref)
			if err != nil {
				return err
			}
			entry.RefID = &target.ID
			entry.Qty = target.Qty
		}

		entry.SaldoBefore = ledger.Balance(history)
		entry.SaldoAfter = ledger.Balance(append(history, entry))
		if err := logRepo.Append(ctx, &entry); err != nil {
			return fmt.Errorf("append ledger: %w", err)
		}
		out = &dto.MovementResponse{
			ID:      entry.ID,
			BahanID: entry.BahanID,
			Tipe:    entry.Tipe,
			Before:  entry.SaldoBefore,
			After:   entry.SaldoAfter,
		}
		if in.HargaBeli != nil {
			price, err := uc.reaverage(ctx, bahanRepo, priceLogRepo, bahan, entry, *in.HargaBeli)
			if err != nil {
				return err
			}
			out.HargaSatuan = &price
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// reaverage folds a purchase into the ingredient's unit price and logs the change.
func (uc *UseCase) reaverage(
	ctx context.Context,
	bahanRepo repository.BahanRepository,
	priceLogRepo repository.BahanPriceLogRepository,
	bahan *entity.Bahan,
	entry entity.InventoryLog,
	hargaBeli decimal.Decimal,
) (decimal.Decimal, error) {
	price := costing.WeightedAverage(entry.SaldoBefore, bahan.HargaSatuan, entry.Qty, hargaBeli)
	if price.Equal(bahan.HargaSatuan) {
		return price, nil
	}
	old := bahan.HargaSatuan
	bahan.HargaSatuan = price
	bahan.UpdatedAt = entry.CreatedAt
	if err := bahanRepo.Update(ctx, bahan); err != nil {
		return price, fmt.Errorf("update harga_satuan: %w", err)
	}
	err := priceLogRepo.Append(ctx, &entity.BahanPriceLog{
		ID:        uuid.New().String(),
		OwnerID:   bahan.OwnerID,
		BahanID:   bahan.ID,
		OldPrice:  old,
		NewPrice:  price,
		CreatedAt: entry.CreatedAt,
	})
	if err != nil {
		return price, fmt.Errorf("log bahan price: %w", err)
	}
	return price, nil
}

// Summary returns the balance of every ingredient, flagging those at or below the threshold.
func (uc *UseCase) Summary(ctx context.Context, ownerID string) ([]dto.StockSummaryItem, error) {
	bahan, err := uc.bahanRepo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list bahan: %w", err)
	}
	entries, err := uc.logRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	threshold, err := uc.thresholds.LowStockThreshold(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	perBahan := make(map[string][]entity.InventoryLog)
	for _, e := range entries {
		perBahan[e.BahanID] = append(perBahan[e.BahanID], e)
	}
	out := make([]dto.StockSummaryItem, 0, len(bahan))
	for _, b := range bahan {
		saldo := ledger.Balance(perBahan[b.ID])
		out = append(out, dto.StockSummaryItem{
			BahanID:   b.ID,
			BahanNama: b.Nama,
			Satuan:    b.Satuan,
			Saldo:     saldo,
			Low:       saldo.LessThanOrEqual(threshold),
		})
	}
	return out, nil
}

// History returns the most recent limit entries of one ingredient in chronological order.
func (uc *UseCase) History(ctx context.Context, ownerID, bahanID string, limit int) ([]dto.LedgerEntryResponse, error) {
	if bahanID == "" {
		return nil, domain.Invalid("bahan_id is required")
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	bahan, err := uc.bahanRepo.GetByID(ctx, ownerID, bahanID)
	if err != nil {
		return nil, fmt.Errorf("load bahan: %w", err)
	}
	if bahan == nil {
		return nil, domain.Missing("bahan", bahanID)
	}
	entries, err := uc.logRepo.ListByBahan(ctx, ownerID, bahanID)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	voided := ledger.Voided(entries)
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LedgerEntryResponse{
			ID:          e.ID,
			BahanID:     e.BahanID,
			Tipe:        e.Tipe,
			Qty:         e.Qty,
			Catatan:     e.Catatan,
			RefID:       e.RefID,
			SaldoBefore: e.SaldoBefore,
			SaldoAfter:  e.SaldoAfter,
			Voided:      voided[e.ID],
			CreatedAt:   e.CreatedAt,
		})
	}
	return out, nil
}
