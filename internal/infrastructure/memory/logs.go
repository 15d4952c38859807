package memory

import (
	"context"
	"sync"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

// appendLog is an append-only slice guarded by a mutex.
type appendLog[T any] struct {
	mu   sync.RWMutex
	rows []T
}

func (l *appendLog[T]) add(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = append(l.rows, v)
}

// find returns matching rows oldest first.
func (l *appendLog[T]) find(keep func(v *T) bool) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, 0)
	for i := range l.rows {
		if keep(&l.rows[i]) {
			out = append(out, l.rows[i])
		}
	}
	return out
}

// removeWhere drops every row matching drop.
func (l *appendLog[T]) removeWhere(drop func(v *T) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.rows[:0:0]
	for i := range l.rows {
		if !drop(&l.rows[i]) {
			kept = append(kept, l.rows[i])
		}
	}
	l.rows = kept
}

// newestFirst reverses rows and truncates them to limit.
func newestFirst[T any](rows []T, limit int) []T {
	out := make([]T, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, rows[i])
	}
	return out
}

type InventoryLogs struct{ appendLog[entity.InventoryLog] }

func (l *InventoryLogs) Append(_ context.Context, e *entity.InventoryLog) error {
	l.add(*e)
	return nil
}

func (l *InventoryLogs) ListByBahan(_ context.Context, ownerID, bahanID string) ([]entity.InventoryLog, error) {
	return l.find(func(e *entity.InventoryLog) bool { return e.OwnerID == ownerID && e.BahanID == bahanID }), nil
}

func (l *InventoryLogs) ListByOwner(_ context.Context, ownerID string) ([]entity.InventoryLog, error) {
	return l.find(func(e *entity.InventoryLog) bool { return e.OwnerID == ownerID }), nil
}

type PricingLogs struct{ appendLog[entity.PricingLog] }

func (l *PricingLogs) Append(_ context.Context, e *entity.PricingLog) error {
	l.add(*e)
	return nil
}

func (l *PricingLogs) ListByProduk(_ context.Context, ownerID, produkID string, limit int) ([]entity.PricingLog, error) {
	rows := l.find(func(e *entity.PricingLog) bool { return e.OwnerID == ownerID && e.ProdukID == produkID })
	return newestFirst(rows, limit), nil
}

type BahanPriceLogs struct{ appendLog[entity.BahanPriceLog] }

func (l *BahanPriceLogs) Append(_ context.Context, e *entity.BahanPriceLog) error {
	l.add(*e)
	return nil
}

func (l *BahanPriceLogs) ListByBahan(_ context.Context, ownerID, bahanID string, limit int) ([]entity.BahanPriceLog, error) {
	rows := l.find(func(e *entity.BahanPriceLog) bool { return e.OwnerID == ownerID && e.BahanID == bahanID })
	return newestFirst(rows, limit), nil
}
