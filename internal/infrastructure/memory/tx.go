package memory

import (
	"context"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

// journal records how to undo the writes of one transaction. Only rows the transaction
// touched are reverted, so writes made by other callers in the meantime survive a rollback.
type journal struct {
	undo []func()
}

func (j *journal) record(fn func()) { j.undo = append(j.undo, fn) }

func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
}

// txTable is a Table whose writes are journaled.
type txTable[T any, P entity.Record[T]] struct {
	*Table[T, P]
	j *journal
}

func (t txTable[T, P]) Create(ctx context.Context, rec *T) error {
	if err := t.Table.Create(ctx, rec); err != nil {
		return err
	}
	id := P(rec).Key()
	t.j.record(func() { t.Table.remove(id) })
	return nil
}

func (t txTable[T, P]) Update(ctx context.Context, rec *T) error {
	prev, ok := t.Table.row(P(rec).Key())
	if err := t.Table.Update(ctx, rec); err != nil {
		return err
	}
	if ok {
		t.j.record(func() { t.Table.put(prev) })
	}
	return nil
}

func (t txTable[T, P]) Delete(ctx context.Context, ownerID, id string) error {
	prev, ok := t.Table.row(id)
	if err := t.Table.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	if ok {
		t.j.record(func() { t.Table.put(prev) })
	}
	return nil
}

type txInventoryLogs struct {
	*InventoryLogs
	j *journal
}

func (l txInventoryLogs) Append(ctx context.Context, e *entity.InventoryLog) error {
	if err := l.InventoryLogs.Append(ctx, e); err != nil {
		return err
	}
	id := e.ID
	l.j.record(func() { l.removeWhere(func(v *entity.InventoryLog) bool { return v.ID == id }) })
	return nil
}

type txPricingLogs struct {
	*PricingLogs
	j *journal
}

func (l txPricingLogs) Append(ctx context.Context, e *entity.PricingLog) error {
	if err := l.PricingLogs.Append(ctx, e); err != nil {
		return err
	}
	id := e.ID
	l.j.record(func() { l.removeWhere(func(v *entity.PricingLog) bool { return v.ID == id }) })
	return nil
}

type txBahanPriceLogs struct {
	*BahanPriceLogs
	j *journal
}

func (l txBahanPriceLogs) Append(ctx context.Context, e *entity.BahanPriceLog) error {
	if err := l.BahanPriceLogs.Append(ctx, e); err != nil {
		return err
	}
	id := e.ID
	l.j.record(func() { l.removeWhere(func(v *entity.BahanPriceLog) bool { return v.ID == id }) })
	return nil
}

// run serializes fn with other store transactions and undoes its writes when it fails.
func (s *Store) run(fn func(j *journal) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	j := &journal{}
	if err := fn(j); err != nil {
		j.rollback()
		return err
	}
	return nil
}
