// Package memory is an in-process implementation of every repository port, used for local
// development (STORE_DRIVER=memory) and by use-case and handler tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

// Table is the generic CRUD repository over a map, keeping insertion order for List.
type Table[T any, P entity.Record[T]] struct {
	mu    sync.RWMutex
	name  string
	rows  map[string]T
	order []string
}

func NewTable[T any, P entity.Record[T]](name string) *Table[T, P] {
	return &Table[T, P]{name: name, rows: make(map[string]T)}
}

func (t *Table[T, P]) List(_ context.Context, ownerID string) ([]*T, error) {
	return t.filter(func(rec *T) bool { return P(rec).Owner() == ownerID }), nil
}

func (t *Table[T, P]) GetByID(_ context.Context, ownerID, id string) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok := t.rows[id]
	if !ok || P(&rec).Owner() != ownerID {
		return nil, nil
	}
	return &rec, nil
}

func (t *Table[T, P]) Create(_ context.Context, rec *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := P(rec).Key()
	if _, ok := t.rows[id]; ok {
		return fmt.Errorf("%w: %s %s already exists", domain.ErrConflict, t.name, id)
	}
	t.rows[id] = *rec
	t.order = append(t.order, id)
	return nil
}

func (t *Table[T, P]) Update(_ context.Context, rec *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := P(rec).Key()
	existing, ok := t.rows[id]
	if !ok || P(&existing).Owner() != P(rec).Owner() {
		return domain.Missing(t.name, id)
	}
	t.rows[id] = *rec
	return nil
}

func (t *Table[T, P]) Delete(_ context.Context, ownerID, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	existing, ok := t.rows[id]
	if !ok || P(&existing).Owner() != ownerID {
		return domain.Missing(t.name, id)
	}
	delete(t.rows, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func (t *Table[T, P]) filter(keep func(rec *T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*T, 0)
	for _, id := range t.order {
		rec := t.rows[id]
		if keep(&rec) {
			out = append(out, &rec)
		}
	}
	return out
}

// row returns a copy of the stored row with id.
func (t *Table[T, P]) row(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok := t.rows[id]
	return rec, ok
}

// put stores rec as is, appending it to the list order when it is new.
func (t *Table[T, P]) put(rec T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := P(&rec).Key()
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = rec
}

// remove drops id without owner checks.
func (t *Table[T, P]) remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}
}

// KomposisiTable adds the BOM lookups to the generic table.
type KomposisiTable struct {
	*Table[entity.Komposisi, *entity.Komposisi]
}

func (k *KomposisiTable) ListByProduk(_ context.Context, ownerID, produkID string) ([]*entity.Komposisi, error) {
	return k.filter(func(rec *entity.Komposisi) bool {
		return rec.OwnerID == ownerID && rec.ProdukID == produkID
	}), nil
}

func (k *KomposisiTable) CountByBahan(_ context.Context, ownerID, bahanID string) (int, error) {
	return len(k.filter(func(rec *entity.Komposisi) bool {
		return rec.OwnerID == ownerID && rec.BahanID == bahanID
	})), nil
}

func (k *KomposisiTable) CountByProduk(ctx context.Context, ownerID, produkID string) (int, error) {
	rows, err := k.ListByProduk(ctx, ownerID, produkID)
	return len(rows), err
}
