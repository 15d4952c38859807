package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

// tableSpec maps one entity to its table. columns[0] must be id and columns[1] owner_id;
// values returns the arguments in column order and scan reads them back in the same order.
type tableSpec[T any] struct {
	name    string
	columns []string
	values  func(rec *T) []any
	scan    func(row pgx.Row) (*T, error)
}

func (s tableSpec[T]) selectSQL(where string) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s", strings.Join(s.columns, ", "), s.name, where)
}

// Table is the generic CRUD repository shared by all setup entities.
type Table[T any, P entity.Record[T]] struct {
	q    Querier
	spec tableSpec[T]
}

func newTable[T any, P entity.Record[T]](q Querier, spec tableSpec[T]) *Table[T, P] {
	return &Table[T, P]{q: q, spec: spec}
}

func (t *Table[T, P]) List(ctx context.Context, ownerID string) ([]*T, error) {
	return t.query(ctx, "list "+t.spec.name, t.spec.selectSQL("owner_id = $1 ORDER BY created_at, id"), ownerID)
}

func (t *Table[T, P]) GetByID(ctx context.Context, ownerID, id string) (*T, error) {
	row := t.q.QueryRow(ctx, t.spec.selectSQL("owner_id = $1 AND id = $2"), ownerID, id)
	rec, err := t.spec.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get "+t.spec.name, err)
	}
	return rec, nil
}

func (t *Table[T, P]) Create(ctx context.Context, rec *T) error {
	placeholders := make([]string, len(t.spec.columns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.spec.name, strings.Join(t.spec.columns, ", "), strings.Join(placeholders, ", "))
	if _, err := t.q.Exec(ctx, query, t.spec.values(rec)...); err != nil {
		return mapError("insert "+t.spec.name, err)
	}
	return nil
}

// Update rewrites every column except id and owner_id.
func (t *Table[T, P]) Update(ctx context.Context, rec *T) error {
	sets := make([]string, 0, len(t.spec.columns)-2)
	for i, col := range t.spec.columns[2:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+3))
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1 AND owner_id = $2", t.spec.name, strings.Join(sets, ", "))
	tag, err := t.q.Exec(ctx, query, t.spec.values(rec)...)
	if err != nil {
		return mapError("update "+t.spec.name, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Missing(t.spec.name, P(rec).Key())
	}
	return nil
}

func (t *Table[T, P]) Delete(ctx context.Context, ownerID, id string) error {
	tag, err := t.q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE owner_id = $1 AND id = $2", t.spec.name), ownerID, id)
	if err != nil {
		return mapError("delete "+t.spec.name, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Missing(t.spec.name, id)
	}
	return nil
}

func (t *Table[T, P]) query(ctx context.Context, op, query string, args ...any) ([]*T, error) {
	rows, err := t.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(op, err)
	}
	defer rows.Close()
	out := make([]*T, 0)
	for rows.Next() {
		rec, err := t.spec.scan(rows)
		if err != nil {
			return nil, mapError(op, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	return out, nil
}

func (t *Table[T, P]) count(ctx context.Context, op, where string, args ...any) (int, error) {
	var n int
	if err := t.q.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", t.spec.name, where), args...).Scan(&n); err != nil {
		return 0, mapError(op, err)
	}
	return n, nil
}
