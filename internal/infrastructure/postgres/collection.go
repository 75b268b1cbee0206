package postgres

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Funeraria-api/internal/domain"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
)

// table describe cómo se guarda un tipo de registro: nombre, columnas de datos (sin las de
// Base), sus valores en ese orden y el escaneo de una fila.
type table[T entity.Record[T]] struct {
	name    string
	columns []string
	values  func(T) []any
	scan    func(row pgx.Row) (T, error)
}

const baseColumns = "id::text, parlor_id, created_at, updated_at"

func (t table[T]) selectList() string {
	return baseColumns + ", " + strings.Join(t.columns, ", ")
}

func (t table[T]) hasColumn(col string) bool {
	if col == "id" {
		return true
	}
	for _, c := range t.columns {
		if c == col {
			return true
		}
	}
	return false
}

// Collection implementación de repository.RemoteCollection sobre una tabla de Postgres,
// acotada a un parlor. Usable con pool o tx.
type Collection[T entity.Record[T]] struct {
	q        Querier
	parlorID string
	t        table[T]
}

func (c *Collection[T]) List(ctx context.Context, filter repository.Filter) ([]T, error) {
	var (
		where = []string{"parlor_id = $1"}
		args  = []any{c.parlorID}
	)
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !c.t.hasColumn(k) {
			return nil, fmt.Errorf("%w: columna desconocida %q en %s", domain.ErrRemoteRejected, k, c.t.name)
		}
		args = append(args, filter[k])
		col := k
		if k == "id" {
			col = "id::text"
		}
		where = append(where, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY created_at DESC`,
		c.t.selectList(), c.t.name, strings.Join(where, " AND "))
	rows, err := c.q.Query(ctx, query, args...)
	if err != nil {
		return nil, classify("list "+c.t.name, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := c.t.scan(rows)
		if err != nil {
			return nil, classify("scan "+c.t.name, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list "+c.t.name, err)
	}
	return out, nil
}

// Insert delega id y timestamps en los DEFAULT de la tabla.
func (c *Collection[T]) Insert(ctx context.Context, item T) (T, error) {
	cols := append([]string{"parlor_id"}, c.t.columns...)
	args := append([]any{c.parlorID}, c.t.values(item)...)
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		c.t.name, strings.Join(cols, ", "), placeholders(1, len(cols)), c.t.selectList())
	saved, err := c.t.scan(c.q.QueryRow(ctx, query, args...))
	if err != nil {
		var zero T
		return zero, classify("insert "+c.t.name, err)
	}
	return saved, nil
}

func (c *Collection[T]) Update(ctx context.Context, id string, item T) (T, error) {
	sets := make([]string, len(c.t.columns))
	for i, col := range c.t.columns {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+3)
	}
	args := append([]any{id, c.parlorID}, c.t.values(item)...)
	query := fmt.Sprintf(`UPDATE %s SET %s, updated_at = now() WHERE id::text = $1 AND parlor_id = $2 RETURNING %s`,
		c.t.name, strings.Join(sets, ", "), c.t.selectList())
	saved, err := c.t.scan(c.q.QueryRow(ctx, query, args...))
	if err != nil {
		var zero T
		return zero, classify("update "+c.t.name+" "+id, err)
	}
	return saved, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	tag, err := c.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id::text = $1 AND parlor_id = $2`, c.t.name), id, c.parlorID)
	if err != nil {
		return classify("delete "+c.t.name+" "+id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, c.t.name, id)
	}
	return nil
}

func placeholders(from, n int) string {
	p := make([]string, n)
	for i := range p {
		p[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(p, ", ")
}
