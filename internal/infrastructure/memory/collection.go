// Package memory implementa un backend remoto en memoria: modo de desarrollo (REMOTE_MODE=memory)
// y doble de pruebas con inyección de fallos.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Funeraria-api/internal/domain"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
)

// Op operación remota, para inyectar fallos.
type Op string

const (
	OpAll    Op = ""
	OpList   Op = "list"
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

var _ repository.RemoteCollection[entity.Client] = (*Collection[entity.Client])(nil)

// Collection colección remota en memoria de un parlor. El servidor asigna UUID y timestamps.
type Collection[T entity.Record[T]] struct {
	mu       sync.Mutex
	parlorID string
	items    []T
	failures map[Op]error
	calls    map[Op]int
	now      func() time.Time
	onChange func()
}

// NewCollection construye una colección vacía para parlorID.
func NewCollection[T entity.Record[T]](parlorID string) *Collection[T] {
	return &Collection[T]{
		parlorID: parlorID,
		failures: make(map[Op]error),
		calls:    make(map[Op]int),
		now:      time.Now,
	}
}

// Seed reemplaza el contenido remoto (tests).
func (c *Collection[T]) Seed(items ...T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
}

// Fail hace que op (u OpAll) falle con err hasta que se llame Fail(op, nil).
func (c *Collection[T]) Fail(op Op, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		delete(c.failures, op)
		return
	}
	c.failures[op] = err
}

// Calls número de llamadas recibidas por op.
func (c *Collection[T]) Calls(op Op) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[op]
}

// Items copia del contenido remoto.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) fail(op Op) error {
	c.calls[op]++
	if err, ok := c.failures[op]; ok {
		return err
	}
	return c.failures[OpAll]
}

func (c *Collection[T]) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

func (c *Collection[T]) List(ctx context.Context, filter repository.Filter) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.fail(OpList); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		ok, err := matches(it, filter)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (c *Collection[T]) Insert(ctx context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if err := c.fail(OpInsert); err != nil {
		return zero, err
	}
	now := c.now()
	saved := item.WithBase(entity.Base{ID: uuid.NewString(), ParlorID: c.parlorID, CreatedAt: now, UpdatedAt: now})
	c.items = append([]T{saved}, c.items...)
	c.changed()
	return saved, nil
}

func (c *Collection[T]) Update(ctx context.Context, id string, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if err := c.fail(OpUpdate); err != nil {
		return zero, err
	}
	for i, it := range c.items {
		b := it.RecordBase()
		if b.ID != id {
			continue
		}
		saved := item.WithBase(entity.Base{ID: id, ParlorID: c.parlorID, CreatedAt: b.CreatedAt, UpdatedAt: c.now()})
		c.items[i] = saved
		c.changed()
		return saved, nil
	}
	return zero, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.fail(OpDelete); err != nil {
		return err
	}
	for i, it := range c.items {
		if it.RecordBase().ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.changed()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}

// matches compara el filtro contra los campos JSON del registro. Un campo desconocido
// es un rechazo remoto, igual que una columna inexistente en el backend real.
func matches[T any](item T, filter repository.Filter) (bool, error) {
	if len(filter) == 0 {
		return true, nil
	}
	raw, err := json.Marshal(item)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrRemoteRejected, err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrRemoteRejected, err)
	}
	for col, want := range filter {
		v, ok := fields[col]
		if !ok {
			return false, fmt.Errorf("%w: columna desconocida %q", domain.ErrRemoteRejected, col)
		}
		if fmt.Sprint(v) != want {
			return false, nil
		}
	}
	return true, nil
}
