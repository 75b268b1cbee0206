package memory

import (
	"sync"

	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
)

var _ repository.ChangeFeed = (*Feed)(nil)

// Feed canal de cambios en proceso.
type Feed struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func()
}

// NewFeed construye un canal vacío.
func NewFeed() *Feed {
	return &Feed{subs: make(map[string]map[int]func())}
}

// Subscribe implementa repository.ChangeFeed.
func (f *Feed) Subscribe(collection, parlorID string, fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := collection + ":" + parlorID
	if f.subs[key] == nil {
		f.subs[key] = make(map[int]func())
	}
	f.nextID++
	id := f.nextID
	f.subs[key][id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs[key], id)
	}
}

// Publish notifica a los suscriptores de la colección y parlor.
func (f *Feed) Publish(collection, parlorID string) {
	f.mu.Lock()
	fns := make([]func(), 0, len(f.subs[collection+":"+parlorID]))
	for _, fn := range f.subs[collection+":"+parlorID] {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
