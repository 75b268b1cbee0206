package postgres

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
	"github.com/jhoicas/Funeraria-api/pkg/logger"
)

// ChangesChannel canal de NOTIFY emitido por el trigger notify_change(). Payload: "<colección>:<parlor_id>".
const ChangesChannel = "record_changes"

var (
	_ repository.ChangeFeed = (*ChangeFeed)(nil)
	_ repository.Listener   = (*ChangeFeed)(nil)
)

// ChangeFeed escucha LISTEN record_changes en una conexión dedicada del pool y despacha
// cada notificación a los suscriptores de la colección y parlor.
type ChangeFeed struct {
	pool  *pgxpool.Pool
	log   *logger.Logger
	retry time.Duration

	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func()
}

// NewChangeFeed construye el canal; Listen debe correr en su propia goroutine.
func NewChangeFeed(pool *pgxpool.Pool, log *logger.Logger) *ChangeFeed {
	if log == nil {
		log = logger.Nop()
	}
	return &ChangeFeed{
		pool:  pool,
		log:   log.Component("change_feed"),
		retry: 5 * time.Second,
		subs:  make(map[string]map[int]func()),
	}
}

// Subscribe implementa repository.ChangeFeed.
func (f *ChangeFeed) Subscribe(collection, parlorID string, fn func()) func() {
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

// Listen bloquea hasta que ctx se cancela. Si la conexión se pierde, reintenta tras una pausa.
func (f *ChangeFeed) Listen(ctx context.Context) error {
	for {
		err := f.listenOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}
		f.log.Warn().Err(err).Dur("retry", f.retry).Msg("LISTEN interrumpido, reintentando")
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(f.retry):
		}
	}
}

func (f *ChangeFeed) listenOnce(ctx context.Context) error {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return classify("listen", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+ChangesChannel); err != nil {
		return classify("listen", err)
	}
	f.log.Info().Str("channel", ChangesChannel).Msg("escuchando cambios remotos")

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		f.dispatch(n.Payload)
	}
}

// dispatch entrega payload a sus suscriptores. Los payloads sin ":" se ignoran.
func (f *ChangeFeed) dispatch(payload string) {
	collection, parlorID, ok := strings.Cut(payload, ":")
	if !ok || collection == "" || parlorID == "" {
		f.log.Debug().Str("payload", payload).Msg("notificación ignorada")
		return
	}
	f.mu.Lock()
	fns := make([]func(), 0, len(f.subs[payload]))
	for _, fn := range f.subs[collection+":"+parlorID] {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
