package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Funeraria-api/internal/application/store"
	"github.com/jhoicas/Funeraria-api/internal/application/usecase"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
	"github.com/jhoicas/Funeraria-api/internal/infrastructure/cache"
	"github.com/jhoicas/Funeraria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Funeraria-api/internal/infrastructure/offline"
	"github.com/jhoicas/Funeraria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Funeraria-api/internal/interfaces/http"
	"github.com/jhoicas/Funeraria-api/pkg/config"
	"github.com/jhoicas/Funeraria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("remote_mode", cfg.Remote.Mode).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	media, closeCache := openCache(ctx, cfg.Cache, log)
	defer closeCache()

	remote, err := openRemote(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("backend remoto")
	}
	defer remote.close()

	caseReg := store.NewRegistry(entity.CollectionCases, timeout(remote.cases, cfg), media, log)
	clientReg := store.NewRegistry(entity.CollectionClients, timeout(remote.clients, cfg), media, log)
	taskReg := store.NewRegistry(entity.CollectionTasks, timeout(remote.tasks, cfg), media, log)
	paymentReg := store.NewRegistry(entity.CollectionPayments, timeout(remote.payments, cfg), media, log)

	if remote.feed != nil && cfg.Remote.Realtime {
		caseReg.Watch(ctx, remote.feed)
		clientReg.Watch(ctx, remote.feed)
		taskReg.Watch(ctx, remote.feed)
		paymentReg.Watch(ctx, remote.feed)
		if l, ok := remote.feed.(repository.Listener); ok {
			go func() {
				if err := l.Listen(ctx); err != nil {
					log.Error().Err(err).Msg("canal de cambios finalizado")
				}
			}()
		}
	}
	defer caseReg.Close()
	defer clientReg.Close()
	defer taskReg.Close()
	defer paymentReg.Close()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Remote.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Funeraria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "remote_mode": cfg.Remote.Mode})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CaseUC:    usecase.NewCaseUseCase(caseReg),
		ClientUC:  usecase.NewClientUseCase(clientReg),
		TaskUC:    usecase.NewTaskUseCase(taskReg),
		PaymentUC: usecase.NewPaymentUseCase(paymentReg),
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openCache abre la caché SQLite; con CACHE_PATH vacío o si el archivo no abre, usa memoria.
func openCache(ctx context.Context, cfg config.CacheConfig, log *logger.Logger) (repository.CacheStore, func()) {
	if cfg.Path == "" {
		log.Warn().Msg("CACHE_PATH vacío: caché local en memoria, no sobrevive reinicios")
		return cache.NewMemoryStore(), func() {}
	}
	s, err := cache.OpenSQLite(ctx, cfg.Path)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Path).Msg("abrir caché SQLite; usando memoria")
		return cache.NewMemoryStore(), func() {}
	}
	return s, func() { _ = s.Close() }
}

// remotes fábricas de colecciones remotas por tipo más el canal de cambios (si el modo lo tiene).
type remotes struct {
	cases    repository.RemoteFactory[entity.DeceasedProfile]
	clients  repository.RemoteFactory[entity.Client]
	tasks    repository.RemoteFactory[entity.Task]
	payments repository.RemoteFactory[entity.Payment]
	feed     repository.ChangeFeed
	close    func()
}

func openRemote(ctx context.Context, cfg *config.Config, log *logger.Logger) (remotes, error) {
	switch cfg.Remote.Mode {
	case config.RemoteOffline:
		log.Warn().Msg("modo offline explícito: las escrituras se guardan solo en la caché local")
		return remotes{
			cases:    offline.Factory[entity.DeceasedProfile](),
			clients:  offline.Factory[entity.Client](),
			tasks:    offline.Factory[entity.Task](),
			payments: offline.Factory[entity.Payment](),
			close:    func() {},
		}, nil
	case config.RemoteMemory:
		feed := memory.NewFeed()
		return remotes{
			cases:    memory.NewBackend[entity.DeceasedProfile](entity.CollectionCases, feed).Factory(),
			clients:  memory.NewBackend[entity.Client](entity.CollectionClients, feed).Factory(),
			tasks:    memory.NewBackend[entity.Task](entity.CollectionTasks, feed).Factory(),
			payments: memory.NewBackend[entity.Payment](entity.CollectionPayments, feed).Factory(),
			feed:     feed,
			close:    func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return remotes{}, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.Remote.Timeout)
	defer cancel()
	switch err := postgres.Ping(pingCtx, pool, cfg.DB); {
	case err != nil:
		log.Warn().Err(err).Msg("backend no disponible al arrancar; se sirve desde la caché local hasta que responda")
	case cfg.DB.AutoMigrate:
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return remotes{}, err
		}
		log.Info().Msg("migraciones aplicadas")
	}
	return remotes{
		cases:    postgres.Factory(pool, postgres.NewCaseCollection),
		clients:  postgres.Factory(pool, postgres.NewClientCollection),
		tasks:    postgres.Factory(pool, postgres.NewTaskCollection),
		payments: postgres.Factory(pool, postgres.NewPaymentCollection),
		feed:     postgres.NewChangeFeed(pool, log),
		close:    pool.Close,
	}, nil
}

func timeout[T any](f repository.RemoteFactory[T], cfg *config.Config) repository.RemoteFactory[T] {
	return store.TimeoutFactory(f, cfg.Remote.Timeout)
}
