// @title         users-service API
// @version       1.0
// @description   Self lookup and admin-only lookup of users with their roles.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Access token. Accepts "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/users/docs"

	apihttp "github.com/artem13815/users/api/http"
	"github.com/artem13815/users/api/http/handlers"
	"github.com/artem13815/users/pkg/auth"
	"github.com/artem13815/users/pkg/config"
	"github.com/artem13815/users/pkg/health"
	"github.com/artem13815/users/pkg/health/checkers"
	"github.com/artem13815/users/pkg/logging"
	"github.com/artem13815/users/pkg/repository/memory"
	pgrepo "github.com/artem13815/users/pkg/repository/postgres"
	"github.com/artem13815/users/pkg/security/jwt"
	"github.com/artem13815/users/pkg/storage/postgres"
	"github.com/artem13815/users/pkg/user"
)

// store is what both the auth and user use cases need from persistence.
type store interface {
	auth.UserRepository
	user.Repository
}

func main() {
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error(context.Background(), "server stopped", "err", err)
		os.Exit(1)
	}
}

// run owns every resource it opens, so deferred cleanup happens before main
// decides on the exit code.
func run(ctx context.Context, cfg config.Config, log logging.Logger) error {
	repo, readiness, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)

	app := apihttp.NewApp(log)
	apihttp.Register(app,
		handlers.NewAuthHandler(auth.NewService(repo, jwtGen, 0)),
		handlers.NewHealthHandler(readiness),
		handlers.NewUserHandler(user.NewService(repo)),
		jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
	)
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error(shutdownCtx, "shutdown", "err", err)
		}
	}()

	log.Info(ctx, "HTTP server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// openStore picks Postgres when DATABASE_URL is set and the in-memory store
// otherwise. The returned close func is never nil.
func openStore(ctx context.Context, cfg config.Config, log logging.Logger) (store, health.ReadinessUseCase, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warn(ctx, "DATABASE_URL is empty, using in-memory store")
		return memory.NewUserRepository(), health.NewService(), func() {}, nil
	}

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("postgres connect: %w", err)
	}
	if cfg.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return pgrepo.NewUserRepository(pool), health.NewService(checkers.NewPostgresChecker(pool)), pool.Close, nil
}
