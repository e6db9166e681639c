package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/config"
	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/database"
	"github.com/fintrack/backend/internal/mongo"
	"github.com/fintrack/backend/internal/recurring"
	"github.com/fintrack/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration")
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.DBBackend).Msg("Database")
	}
	defer store.Close()

	r, teardown, err := router.Config(cfg.APIURL, router.Options{
		AllowOrigins: cfg.AllowOrigins,
		EnablePprof:  cfg.EnablePprof,
	})
	defer teardown()
	if err != nil {
		log.Fatal().Err(err).Msg("Router")
	}

	router.AttachRoutes(v1.Controller{
		Store:      store,
		Tokens:     auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL),
		BcryptCost: cfg.BcryptCost,
	}, r.Group("/"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("Server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.RecurringInterval > 0 {
		g.Go(func() error {
			return recurring.NewProcessor(store).Start(ctx, cfg.RecurringInterval)
		})
	} else {
		log.Info().Msg("recurring expense job is disabled")
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server")
	}
}

// openStore connects to the configured database backend.
func openStore(ctx context.Context, cfg config.Config) (database.Store, error) {
	if cfg.DBBackend == config.BackendMongo {
		return mongo.Open(ctx, mongo.Config{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDBName,
			Timeout:  cfg.MongoTimeout,
		})
	}

	// Create data directory
	err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), os.ModePerm)
	if err != nil {
		return nil, err
	}

	return database.Connect(cfg.SQLitePath)
}
