package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aiprdesign/fitness-plan-ai/internal/session"
)

const sweepInterval = time.Minute

func setupLogger(appEnv string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if appEnv == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	log.Logger = log.With().Str("app", "fitness-plan-ai").Logger()
}

// newStore picks Postgres when DB_URL is set, otherwise in-memory sessions.
// The returned cleanup closes any pool.
func newStore(ctx context.Context, cfg config) (session.Store, func(), error) {
	if cfg.DBURL == "" {
		log.Info().Msg("using in-memory session store")
		return session.NewMemoryStore(), func() {}, nil
	}
	pool, err := session.NewPool(ctx, cfg.DBURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Msg("DB pool ready")
	return session.NewPostgresStore(pool), pool.Close, nil
}

// sweepSessions ends sessions idle longer than ttl every interval, until ctx
// is cancelled.
func sweepSessions(ctx context.Context, store session.Store, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := store.ExpireIdle(ctx, now.Add(-ttl))
			if err != nil {
				log.Error().Err(err).Msg("session sweep failed")
				continue
			}
			if n > 0 {
				log.Info().Int("expired", n).Msg("ended idle sessions")
			}
		}
	}
}

func newRouter(h *Handler, appEnv string) *gin.Engine {
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)
	return router
}

func main() {
	cfg := loadConfig()
	setupLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to connect to database")
	}
	defer closeStore()

	go sweepSessions(ctx, store, sweepInterval, cfg.SessionTTL)

	router := newRouter(newHandler(store), cfg.AppEnv)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.AppEnv).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
