package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"walletscope/internal/auth"
	"walletscope/internal/chain"
	"walletscope/internal/config"
	"walletscope/internal/history"
	"walletscope/internal/indexer"
	"walletscope/internal/prices"
	"walletscope/internal/prices/postgres"
	"walletscope/internal/ratelimit"
	"walletscope/internal/server"
)

func main() {
	root := &cobra.Command{
		Use:          "walletscope",
		Short:        "Wallet transaction history API",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE:  runServe,
	}

	serveCmd.Flags().String("listen", ":8080", "listen address")
	serveCmd.Flags().String("indexer-url", "", "chain indexing API base URL")
	serveCmd.Flags().String("indexer-key", "", "chain indexing API key")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis address")
	serveCmd.Flags().String("redis-password", "", "Redis password")
	serveCmd.Flags().String("pg-dsn", "", "Postgres DSN for price snapshots")
	serveCmd.Flags().Bool("rate-limit-enabled", true, "enable rate limiting")
	serveCmd.Flags().Duration("rate-limit-window", time.Minute, "rate limit window")
	serveCmd.Flags().Int("page-size", 1000, "transactions per indexer page")
	serveCmd.Flags().Int("max-pages", 10000, "pagination ceiling per wallet")
	serveCmd.Flags().Int("max-retries", 3, "retry attempts per indexer page")
	serveCmd.Flags().Duration("retry-backoff", 0, "initial retry backoff")
	serveCmd.Flags().Duration("price-cache-ttl", 5*time.Minute, "price cache TTL")
	serveCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	retry := indexer.Policy{MaxAttempts: cfg.MaxRetries, Backoff: cfg.RetryBackoff}
	fetcher := indexer.NewClient(cfg.IndexerURL, cfg.IndexerKey, retry, logger)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()
	}

	var store prices.SnapshotStore
	if cfg.PostgresDSN != "" {
		pgStore, err := postgres.NewStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer pgStore.Close()
		store = pgStore
	}

	priceService := prices.NewService(rdb, store, cfg.PriceCacheTTL, logger)
	historyService := history.NewService(fetcher, priceService, history.Config{
		PageSize: cfg.PageSize,
		MaxPages: cfg.MaxPages,
	}, logger)

	pool := chain.NewPool()
	defer pool.Close()

	var limiter server.RateLimiter
	if cfg.RateLimitEnabled && rdb != nil {
		limiter = ratelimit.NewLimiter(rdb, "ratelimit", logger)
	}

	srv := server.New(server.Options{
		History: historyService,
		Prices:  priceService,
		Chains:  pool,
		Limiter: limiter,
		Keyring: auth.NewKeyring(cfg.APIKeys),
		Window:  cfg.RateLimitWindow,
		Logger:  logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server start", zap.String("listen", cfg.Listen))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("api server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
