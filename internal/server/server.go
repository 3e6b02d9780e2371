// Package server exposes the wallet history API over HTTP.
package server

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"walletscope/internal/auth"
	"walletscope/internal/history"
	"walletscope/internal/model"
	"walletscope/internal/registry"
)

// HistoryService provides classified wallet history.
type HistoryService interface {
	GetHistory(ctx context.Context, chain registry.Chain, wallet string, order history.Order) ([]model.Transaction, error)
	GetPagedHistory(ctx context.Context, chain registry.Chain, wallet string, page int) ([]model.Transaction, bool, error)
	GetSimpleHistory(ctx context.Context, chain registry.Chain, wallet string, order history.Order) ([]model.Transaction, error)
	GetFeeSummary(ctx context.Context, chain registry.Chain, wallet string) (model.FeeSummary, error)
}

// PriceService provides token prices and their recorded history.
type PriceService interface {
	TokenPrice(ctx context.Context, chain registry.Chain, address string) (float64, error)
	History(ctx context.Context, chain registry.Chain, address string) ([]model.PriceSnapshot, error)
}

// ChainReader provides live chain data over RPC.
type ChainReader interface {
	GasPrice(ctx context.Context, chain registry.Chain) (float64, error)
	LatestBlockNumber(ctx context.Context, chain registry.Chain) (uint64, error)
}

// RateLimiter enforces per-caller request allowances.
type RateLimiter interface {
	Allow(ctx context.Context, id string, limit int64, window time.Duration) (bool, error)
}

// Options configures a Server. Limiter nil disables rate limiting; Keyring
// nil or empty serves every caller on the free tier.
type Options struct {
	History HistoryService
	Prices  PriceService
	Chains  ChainReader
	Limiter RateLimiter
	Keyring *auth.Keyring
	Window  time.Duration
	Logger  *zap.Logger
}

// Server routes API requests to the underlying services.
type Server struct {
	engine  *gin.Engine
	history HistoryService
	prices  PriceService
	chains  ChainReader
	limiter RateLimiter
	keyring *auth.Keyring
	window  time.Duration
	logger  *zap.Logger
}

// New builds a server with its routes registered.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	window := opts.Window
	if window <= 0 {
		window = time.Minute
	}

	s := &Server{
		history: opts.History,
		prices:  opts.Prices,
		chains:  opts.Chains,
		limiter: opts.Limiter,
		keyring: opts.Keyring,
		window:  window,
		logger:  logger,
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())
	engine.Use(s.requestLogger())
	engine.NoRoute(routeError)

	engine.GET("/health", s.handleHealth)
	engine.GET("/chains", s.handleChains)
	engine.GET("/teapot", teapot)

	wallet := engine.Group("/:chain")
	wallet.Use(s.authorize())
	{
		wallet.GET("/info", s.handleInfo)
		wallet.GET("/gas", s.handleGas)
		wallet.GET("/tokenPrice", s.handleTokenPrice)
		wallet.GET("/tokenPriceHistory", s.handleTokenPriceHistory)
		wallet.GET("/txs", s.handleTransactions)
		wallet.GET("/fees", s.handleFees)
	}

	s.engine = engine
	return s
}

// Handler returns the HTTP handler for the registered routes.
func (s *Server) Handler() *gin.Engine {
	return s.engine
}
