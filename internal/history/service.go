package history

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"walletscope/internal/indexer"
	"walletscope/internal/model"
	"walletscope/internal/registry"
)

// Page size used for caller-driven pagination.
const pagedPageSize = 100

// Fetcher retrieves raw transaction pages from the indexing service.
type Fetcher interface {
	FetchPage(ctx context.Context, chainID uint64, wallet string, pageSize, page int, opts indexer.PageOptions) (indexer.Page, error)
	FetchAll(ctx context.Context, chainID uint64, wallet string, maxPages int, opts indexer.PageOptions) []model.RawTransaction
}

// PriceSource supplies the native asset price for fee summaries.
type PriceSource interface {
	NativePrice(ctx context.Context, chain registry.Chain) (float64, error)
}

// Config tunes the history service.
type Config struct {
	PageSize int
	// MaxPages bounds pagination against an upstream that never reports
	// the final page.
	MaxPages int
}

// Service reconstructs a wallet's classified transaction history.
type Service struct {
	fetcher Fetcher
	prices  PriceSource
	cfg     Config
	logger  *zap.Logger
}

// NewService builds a history service.
func NewService(fetcher Fetcher, prices PriceSource, cfg Config, logger *zap.Logger) *Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = indexer.DefaultPageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 10000
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{fetcher: fetcher, prices: prices, cfg: cfg, logger: logger}
}

// GetHistory fetches and classifies a wallet's full transaction history,
// sorted by time. A page that exhausts its retry budget truncates the result;
// whatever was classified so far is returned.
func (s *Service) GetHistory(ctx context.Context, chain registry.Chain, wallet string, order Order) ([]model.Transaction, error) {
	cl, err := newClassifier(chain, wallet)
	if err != nil {
		return nil, err
	}

	txs := make([]model.Transaction, 0)
	for page := 0; page < s.cfg.MaxPages; page++ {
		result, err := s.fetcher.FetchPage(ctx, cl.chainID, cl.wallet, s.cfg.PageSize, page, indexer.PageOptions{})
		if err != nil {
			s.logger.Warn("history fetch truncated",
				zap.String("chain", string(chain)),
				zap.String("wallet", cl.wallet),
				zap.Int("page", page),
				zap.Error(err),
			)
			break
		}

		cl.resetPage()
		for _, tx := range result.Items {
			txs = append(txs, cl.classify(tx)...)
		}

		if !result.HasMore {
			break
		}
	}

	sortByTime(txs, order)
	return txs, nil
}

// GetPagedHistory classifies one page of a wallet's history and reports
// whether more pages are available.
func (s *Service) GetPagedHistory(ctx context.Context, chain registry.Chain, wallet string, page int) ([]model.Transaction, bool, error) {
	cl, err := newClassifier(chain, wallet)
	if err != nil {
		return nil, false, err
	}

	result, err := s.fetcher.FetchPage(ctx, cl.chainID, cl.wallet, pagedPageSize, page, indexer.PageOptions{})
	if err != nil {
		s.logger.Warn("paged history fetch failed",
			zap.String("chain", string(chain)),
			zap.String("wallet", cl.wallet),
			zap.Int("page", page),
			zap.Error(err),
		)
		return []model.Transaction{}, false, nil
	}

	txs := make([]model.Transaction, 0, len(result.Items))
	for _, tx := range result.Items {
		txs = append(txs, cl.classify(tx)...)
	}

	sortByTime(txs, OrderDesc)
	return txs, result.HasMore, nil
}

// GetSimpleHistory fetches the fee/direction overview of a wallet's history
// without decoding any logs.
func (s *Service) GetSimpleHistory(ctx context.Context, chain registry.Chain, wallet string, order Order) ([]model.Transaction, error) {
	desc, err := registry.Lookup(chain)
	if err != nil {
		return nil, err
	}
	wallet = strings.ToLower(wallet)

	items := s.fetcher.FetchAll(ctx, desc.ID, wallet, s.cfg.MaxPages, indexer.PageOptions{NoLogs: true})
	txs := make([]model.Transaction, 0, len(items))
	for _, tx := range items {
		direction := model.DirectionIn
		if strings.ToLower(tx.FromAddress) == wallet {
			direction = model.DirectionOut
		}
		txs = append(txs, model.Transaction{
			Wallet:    wallet,
			Chain:     string(chain),
			Hash:      tx.TxHash,
			Block:     tx.BlockHeight,
			Time:      parseBlockTime(tx.BlockSignedAt),
			Direction: direction,
			Fee:       Fee(chain, tx.GasSpent, tx.GasPrice),
		})
	}

	sortByTime(txs, order)
	return txs, nil
}

// GetFeeSummary totals gas spent across a wallet's outbound transactions and
// attaches the native token price at query time.
func (s *Service) GetFeeSummary(ctx context.Context, chain registry.Chain, wallet string) (model.FeeSummary, error) {
	txs, err := s.GetSimpleHistory(ctx, chain, wallet, OrderDesc)
	if err != nil {
		return model.FeeSummary{}, err
	}

	var summary model.FeeSummary
	for _, tx := range txs {
		if tx.Direction == model.DirectionOut {
			summary.Amount += tx.Fee
			summary.Txs++
		}
	}

	if s.prices != nil {
		price, err := s.prices.NativePrice(ctx, chain)
		if err != nil {
			s.logger.Warn("native price lookup failed", zap.String("chain", string(chain)), zap.Error(err))
		} else {
			summary.Price = price
		}
	}

	return summary, nil
}
