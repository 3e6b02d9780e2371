package prices

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"walletscope/internal/model"
	"walletscope/internal/registry"
)

// ErrUnavailable is returned when no price is known for a token.
var ErrUnavailable = errors.New("price unavailable")

// DefaultTTL bounds how long a cached price is served.
const DefaultTTL = 5 * time.Minute

// SnapshotStore persists price observations. May be absent.
type SnapshotStore interface {
	InsertSnapshots(ctx context.Context, snapshots []model.PriceSnapshot) error
	LatestPrice(ctx context.Context, chain, address string) (float64, bool, error)
	History(ctx context.Context, chain, address string) ([]model.PriceSnapshot, error)
}

// Service serves token prices from a Redis cache backed by snapshot history.
type Service struct {
	rdb    *redis.Client
	store  SnapshotStore
	ttl    time.Duration
	logger *zap.Logger
}

// NewService builds a price service. store may be nil when no snapshot
// database is configured.
func NewService(rdb *redis.Client, store SnapshotStore, ttl time.Duration, logger *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{rdb: rdb, store: store, ttl: ttl, logger: logger}
}

// TokenPrice returns the cached price of a token, falling back to the latest
// recorded snapshot.
func (s *Service) TokenPrice(ctx context.Context, chain registry.Chain, address string) (float64, error) {
	address = strings.ToLower(address)
	key := cacheKey(chain, address)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			price, parseErr := strconv.ParseFloat(cached, 64)
			if parseErr == nil {
				return price, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("price cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	if s.store == nil {
		return 0, ErrUnavailable
	}
	price, found, err := s.store.LatestPrice(ctx, string(chain), address)
	if err != nil {
		return 0, fmt.Errorf("load price snapshot: %w", err)
	}
	if !found {
		return 0, ErrUnavailable
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, key, strconv.FormatFloat(price, 'f', -1, 64), s.ttl).Err(); err != nil {
			s.logger.Warn("price cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return price, nil
}

// NativePrice returns the price of a chain's native asset.
func (s *Service) NativePrice(ctx context.Context, chain registry.Chain) (float64, error) {
	return s.TokenPrice(ctx, chain, registry.NativeAddress)
}

// SetTokenPrice updates the cache and records a snapshot.
func (s *Service) SetTokenPrice(ctx context.Context, chain registry.Chain, address string, price float64) error {
	address = strings.ToLower(address)

	if s.rdb != nil {
		key := cacheKey(chain, address)
		if err := s.rdb.Set(ctx, key, strconv.FormatFloat(price, 'f', -1, 64), s.ttl).Err(); err != nil {
			return fmt.Errorf("cache price: %w", err)
		}
	}

	if s.store != nil {
		snap := model.PriceSnapshot{
			Chain:   string(chain),
			Address: address,
			Price:   price,
			Time:    time.Now().Unix(),
		}
		if err := s.store.InsertSnapshots(ctx, []model.PriceSnapshot{snap}); err != nil {
			return fmt.Errorf("record price snapshot: %w", err)
		}
	}
	return nil
}

// History returns a token's recorded prices in chronological order.
func (s *Service) History(ctx context.Context, chain registry.Chain, address string) ([]model.PriceSnapshot, error) {
	if s.store == nil {
		return nil, ErrUnavailable
	}
	return s.store.History(ctx, string(chain), strings.ToLower(address))
}

func cacheKey(chain registry.Chain, address string) string {
	return fmt.Sprintf("price:%s:%s", chain, address)
}
