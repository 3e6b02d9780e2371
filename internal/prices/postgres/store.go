package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"walletscope/internal/model"
)

// Store provides Postgres persistence for token price snapshots.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InsertSnapshots appends a batch of price observations.
func (s *Store) InsertSnapshots(ctx context.Context, snapshots []model.PriceSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, snap := range snapshots {
		batch.Queue(`
			INSERT INTO token_price_snapshots (chain, address, price, captured_at)
			VALUES ($1, $2, $3, to_timestamp($4))
		`,
			snap.Chain,
			snap.Address,
			snap.Price,
			snap.Time,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range snapshots {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// LatestPrice returns the most recent recorded price for a token.
func (s *Store) LatestPrice(ctx context.Context, chain, address string) (float64, bool, error) {
	var price float64
	row := s.pool.QueryRow(ctx, `
		SELECT price FROM token_price_snapshots
		WHERE chain=$1 AND address=$2
		ORDER BY captured_at DESC
		LIMIT 1
	`, chain, address)
	if err := row.Scan(&price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return price, true, nil
}

// History returns a token's recorded prices in chronological order.
func (s *Store) History(ctx context.Context, chain, address string) ([]model.PriceSnapshot, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT chain, address, price, extract(epoch from captured_at)::bigint
		FROM token_price_snapshots
		WHERE chain=$1 AND address=$2
		ORDER BY captured_at ASC
	`, chain, address)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PriceSnapshot
	for rows.Next() {
		var snap model.PriceSnapshot
		if err := rows.Scan(&snap.Chain, &snap.Address, &snap.Price, &snap.Time); err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}
