package blob

import (
	"context"
	"errors"

	perr "stockboard/internal/platform/errors"
	"stockboard/internal/platform/store"

	"github.com/jackc/pgx/v5"
)

// Postgres keeps blobs in the kv_blobs table
type Postgres struct {
	q store.TxRunner
}

const pgSchema = `CREATE TABLE IF NOT EXISTS kv_blobs (
	key        text PRIMARY KEY,
	data       bytea NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

// NewPostgres ensures the table exists on q
func NewPostgres(ctx context.Context, q store.TxRunner) (*Postgres, error) {
	if q == nil {
		return nil, perr.Unavailablef("pg blob driver needs STOCKBOARD_PG_DBURL")
	}
	if _, err := store.Exec(ctx, q, pgSchema); err != nil {
		return nil, perr.FromPostgres(err, "create kv_blobs")
	}
	return &Postgres{q: q}, nil
}

// Driver names the backend
func (s *Postgres) Driver() Driver { return DriverPostgres }

// Get selects the blob for key
func (s *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey("blob.pg.get", key); err != nil {
		return nil, err
	}
	data, err := store.Scalar[[]byte](ctx, s.q, `SELECT data FROM kv_blobs WHERE key = $1`, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, perr.FromPostgres(err, "select blob "+key)
	}
	return data, nil
}

// Put upserts the blob for key, retrying once on serialization or lock contention
func (s *Postgres) Put(ctx context.Context, key string, data []byte) error {
	if err := checkKey("blob.pg.put", key); err != nil {
		return err
	}
	if data == nil {
		data = []byte{}
	}
	upsert := func() error {
		return s.q.Tx(ctx, func(q store.RowQuerier) error {
			return store.ExecOne(ctx, q, `INSERT INTO kv_blobs (key, data, updated_at) VALUES ($1, $2, now())
				ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`, key, data)
		})
	}
	err := upsert()
	if perr.IsRetryable(err) {
		err = upsert()
	}
	if err != nil {
		return perr.FromPostgres(err, "upsert blob "+key)
	}
	return nil
}

// Delete removes the row for key
func (s *Postgres) Delete(ctx context.Context, key string) error {
	if err := checkKey("blob.pg.delete", key); err != nil {
		return err
	}
	if _, err := store.Exec(ctx, s.q, `DELETE FROM kv_blobs WHERE key = $1`, key); err != nil {
		return perr.FromPostgres(err, "delete blob "+key)
	}
	return nil
}

// Ping delegates to the sql seam when it can ping
func (s *Postgres) Ping(ctx context.Context) error {
	if p, ok := s.q.(store.Pinger); ok {
		return perr.WrapIf(p.Ping(ctx), perr.ErrorCodeUnavailable, "ping postgres")
	}
	return nil
}
