package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/aiprdesign/fitness-plan-ai/internal/health"
	"github.com/aiprdesign/fitness-plan-ai/internal/weightlog"
)

// PostgresStore keeps sessions in the sessions / session_weight_log tables
// so several API instances can serve the same session. Ending or expiring a
// session deletes its rows.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// NewPool creates a connection pool for dbURL. The simple query protocol
// avoids "cached plan must not change result type" errors from server-side
// prepared statement caches after schema changes.
func NewPool(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

/* ─── Query helpers ──────────────────────────────────────────────────── */

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// queryOne runs a query and scans the first row into T using RowToStructByName.
func queryOne[T any](ctx context.Context, q querier, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := q.Query(ctx, sql, args)
	if err != nil {
		log.Error().Err(err).Str("helper", "queryOne").Msg("query failed")
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Error().Err(err).Str("helper", "queryOne").Msg("scan failed")
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](ctx context.Context, q querier, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := q.Query(ctx, sql, args)
	if err != nil {
		log.Error().Err(err).Str("helper", "queryMany").Msg("query failed")
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Error().Err(err).Str("helper", "queryMany").Msg("scan failed")
	}
	return results, err
}

/* ─── Store ──────────────────────────────────────────────────────────── */

const selectSession = `SELECT id, created_at, last_seen_at, profile FROM sessions`

func (p *PostgresStore) Create(ctx context.Context) (Session, error) {
	s, err := queryOne[Session](ctx, p.db,
		`INSERT INTO sessions (id) VALUES (@id)
		 RETURNING id, created_at, last_seen_at, profile`,
		pgx.NamedArgs{"id": uuid.New()})
	if err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	s.WeightLog = weightlog.Log{}
	return s, nil
}

func (p *PostgresStore) Get(ctx context.Context, id uuid.UUID) (Session, error) {
	var s Session
	err := pgx.BeginFunc(ctx, p.db, func(tx pgx.Tx) error {
		var err error
		s, err = queryOne[Session](ctx, tx,
			`UPDATE sessions SET last_seen_at = now() WHERE id = @id
			 RETURNING id, created_at, last_seen_at, profile`,
			pgx.NamedArgs{"id": id})
		if err != nil {
			return err
		}
		s.WeightLog, err = loadLog(ctx, tx, id)
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

func (p *PostgresStore) SetProfile(ctx context.Context, id uuid.UUID, profile health.UserProfile) error {
	b, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	tag, err := p.db.Exec(ctx,
		`UPDATE sessions SET profile = @profile::jsonb, last_seen_at = now() WHERE id = @id`,
		pgx.NamedArgs{"id": id, "profile": string(b)})
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) LogWeight(ctx context.Context, id uuid.UUID, date weightlog.Date, weightKG float64) (weightlog.Log, error) {
	if err := weightlog.Validate(weightKG); err != nil {
		return nil, err
	}

	var out weightlog.Log
	err := pgx.BeginFunc(ctx, p.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE sessions SET last_seen_at = now() WHERE id = @id`,
			pgx.NamedArgs{"id": id})
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		// No uniqueness on (session_id, date): same-day entries are all kept.
		if _, err := tx.Exec(ctx,
			`INSERT INTO session_weight_log (session_id, date, weight_kg)
			 VALUES (@id, @date::date, @weightKG)`,
			pgx.NamedArgs{"id": id, "date": date.String(), "weightKG": weightKG}); err != nil {
			return err
		}
		out, err = loadLog(ctx, tx, id)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// Session deleted between the touch and the insert.
			return nil, ErrNotFound
		}
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("log weight: %w", err)
	}
	return out, nil
}

func (p *PostgresStore) End(ctx context.Context, id uuid.UUID) error {
	tag, err := p.db.Exec(ctx, "DELETE FROM sessions WHERE id = @id", pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) ExpireIdle(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := p.db.Exec(ctx,
		"DELETE FROM sessions WHERE last_seen_at < @cutoff",
		pgx.NamedArgs{"cutoff": cutoff})
	if err != nil {
		return 0, fmt.Errorf("expire sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// loadLog reads entries in insertion order.
func loadLog(ctx context.Context, q querier, id uuid.UUID) (weightlog.Log, error) {
	entries, err := queryMany[weightlog.Entry](ctx, q,
		`SELECT date, weight_kg FROM session_weight_log
		 WHERE session_id = @id
		 ORDER BY seq ASC`,
		pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = weightlog.Log{}
	}
	return entries, nil
}
