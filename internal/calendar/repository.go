package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists calendar configurations in Postgres. It is an
// optional collaborator: the Registry is the source of truth at runtime,
// the repository only survives restarts.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a calendar repository on the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Migrate creates the calendars table if it does not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS calendars (
			id           TEXT PRIMARY KEY,
			ay_start     TEXT NOT NULL,
			yyyym_strict BOOLEAN NOT NULL DEFAULT FALSE,
			periods      JSONB NOT NULL,
			month_map    JSONB NOT NULL DEFAULT '{}'::jsonb,
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

// Save upserts one calendar configuration. The configuration is finalized
// first so invalid calendars never reach the database.
func (r *Repository) Save(ctx context.Context, cfg *Config) error {
	cp := cfg.clone()
	if err := cp.Finalize(); err != nil {
		return err
	}

	periods, err := json.Marshal(cp.Periods)
	if err != nil {
		return fmt.Errorf("calendar: marshal periods: %w", err)
	}
	monthMap := cp.MonthMap
	if monthMap == nil {
		monthMap = map[int]string{}
	}
	mapped, err := json.Marshal(monthMap)
	if err != nil {
		return fmt.Errorf("calendar: marshal month_map: %w", err)
	}

	query := `
		INSERT INTO calendars (id, ay_start, yyyym_strict, periods, month_map, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (id) DO UPDATE SET
			ay_start     = EXCLUDED.ay_start,
			yyyym_strict = EXCLUDED.yyyym_strict,
			periods      = EXCLUDED.periods,
			month_map    = EXCLUDED.month_map,
			updated_at   = now()
	`
	_, err = r.pool.Exec(ctx, query, cp.ID, cp.AYStartPeriod, cp.StrictYYYYM, periods, mapped)
	return err
}

// Get loads one calendar configuration by id.
func (r *Repository) Get(ctx context.Context, id string) (*Config, error) {
	query := `
		SELECT id, ay_start, yyyym_strict, periods, month_map
		FROM calendars
		WHERE id = $1
	`
	cfg, err := scanConfig(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &UnknownCalendarError{ID: id}
	}
	return cfg, err
}

// List returns all stored calendar ids, oldest first.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM calendars ORDER BY updated_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete removes one calendar configuration.
func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM calendars WHERE id = $1`, id)
	return err
}

// LoadAll registers every stored calendar into reg and returns how many
// were loaded. Used at startup to rehydrate the registry.
func (r *Repository) LoadAll(ctx context.Context, reg *Registry) (int, error) {
	query := `
		SELECT id, ay_start, yyyym_strict, periods, month_map
		FROM calendars
		ORDER BY updated_at ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	loaded := 0
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return loaded, err
		}
		if err := reg.Register(cfg); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfig(row rowScanner) (*Config, error) {
	var (
		cfg      Config
		periods  []byte
		monthMap []byte
	)
	if err := row.Scan(&cfg.ID, &cfg.AYStartPeriod, &cfg.StrictYYYYM, &periods, &monthMap); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(periods, &cfg.Periods); err != nil {
		return nil, fmt.Errorf("calendar: unmarshal periods: %w", err)
	}
	if err := json.Unmarshal(monthMap, &cfg.MonthMap); err != nil {
		return nil, fmt.Errorf("calendar: unmarshal month_map: %w", err)
	}
	if len(cfg.MonthMap) == 0 {
		cfg.MonthMap = nil
	}
	return &cfg, nil
}
