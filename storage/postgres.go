package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ewintr.nl/hobbyplan/model"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type Postgres struct {
	db *sql.DB
}

func NewPostgres(ctx context.Context, db *sql.DB) (*Postgres, error) {
	p := &Postgres{db: db}
	if err := p.migrate(ctx, pgMigration); err != nil {
		return nil, fmt.Errorf("failed to migrate plan database: %w", err)
	}

	return p, nil
}

func (p *Postgres) Save(ctx context.Context, plan *model.PlanRecord) error {
	body, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	query := `
INSERT INTO plan
(id, hobby, title, difficulty, text_source, created_at, body)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id)
DO UPDATE SET
  hobby = EXCLUDED.hobby,
  title = EXCLUDED.title,
  difficulty = EXCLUDED.difficulty,
  text_source = EXCLUDED.text_source,
  body = EXCLUDED.body`
	if _, err := p.db.ExecContext(ctx, query,
		plan.ID,
		plan.Hobby,
		plan.Title,
		plan.Difficulty,
		string(plan.TextSource),
		plan.CreatedAt,
		body,
	); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	return nil
}

func (p *Postgres) FindByID(ctx context.Context, id uuid.UUID) (*model.PlanRecord, error) {
	var body []byte
	err := p.db.QueryRowContext(ctx, `SELECT body FROM plan WHERE id = $1`, id).Scan(&body)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	plan := &model.PlanRecord{}
	if err := json.Unmarshal(body, plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}

	return plan, nil
}

// migrate runs the statements of wanted that are not registered yet, each in
// its own transaction together with its registration.
func (p *Postgres) migrate(ctx context.Context, wanted []string) error {
	if _, err := p.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS migration
("id" SERIAL PRIMARY KEY, "query" TEXT)`); err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}

	existing, err := p.appliedMigrations(ctx)
	if err != nil {
		return err
	}
	missing, err := compareMigrations(wanted, existing)
	if err != nil {
		return err
	}

	for _, query := range missing {
		tx, err := p.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to start migration: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to run migration %q: %w", query, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO migration (query) VALUES ($1)`, query); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to register migration: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration: %w", err)
		}
	}

	return nil
}

func (p *Postgres) appliedMigrations(ctx context.Context) ([]string, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT query FROM migration ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	defer rows.Close()

	applied := []string{}
	for rows.Next() {
		var query string
		if err := rows.Scan(&query); err != nil {
			return nil, fmt.Errorf("failed to scan migration: %w", err)
		}
		applied = append(applied, query)
	}

	return applied, rows.Err()
}

// compareMigrations returns the tail of wanted that is missing from existing.
// Existing migrations must be an unchanged prefix of wanted.
func compareMigrations(wanted, existing []string) ([]string, error) {
	if len(existing) > len(wanted) {
		return []string{}, fmt.Errorf("database has %d migrations, code knows %d", len(existing), len(wanted))
	}
	for i, query := range existing {
		if query != wanted[i] {
			return []string{}, fmt.Errorf("incompatible migration: %v", wanted[i])
		}
	}

	return append([]string{}, wanted[len(existing):]...), nil
}
