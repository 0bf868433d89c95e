package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/palmwatch/internal/ports"
)

var (
	_ ports.FormRepository = (*Repository)(nil)
	_ ports.FormSource     = (*Form)(nil)
)

// schema mirrors db/migrations; dbmate owns the table in deployed databases,
// Migrate covers fresh local files and tests.
const schema = `
CREATE TABLE IF NOT EXISTS form_values (
    profile    TEXT NOT NULL,
    field      TEXT NOT NULL,
    value      TEXT NOT NULL DEFAULT '',
    updated_at DATETIME NOT NULL,
    PRIMARY KEY (profile, field)
);`

// Repository stores the CLI's form inputs, one row per profile and field.
// Only inputs are kept; assessment envelopes are never written here.
type Repository struct {
	db *sql.DB
}

// New opens the SQLite database at dsn and makes sure the form table exists.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	r := &Repository{db: db}
	if err := r.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Repository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// ── Form values ───────────────────────────────────────────────────────────────

func (r *Repository) SetValue(ctx context.Context, profile, field, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO form_values (profile, field, value, updated_at)
		VALUES (?,?,?,?)
		ON CONFLICT (profile, field) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		profile, field, value, time.Now().UTC(),
	)
	return err
}

// GetValue returns the stored value, or "" for a field that was never set,
// just like an untouched input.
func (r *Repository) GetValue(ctx context.Context, profile, field string) (string, error) {
	var v string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM form_values WHERE profile=? AND field=?`, profile, field).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (r *Repository) ListValues(ctx context.Context, profile string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT field, value FROM form_values WHERE profile=? ORDER BY field`, profile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var field, value string
		if err := rows.Scan(&field, &value); err != nil {
			return nil, err
		}
		out[field] = value
	}
	return out, rows.Err()
}

func (r *Repository) ClearValues(ctx context.Context, profile string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM form_values WHERE profile=?`, profile)
	return err
}

// Form exposes one profile's stored values as a ports.FormSource. Every
// Value call hits the database, so edits made between submissions are seen.
type Form struct {
	repo    *Repository
	profile string
}

func (r *Repository) Form(profile string) *Form {
	return &Form{repo: r, profile: profile}
}

func (f *Form) Value(ctx context.Context, field string) (string, error) {
	return f.repo.GetValue(ctx, f.profile, field)
}
