package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jimpyjack/stream-donations/internal/model"

	_ "github.com/lib/pq"
)

type PostgresDonationRepository struct {
	db *sql.DB
}

func NewPostgresDonationRepository(db *sql.DB) *PostgresDonationRepository {
	return &PostgresDonationRepository{db: db}
}

// Insert writes a donation if its id is not already recorded. The id is the
// primary key, so ON CONFLICT DO NOTHING gives the insert-if-absent
// semantics the poll pipeline relies on for dedup across concurrent cycles.
func (r *PostgresDonationRepository) Insert(ctx context.Context, donation *model.Donation) (bool, error) {
	query := `
		INSERT INTO donations (id, name, amount, message, source, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`
	result, err := r.db.ExecContext(ctx, query,
		donation.ID, donation.Name, donation.Amount,
		donation.Message, donation.Source, donation.Timestamp)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *PostgresDonationRepository) AllIDs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM donations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

func (r *PostgresDonationRepository) FindAll(ctx context.Context) ([]*model.Donation, error) {
	query := `SELECT id, name, amount, message, source, timestamp FROM donations ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	donations := []*model.Donation{}
	for rows.Next() {
		donation := &model.Donation{}
		err := rows.Scan(
			&donation.ID, &donation.Name, &donation.Amount,
			&donation.Message, &donation.Source, &donation.Timestamp)
		if err != nil {
			return nil, err
		}
		donations = append(donations, donation)
	}

	return donations, rows.Err()
}

func (r *PostgresDonationRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM donations`)
	return err
}

// Postgres settings repository implementation
type PostgresSettingsRepository struct {
	db *sql.DB
}

func NewPostgresSettingsRepository(db *sql.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = $1`, key)

	var value []byte
	err := row.Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (r *PostgresSettingsRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	_, err := r.db.ExecContext(ctx, query, key, value)
	return err
}

// InitializeDatabase creates the necessary tables
func InitializeDatabase(db *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS donations (
			id VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			source VARCHAR(32) NOT NULL,
			timestamp TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key VARCHAR(255) PRIMARY KEY,
			value JSONB NOT NULL
		)`,
	}

	for _, table := range tables {
		_, err := db.Exec(table)
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}
