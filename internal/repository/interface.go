package repository

import (
	"context"

	"github.com/jimpyjack/stream-donations/internal/model"
)

// DonationRepository is the donation ledger. Insert is the pipeline's sole
// deduplication gate: it must be atomic insert-if-absent, with the boolean
// reporting whether the record was newly inserted.
type DonationRepository interface {
	Insert(ctx context.Context, donation *model.Donation) (bool, error)
	AllIDs(ctx context.Context) (map[string]struct{}, error)
	FindAll(ctx context.Context) ([]*model.Donation, error)
	Clear(ctx context.Context) error
}

// SettingsRepository stores display state (goal, theme, audio, soundbites,
// roulette) as JSON values under string keys.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
