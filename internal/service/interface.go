package service

import (
	"context"

	"github.com/jimpyjack/stream-donations/internal/model"
	"github.com/jimpyjack/stream-donations/internal/parse"
)

// PollResult is the outcome of one poll cycle: the authoritative ledger
// re-read at the end of the cycle, the ids recorded during it, and the
// running total.
type PollResult struct {
	Donations []*model.Donation `json:"donations"`
	NewIDs    []string          `json:"newIds"`
	Total     float64           `json:"total"`
}

type PollService interface {
	PollOnce(ctx context.Context) (*PollResult, error)
}

type DonationService interface {
	ListDonations(ctx context.Context) ([]*model.Donation, float64, error)
	AddTestDonation(ctx context.Context) (*model.Donation, error)
	ClearDonations(ctx context.Context) error
}

type SettingsService interface {
	Goal(ctx context.Context) (model.Goal, error)
	SetGoal(ctx context.Context, goal model.Goal) error
	Theme(ctx context.Context) (model.Theme, error)
	SetTheme(ctx context.Context, theme model.Theme) error
	Audio(ctx context.Context) (model.AudioSettings, error)
	SetAudio(ctx context.Context, audio model.AudioSettings) error
	MovieCount(ctx context.Context) (int, error)
	SetMovieCount(ctx context.Context, count int) error
	Soundbites(ctx context.Context) (model.SoundbitesState, error)
	SetSoundbiteConfigs(ctx context.Context, configs []model.SoundbiteConfig) (model.SoundbitesState, error)
	TriggerSoundbite(ctx context.Context, filename string, volume float64) (*model.SoundbiteTrigger, error)
}

type RouletteService interface {
	State(ctx context.Context) (model.RouletteState, error)
	Vote(ctx context.Context, voterID, choice string) (*VoteResult, error)
	Apply(ctx context.Context, action string) (model.RouletteState, error)
}

// MailClient is the narrow mailbox surface the poll pipeline needs. Errors
// from either call are treated by the caller as "nothing this cycle", never
// as a cycle failure.
type MailClient interface {
	Search(ctx context.Context, provider parse.Provider) ([]model.CandidateMessage, error)
	Get(ctx context.Context, id string) (*model.FetchedMessage, error)
}
