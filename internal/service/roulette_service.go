package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jimpyjack/stream-donations/internal/logger"
	"github.com/jimpyjack/stream-donations/internal/model"
	"github.com/jimpyjack/stream-donations/internal/repository"
)

// voteCooldown is how long a voter waits between accepted votes.
const voteCooldown = 10 * time.Minute

var ErrInvalidAction = errors.New("invalid roulette action")

// VoteResult reports whether a vote was counted and, if not, why.
type VoteResult struct {
	Accepted    bool   `json:"success"`
	Reason      string `json:"reason,omitempty"`
	RemainingMS int64  `json:"remainingMs,omitempty"`
	RedVotes    int    `json:"redVotes"`
	BlackVotes  int    `json:"blackVotes"`
	SessionID   string `json:"sessionId"`
}

type rouletteService struct {
	settingsRepo repository.SettingsRepository
	logger       *logger.Logger

	// now is swappable so tests can step through the cooldown window.
	now func() time.Time
}

func NewRouletteService(settingsRepo repository.SettingsRepository, logger *logger.Logger) RouletteService {
	return &rouletteService{
		settingsRepo: settingsRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *rouletteService) load(ctx context.Context) (model.RouletteState, error) {
	state := model.DefaultRoulette()
	value, found, err := s.settingsRepo.Get(ctx, keyRoulette)
	if err != nil {
		return state, fmt.Errorf("failed to read roulette state: %w", err)
	}
	if !found {
		return state, nil
	}
	if err := json.Unmarshal(value, &state); err != nil {
		return state, fmt.Errorf("failed to decode roulette state: %w", err)
	}
	if state.VoterTimestamps == nil {
		state.VoterTimestamps = map[string]int64{}
	}
	return state, nil
}

func (s *rouletteService) save(ctx context.Context, state model.RouletteState) error {
	encoded, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode roulette state: %w", err)
	}
	if err := s.settingsRepo.Set(ctx, keyRoulette, encoded); err != nil {
		return fmt.Errorf("failed to write roulette state: %w", err)
	}
	return nil
}

func (s *rouletteService) State(ctx context.Context) (model.RouletteState, error) {
	return s.load(ctx)
}

// Vote counts a red/black vote, rejecting votes while the session is closed
// and re-votes inside the per-voter cooldown window.
func (s *rouletteService) Vote(ctx context.Context, voterID, choice string) (*VoteResult, error) {
	if voterID == "" || (choice != "red" && choice != "black") {
		return &VoteResult{Reason: "invalid"}, nil
	}

	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if !state.Active {
		return &VoteResult{Reason: "closed"}, nil
	}

	nowMS := s.now().UnixMilli()
	if last, voted := state.VoterTimestamps[voterID]; voted {
		elapsed := nowMS - last
		if elapsed < voteCooldown.Milliseconds() {
			return &VoteResult{
				Reason:      "cooldown",
				RemainingMS: voteCooldown.Milliseconds() - elapsed,
			}, nil
		}
	}

	state.VoterTimestamps[voterID] = nowMS
	if choice == "red" {
		state.RedVotes++
	} else {
		state.BlackVotes++
	}

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	return &VoteResult{
		Accepted:   true,
		RedVotes:   state.RedVotes,
		BlackVotes: state.BlackVotes,
		SessionID:  state.SessionID,
	}, nil
}

// Apply runs an admin action: open, close, or reset. Reset rotates the
// session id so overlays can tell a fresh vote apart from a reopened one.
func (s *rouletteService) Apply(ctx context.Context, action string) (model.RouletteState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return state, err
	}

	switch action {
	case "open":
		state.Active = true
	case "close":
		state.Active = false
	case "reset":
		state.Active = false
		state.RedVotes = 0
		state.BlackVotes = 0
		state.SessionID = uuid.New().String()
		state.VoterTimestamps = map[string]int64{}
	default:
		return state, ErrInvalidAction
	}

	if err := s.save(ctx, state); err != nil {
		return state, err
	}
	s.logger.Info("Roulette action applied:", action)
	return state, nil
}
