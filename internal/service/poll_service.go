package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jimpyjack/stream-donations/internal/logger"
	"github.com/jimpyjack/stream-donations/internal/model"
	"github.com/jimpyjack/stream-donations/internal/parse"
	"github.com/jimpyjack/stream-donations/internal/repository"
)

type pollService struct {
	donationRepo repository.DonationRepository
	mail         MailClient
	providers    []parse.Provider
	logger       *logger.Logger
}

func NewPollService(
	donationRepo repository.DonationRepository,
	mail MailClient,
	providers []parse.Provider,
	logger *logger.Logger,
) PollService {
	return &pollService{
		donationRepo: donationRepo,
		mail:         mail,
		providers:    providers,
		logger:       logger,
	}
}

// PollOnce runs one locate -> fetch -> parse -> record cycle for every
// provider. Individual candidate failures (search error, fetch error, parse
// no-match, duplicate) are skipped silently; the candidate stays unrecorded
// and is rediscovered on a later cycle. Only the two ledger reads that
// bracket the cycle can fail it.
func (s *pollService) PollOnce(ctx context.Context) (*PollResult, error) {
	existing, err := s.donationRepo.AllIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read existing donation ids: %w", err)
	}

	newIDs := []string{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, provider := range s.providers {
		wg.Add(1)
		go func(p parse.Provider) {
			defer wg.Done()

			candidates, err := s.mail.Search(ctx, p)
			if err != nil {
				// A failed search means no new donations this cycle, not a
				// fatal condition.
				s.logger.Error("Search failed for", p.Source, ":", err)
				return
			}

			for _, candidate := range candidates {
				if _, seen := existing[candidate.ID]; seen {
					continue
				}
				donation := s.assemble(ctx, candidate, p)
				if donation == nil {
					continue
				}
				inserted, err := s.donationRepo.Insert(ctx, donation)
				if err != nil {
					s.logger.Error("Failed to insert donation:", donation.ID, err)
					continue
				}
				if inserted {
					s.logger.Info("Recorded donation", donation.ID, "from", donation.Name, "via", donation.Source)
					mu.Lock()
					newIDs = append(newIDs, donation.ID)
					mu.Unlock()
				}
			}
		}(provider)
	}

	wg.Wait()

	// Authoritative re-read: includes anything a concurrent cycle inserted.
	donations, err := s.donationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read donations: %w", err)
	}

	return &PollResult{
		Donations: donations,
		NewIDs:    newIDs,
		Total:     model.Total(donations),
	}, nil
}

// assemble fetches a candidate's content and maps it to a canonical
// donation. Returns nil when the message can't be fetched or doesn't match
// the provider's donation shape.
func (s *pollService) assemble(ctx context.Context, candidate model.CandidateMessage, provider parse.Provider) *model.Donation {
	fetched, err := s.mail.Get(ctx, candidate.ID)
	if err != nil {
		s.logger.Warn("Skipping candidate", candidate.ID, ":", err)
		return nil
	}

	fields, ok := provider.ExtractFields(candidate, fetched.Body)
	if !ok {
		return nil
	}

	// Note extraction is independent of the field match: a missing or
	// unparseable note still yields a donation.
	note := provider.ExtractNote(fetched.Body)

	timestamp := fetched.Headers.Date
	if timestamp == "" {
		timestamp = candidate.Date
	}

	return model.NewDonation(candidate.ID, fields.Name, fields.Amount, note, provider.Source, timestamp)
}
