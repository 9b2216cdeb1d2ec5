package service

import (
	"context"
	"fmt"

	"github.com/jimpyjack/stream-donations/internal/logger"
	"github.com/jimpyjack/stream-donations/internal/model"
	"github.com/jimpyjack/stream-donations/internal/repository"
)

type donationService struct {
	donationRepo repository.DonationRepository
	logger       *logger.Logger
}

func NewDonationService(donationRepo repository.DonationRepository, logger *logger.Logger) DonationService {
	return &donationService{
		donationRepo: donationRepo,
		logger:       logger,
	}
}

func (s *donationService) ListDonations(ctx context.Context) ([]*model.Donation, float64, error) {
	donations, err := s.donationRepo.FindAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, model.Total(donations), nil
}

// AddTestDonation inserts a synthetic donation so the overlay and alert
// sound can be checked without a real payment.
func (s *donationService) AddTestDonation(ctx context.Context) (*model.Donation, error) {
	donation := model.NewTestDonation()
	if _, err := s.donationRepo.Insert(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to insert test donation: %w", err)
	}
	s.logger.Info("Inserted test donation:", donation.ID)
	return donation, nil
}

func (s *donationService) ClearDonations(ctx context.Context) error {
	if err := s.donationRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear donations: %w", err)
	}
	s.logger.Warn("Cleared all donations")
	return nil
}
