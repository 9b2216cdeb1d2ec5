package model

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies which payment provider a donation came from.
type Source string

const (
	SourceVenmo Source = "venmo"
	SourceZelle Source = "zelle"
)

// Donation is one confirmed, persisted donation. ID equals the Gmail
// message id of the email it was parsed from, which is what makes the
// ledger insert idempotent.
type Donation struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message"`
	Source    Source  `json:"source"`
	Timestamp string  `json:"timestamp"`
}

func NewDonation(id, name string, amount float64, message string, source Source, timestamp string) *Donation {
	return &Donation{
		ID:        id,
		Name:      name,
		Amount:    amount,
		Message:   message,
		Source:    source,
		Timestamp: timestamp,
	}
}

// NewTestDonation builds the synthetic donation used by the admin
// dashboard's "send test donation" button.
func NewTestDonation() *Donation {
	return &Donation{
		ID:        "test-" + uuid.New().String(),
		Name:      "Test Donor",
		Amount:    5,
		Message:   "This is a test donation!",
		Source:    SourceVenmo,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// Total sums donation amounts for the overlay's running total.
func Total(donations []*Donation) float64 {
	var total float64
	for _, d := range donations {
		total += d.Amount
	}
	return total
}
