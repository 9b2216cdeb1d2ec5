package gmail

import (
	"context"

	"github.com/jimpyjack/stream-donations/internal/model"
	"github.com/jimpyjack/stream-donations/internal/parse"
)

// MockMailClient is a mock implementation of the mail client for testing.
type MockMailClient struct {
	SearchFunc func(ctx context.Context, provider parse.Provider) ([]model.CandidateMessage, error)
	GetFunc    func(ctx context.Context, id string) (*model.FetchedMessage, error)
}

func NewMockMailClient() *MockMailClient {
	return &MockMailClient{}
}

func (m *MockMailClient) Search(ctx context.Context, provider parse.Provider) ([]model.CandidateMessage, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, provider)
	}

	// Default mock behavior: no candidates
	return []model.CandidateMessage{}, nil
}

func (m *MockMailClient) Get(ctx context.Context, id string) (*model.FetchedMessage, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}

	// Default mock behavior: not found
	return nil, ErrNotFound
}
