package memory

import (
	"context"
	"sync"

	"github.com/jimpyjack/stream-donations/internal/model"
)

type InMemoryDonationRepository struct {
	donations map[string]*model.Donation
	order     []string
	mutex     sync.RWMutex
}

func NewInMemoryDonationRepository() *InMemoryDonationRepository {
	return &InMemoryDonationRepository{
		donations: make(map[string]*model.Donation),
	}
}

// Insert adds the donation unless its id is already present. The existence
// check and write happen under one lock, matching the atomic
// insert-if-absent contract of the postgres repository.
func (r *InMemoryDonationRepository) Insert(ctx context.Context, donation *model.Donation) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.donations[donation.ID]; exists {
		return false, nil
	}
	r.donations[donation.ID] = donation
	r.order = append(r.order, donation.ID)
	return true, nil
}

func (r *InMemoryDonationRepository) AllIDs(ctx context.Context) (map[string]struct{}, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	ids := make(map[string]struct{}, len(r.donations))
	for id := range r.donations {
		ids[id] = struct{}{}
	}
	return ids, nil
}

// FindAll returns donations newest first.
func (r *InMemoryDonationRepository) FindAll(ctx context.Context) ([]*model.Donation, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	donations := make([]*model.Donation, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		donations = append(donations, r.donations[r.order[i]])
	}
	return donations, nil
}

func (r *InMemoryDonationRepository) Clear(ctx context.Context) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.donations = make(map[string]*model.Donation)
	r.order = nil
	return nil
}

// Settings repository implementation
type InMemorySettingsRepository struct {
	values map[string][]byte
	mutex  sync.RWMutex
}

func NewInMemorySettingsRepository() *InMemorySettingsRepository {
	return &InMemorySettingsRepository{
		values: make(map[string][]byte),
	}
}

func (r *InMemorySettingsRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	value, exists := r.values[key]
	if !exists {
		return nil, false, nil
	}
	return value, true, nil
}

func (r *InMemorySettingsRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.values[key] = value
	return nil
}
