package repositories

import (
	"sync"
	"time"

	"catalog/internal/models"

	"github.com/google/uuid"
)

// MockSellerRepository is an in-memory implementation of SellerRepository.
type MockSellerRepository struct {
	sellers map[string]models.Seller
	mu      sync.RWMutex
}

// NewMockSellerRepository creates a new instance of MockSellerRepository.
func NewMockSellerRepository() *MockSellerRepository {
	return &MockSellerRepository{
		sellers: make(map[string]models.Seller),
	}
}

// GetAll returns all sellers.
func (r *MockSellerRepository) GetAll() ([]models.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sellerList := make([]models.Seller, 0, len(r.sellers))
	for _, s := range r.sellers {
		sellerList = append(sellerList, s)
	}
	return sellerList, nil
}

// GetByID returns a seller by its ID.
func (r *MockSellerRepository) GetByID(id string) (*models.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seller, ok := r.sellers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &seller, nil
}

// Create adds a new seller.
func (r *MockSellerRepository) Create(seller *models.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seller.ID == "" {
		seller.ID = uuid.New().String()
	}
	now := time.Now()
	seller.CreatedAt = now
	seller.UpdatedAt = now
	r.sellers[seller.ID] = *seller
	return nil
}

// UpdateByID applies the non-nil fields of update to an existing seller.
func (r *MockSellerRepository) UpdateByID(id string, update SellerUpdate) (*models.Seller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seller, ok := r.sellers[id]
	if !ok {
		return nil, ErrNotFound
	}
	if update.Name != nil {
		seller.Name = *update.Name
	}
	if update.Email != nil {
		seller.Email = *update.Email
	}
	if update.Phone != nil {
		seller.Phone = *update.Phone
	}
	if update.Location != nil {
		seller.Location = *update.Location
	}
	seller.UpdatedAt = time.Now()
	r.sellers[id] = seller
	return &seller, nil
}

// DeleteByID removes a seller by its ID.
func (r *MockSellerRepository) DeleteByID(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sellers[id]; !ok {
		return ErrNotFound
	}
	delete(r.sellers, id)
	return nil
}
