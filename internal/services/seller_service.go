package services

import (
	"catalog/internal/models"
	"catalog/internal/repositories"
)

// SellerService handles business logic related to sellers.
type SellerService struct {
	repo      repositories.SellerRepository
	publisher EventPublisher
}

// NewSellerService creates a new SellerService. publisher may be nil when no
// broker is configured.
func NewSellerService(repo repositories.SellerRepository, publisher EventPublisher) *SellerService {
	return &SellerService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllSellers retrieves all sellers.
func (s *SellerService) GetAllSellers() ([]models.Seller, error) {
	return s.repo.GetAll()
}

// GetSellerByID retrieves a single seller by its ID.
func (s *SellerService) GetSellerByID(id string) (*models.Seller, error) {
	return s.repo.GetByID(id)
}

// CreateSeller persists a new seller and announces it.
func (s *SellerService) CreateSeller(seller *models.Seller) error {
	if err := s.repo.Create(seller); err != nil {
		return err
	}
	publishEvent(s.publisher, "seller.created", "seller", seller.ID)
	return nil
}

// UpdateSeller applies a partial update to an existing seller.
func (s *SellerService) UpdateSeller(id string, update repositories.SellerUpdate) (*models.Seller, error) {
	seller, err := s.repo.UpdateByID(id, update)
	if err != nil {
		return nil, err
	}
	publishEvent(s.publisher, "seller.updated", "seller", seller.ID)
	return seller, nil
}

// DeleteSeller removes a seller by its ID. Products referencing the seller are
// left in place; the reference simply stops resolving.
func (s *SellerService) DeleteSeller(id string) error {
	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}
	publishEvent(s.publisher, "seller.deleted", "seller", id)
	return nil
}
