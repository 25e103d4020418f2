package repositories

import (
	"catalog/internal/models"
)

// SellerUpdate carries a partial update; nil fields are left untouched.
type SellerUpdate struct {
	Name     *string
	Email    *string
	Phone    *string
	Location *string
}

// SellerRepository defines the interface for seller data access.
type SellerRepository interface {
	GetAll() ([]models.Seller, error)
	GetByID(id string) (*models.Seller, error)
	Create(seller *models.Seller) error
	UpdateByID(id string, update SellerUpdate) (*models.Seller, error)
	DeleteByID(id string) error
}
