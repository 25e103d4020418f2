package repositories

import (
	"catalog/internal/models"
)

// ProductFilter restricts a listing to products referencing the given seller
// or category id. Zero-valued fields are not applied. Only these two fields
// are filterable; arbitrary query keys are deliberately not honored.
type ProductFilter struct {
	Seller   string
	Category string
}

// ProductUpdate carries a partial update; nil fields are left untouched.
// Seller and category references are intentionally absent: they are set at
// creation and cannot be changed through the update operation.
type ProductUpdate struct {
	Name     *string
	Quantity *int
	Price    *float64
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(filter ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	UpdateByID(id string, update ProductUpdate) (*models.Product, error)
	DeleteByID(id string) error
}
