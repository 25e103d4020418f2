package repositories

import (
	"catalog/internal/models"
)

// CategoryUpdate carries a partial update; nil fields are left untouched.
type CategoryUpdate struct {
	Name        *string
	Description *string
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	UpdateByID(id string, update CategoryUpdate) (*models.Category, error)
	DeleteByID(id string) error
}
