package services

import (
	"catalog/internal/models"
	"catalog/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo      repositories.CategoryRepository
	publisher EventPublisher
}

// NewCategoryService creates a new CategoryService. publisher may be nil when
// no broker is configured.
func NewCategoryService(repo repositories.CategoryRepository, publisher EventPublisher) *CategoryService {
	return &CategoryService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CreateCategory persists a new category and announces it.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	if err := s.repo.Create(category); err != nil {
		return err
	}
	publishEvent(s.publisher, "category.created", "category", category.ID)
	return nil
}

// UpdateCategory applies a partial update to an existing category.
func (s *CategoryService) UpdateCategory(id string, update repositories.CategoryUpdate) (*models.Category, error) {
	category, err := s.repo.UpdateByID(id, update)
	if err != nil {
		return nil, err
	}
	publishEvent(s.publisher, "category.updated", "category", category.ID)
	return category, nil
}

// DeleteCategory removes a category by its ID. Products referencing the
// category are left in place.
func (s *CategoryService) DeleteCategory(id string) error {
	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}
	publishEvent(s.publisher, "category.deleted", "category", id)
	return nil
}
