package services

import (
	"catalog/internal/models"
	"catalog/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil when no
// broker is configured.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProducts retrieves products matching the filter.
func (s *ProductService) GetAllProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.GetAll(filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product and announces it. Seller and category
// references are stored as given, without checking that they resolve.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	publishEvent(s.publisher, "product.created", "product", product.ID)
	return nil
}

// UpdateProduct applies a partial update to an existing product.
func (s *ProductService) UpdateProduct(id string, update repositories.ProductUpdate) (*models.Product, error) {
	product, err := s.repo.UpdateByID(id, update)
	if err != nil {
		return nil, err
	}
	publishEvent(s.publisher, "product.updated", "product", product.ID)
	return product, nil
}

// DeleteProduct removes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}
	publishEvent(s.publisher, "product.deleted", "product", id)
	return nil
}
