package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSellerRepository is a GORM implementation of SellerRepository.
type GORMSellerRepository struct {
	db *gorm.DB
}

// NewGORMSellerRepository creates a new instance of GORMSellerRepository.
func NewGORMSellerRepository(db *gorm.DB) *GORMSellerRepository {
	return &GORMSellerRepository{
		db: db,
	}
}

// GetAll retrieves all sellers from the database.
func (r *GORMSellerRepository) GetAll() ([]models.Seller, error) {
	sellers := make([]models.Seller, 0)
	if err := r.db.Find(&sellers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all sellers: %w", err)
	}
	return sellers, nil
}

// GetByID retrieves a single seller by its ID from the database.
func (r *GORMSellerRepository) GetByID(id string) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.First(&seller, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get seller by ID %s: %w", id, err)
	}
	return &seller, nil
}

// Create creates a new seller in the database, assigning an ID when none is set.
func (r *GORMSellerRepository) Create(seller *models.Seller) error {
	if seller.ID == "" {
		seller.ID = uuid.New().String()
	}
	if err := r.db.Create(seller).Error; err != nil {
		return fmt.Errorf("failed to create seller: %w", err)
	}
	return nil
}

// UpdateByID applies the non-nil fields of update to an existing seller and
// returns the updated record.
func (r *GORMSellerRepository) UpdateByID(id string, update SellerUpdate) (*models.Seller, error) {
	if _, err := r.GetByID(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.Location != nil {
		fields["location"] = *update.Location
	}

	if len(fields) > 0 {
		if err := r.db.Model(&models.Seller{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, fmt.Errorf("failed to update seller %s: %w", id, err)
		}
	}

	return r.GetByID(id)
}

// DeleteByID deletes a seller by its ID from the database.
func (r *GORMSellerRepository) DeleteByID(id string) error {
	res := r.db.Delete(&models.Seller{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete seller %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
