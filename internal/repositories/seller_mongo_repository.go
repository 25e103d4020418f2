package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoOpTimeout bounds each driver round-trip; the API itself carries no
// deadlines, so a hung database must not hang the request forever.
const mongoOpTimeout = 5 * time.Second

// MongoSellerRepository is a document-store implementation of SellerRepository.
type MongoSellerRepository struct {
	collection *mongo.Collection
}

// NewMongoSellerRepository creates a new instance of MongoSellerRepository
// backed by the "sellers" collection.
func NewMongoSellerRepository(db *mongo.Database) *MongoSellerRepository {
	return &MongoSellerRepository{
		collection: db.Collection("sellers"),
	}
}

// GetAll retrieves all sellers from the collection.
func (r *MongoSellerRepository) GetAll() ([]models.Seller, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all sellers: %w", err)
	}
	defer cursor.Close(ctx)

	sellers := make([]models.Seller, 0)
	if err := cursor.All(ctx, &sellers); err != nil {
		return nil, fmt.Errorf("failed to decode sellers: %w", err)
	}
	return sellers, nil
}

// GetByID retrieves a single seller by its ID.
func (r *MongoSellerRepository) GetByID(id string) (*models.Seller, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	var seller models.Seller
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&seller)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get seller by ID %s: %w", id, err)
	}
	return &seller, nil
}

// Create inserts a new seller, assigning an ObjectID-derived ID and timestamps.
func (r *MongoSellerRepository) Create(seller *models.Seller) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	if seller.ID == "" {
		seller.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	seller.CreatedAt = now
	seller.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, seller); err != nil {
		return fmt.Errorf("failed to create seller: %w", err)
	}
	return nil
}

// UpdateByID applies the non-nil fields of update via $set and returns the
// updated document.
func (r *MongoSellerRepository) UpdateByID(id string, update SellerUpdate) (*models.Seller, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	fields := bson.M{"updatedAt": time.Now()}
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

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var seller models.Seller
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&seller)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update seller %s: %w", id, err)
	}
	return &seller, nil
}

// DeleteByID removes a seller by its ID.
func (r *MongoSellerRepository) DeleteByID(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete seller %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
