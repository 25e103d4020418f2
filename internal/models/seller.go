package models

import "time"

// Seller represents a merchant that owns products in the catalog.
type Seller struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Location  string    `json:"location" bson:"location"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
