package models

// Product is a catalog item. Seller and Category hold ids of the referenced
// entities; they are weak references, never enforced against the other
// collections, so a product may outlive the seller or category it points to.
type Product struct {
	ID       string  `json:"id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	Name     string  `json:"name" bson:"name"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
	Seller   string  `json:"seller,omitempty" bson:"seller,omitempty"`
	Category string  `json:"category,omitempty" bson:"category,omitempty"`
}
