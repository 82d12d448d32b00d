package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bulk add per-item statuses
const (
	CartStatusAdded       = "added"
	CartStatusIncremented = "quantity incremented"
	CartStatusNotFound    = "not found"
	CartStatusInvalidID   = "invalid id"
)

// CartItem is one product line in a user's cart. Name, price and image are
// copied from the product when the line is first created.
type CartItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	ProductID   primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName" json:"productName"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	AddedAt     time.Time          `bson:"addedAt" json:"addedAt"`
}

// AddToCartRequest is the body of POST /cartProducts
type AddToCartRequest struct {
	Email     string `json:"email" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

// BulkProductRef identifies a product in a bulk add; either field may be set
type BulkProductRef struct {
	ID        string `json:"_id"`
	ProductID string `json:"productId"`
}

// Ref returns whichever identifier the client supplied
func (b BulkProductRef) Ref() string {
	if b.ID != "" {
		return b.ID
	}
	return b.ProductID
}

// BulkAddRequest is the body of POST /cartProducts/bulk
type BulkAddRequest struct {
	Email    string           `json:"email" validate:"required"`
	Products []BulkProductRef `json:"products" validate:"required"`
}

// BulkAddResult reports what happened to one entry of a bulk add
type BulkAddResult struct {
	ProductID string `json:"productId"`
	Status    string `json:"status"`
}
