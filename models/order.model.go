package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusPending is assigned to orders created without a status
const OrderStatusPending = "pending"

// OrderItem is a product line captured when the order was placed
type OrderItem struct {
	ProductID   primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName" json:"productName"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Quantity    int                `bson:"quantity" json:"quantity"`
}

// Order represents a customer's order
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Address    string             `bson:"address" json:"address"`
	Note       string             `bson:"note" json:"note"`
	Status     string             `bson:"status" json:"status"` // e.g. "pending", "shipped"
	GrandTotal float64            `bson:"grandTotal" json:"grandTotal"`
	Items      []OrderItem        `bson:"items,omitempty" json:"items,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// OrderUpdate is the field set replaced by PUT /orders/{id}.
// Category is accepted from older clients as an alias for Note.
type OrderUpdate struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	Note       string  `json:"note"`
	Category   string  `json:"category"`
	Status     string  `json:"status"`
	GrandTotal float64 `json:"grandTotal"`
}
