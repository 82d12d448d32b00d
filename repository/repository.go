// Package repository holds the MongoDB backed stores for products, users,
// orders and cart items.
package repository

import (
	"context"

	"elara-server/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names inside the shop database
const (
	ProductsCollection = "products"
	UsersCollection    = "users"
	OrdersCollection   = "orders"
	CartCollection     = "cartProducts"
)

// ProductRepository reads and creates catalogue products
type ProductRepository interface {
	List(ctx context.Context, category string) ([]models.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, product *models.Product) (primitive.ObjectID, error)
}

// UserRepository lists and registers users
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
}

// OrderRepository manages customer orders
type OrderRepository interface {
	List(ctx context.Context, status string) ([]models.Order, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	Upsert(ctx context.Context, id primitive.ObjectID, update models.OrderUpdate) (*UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// CartRepository manages cart lines keyed by (email, productId)
type CartRepository interface {
	ListByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	AddProduct(ctx context.Context, email string, product *models.Product) (*AddResult, error)
	Increase(ctx context.Context, id primitive.ObjectID) error
	Decrease(ctx context.Context, id primitive.ObjectID) (*DecreaseResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ClearByEmail(ctx context.Context, email string) (int64, error)
}

// UpdateResult mirrors the acknowledgement returned for an upsert
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

func newUpdateResult(res *mongo.UpdateResult) *UpdateResult {
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

// AddResult tells whether AddProduct created a new line or bumped an existing one
type AddResult struct {
	Inserted   bool
	InsertedID primitive.ObjectID
}

// DecreaseResult tells whether Decrease lowered the quantity or removed the line
type DecreaseResult struct {
	Removed  bool
	Quantity int
}

// Store bundles every repository over one database handle
type Store struct {
	Products ProductRepository
	Users    UserRepository
	Orders   OrderRepository
	Cart     CartRepository
}

// NewStore builds the MongoDB repositories for db
func NewStore(db *mongo.Database) *Store {
	return &Store{
		Products: NewProductRepo(db),
		Users:    NewUserRepo(db),
		Orders:   NewOrderRepo(db),
		Cart:     NewCartRepo(db),
	}
}
