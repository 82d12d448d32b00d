package repository

import (
	"context"
	"time"

	"elara-server/models"
	"elara-server/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductRepo is the MongoDB ProductRepository
type ProductRepo struct {
	Collection *mongo.Collection
}

// NewProductRepo creates a ProductRepo on the products collection
func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{Collection: db.Collection(ProductsCollection)}
}

// List returns all products, filtered by exact category when category is set
func (r *ProductRepo) List(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, utils.NewStoreError("find products", err)
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, utils.NewStoreError("decode products", err)
	}
	return products, nil
}

// Get returns one product or utils.ErrNotFound
func (r *ProductRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundf("Product not found")
	}
	if err != nil {
		return nil, utils.NewStoreError("find product", err)
	}
	return &product, nil
}

// Categories returns the distinct category values across all products
func (r *ProductRepo) Categories(ctx context.Context) ([]string, error) {
	values, err := r.Collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, utils.NewStoreError("distinct categories", err)
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// Create inserts product and returns its generated id
func (r *ProductRepo) Create(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	if _, err := r.Collection.InsertOne(ctx, product); err != nil {
		return primitive.NilObjectID, utils.NewStoreError("insert product", err)
	}
	return product.ID, nil
}
