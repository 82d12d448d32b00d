package repository

import (
	"context"
	"time"

	"elara-server/models"
	"elara-server/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepo is the MongoDB OrderRepository
type OrderRepo struct {
	Collection *mongo.Collection
}

// NewOrderRepo creates an OrderRepo on the orders collection
func NewOrderRepo(db *mongo.Database) *OrderRepo {
	return &OrderRepo{Collection: db.Collection(OrdersCollection)}
}

// List returns all orders, filtered by exact status when status is set
func (r *OrderRepo) List(ctx context.Context, status string) ([]models.Order, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, utils.NewStoreError("find orders", err)
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, utils.NewStoreError("decode orders", err)
	}
	return orders, nil
}

// Get returns one order or utils.ErrNotFound
func (r *OrderRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundf("Order not found")
	}
	if err != nil {
		return nil, utils.NewStoreError("find order", err)
	}
	return &order, nil
}

// Create inserts order, stamping its creation time and default status
func (r *OrderRepo) Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if _, err := r.Collection.InsertOne(ctx, order); err != nil {
		return primitive.NilObjectID, utils.NewStoreError("insert order", err)
	}
	return order.ID, nil
}

// Upsert replaces the customer facing fields of an order, creating the
// order when no document has that id.
func (r *OrderRepo) Upsert(ctx context.Context, id primitive.ObjectID, update models.OrderUpdate) (*UpdateResult, error) {
	note := update.Note
	if note == "" {
		note = update.Category
	}
	set := bson.M{
		"$set": bson.M{
			"name":       update.Name,
			"email":      update.Email,
			"phone":      update.Phone,
			"address":    update.Address,
			"note":       note,
			"status":     update.Status,
			"grandTotal": update.GrandTotal,
		},
	}

	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, set, options.Update().SetUpsert(true))
	if err != nil {
		return nil, utils.NewStoreError("upsert order", err)
	}
	return newUpdateResult(res), nil
}

// Delete removes an order and reports how many documents went away
func (r *OrderRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, utils.NewStoreError("delete order", err)
	}
	return res.DeletedCount, nil
}
