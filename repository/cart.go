package repository

import (
	"context"
	"time"

	"elara-server/models"
	"elara-server/utils"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// decreaseAttempts bounds the retries when a concurrent increase races a decrease
const decreaseAttempts = 3

// CartRepo is the MongoDB CartRepository
type CartRepo struct {
	Collection *mongo.Collection
	now        func() time.Time
}

// NewCartRepo creates a CartRepo on the cartProducts collection
func NewCartRepo(db *mongo.Database) *CartRepo {
	return &CartRepo{Collection: db.Collection(CartCollection), now: time.Now}
}

// EnsureIndexes creates the unique (email, productId) index that backs the
// one-line-per-product rule, and the index used to list a cart newest first.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CartCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "productId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_productId_unique"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "addedAt", Value: -1}},
			Options: options.Index().SetName("email_addedAt"),
		},
	})
	return errors.Wrap(err, "create cart indexes")
}

// ListByEmail returns the cart for email, newest first
func (r *CartRepo) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, utils.NewStoreError("find cart items", err)
	}
	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, utils.NewStoreError("decode cart items", err)
	}
	return items, nil
}

// AddProduct puts one unit of product in the cart of email. An existing line
// is incremented; otherwise a line is created with a snapshot of the product.
// Both cases are a single upsert, so concurrent adds never duplicate a line.
func (r *CartRepo) AddProduct(ctx context.Context, email string, product *models.Product) (*AddResult, error) {
	filter := bson.M{"email": email, "productId": product.ID}
	update := bson.M{
		"$inc": bson.M{"quantity": 1},
		"$setOnInsert": bson.M{
			"productName": product.ProductName,
			"price":       product.Price,
			"image":       product.Image,
			"addedAt":     r.now(),
		},
	}

	res, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// Another request inserted the line between our match and insert.
		res, err = r.Collection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"quantity": 1}})
	}
	if err != nil {
		return nil, utils.NewStoreError("upsert cart item", err)
	}

	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		return &AddResult{Inserted: true, InsertedID: id}, nil
	}
	if res.MatchedCount == 0 {
		return nil, utils.NewStoreError("upsert cart item", errors.New("no document matched or inserted"))
	}
	return &AddResult{}, nil
}

// Increase adds one to the quantity of a cart line
func (r *CartRepo) Increase(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"quantity": 1}})
	if err != nil {
		return utils.NewStoreError("increase cart item", err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundf("Cart item not found")
	}
	return nil
}

// Decrease subtracts one from the quantity of a cart line, removing the line
// when its quantity is 1.
func (r *CartRepo) Decrease(ctx context.Context, id primitive.ObjectID) (*DecreaseResult, error) {
	for i := 0; i < decreaseAttempts; i++ {
		var item models.CartItem
		err := r.Collection.FindOneAndUpdate(ctx,
			bson.M{"_id": id, "quantity": bson.M{"$gt": 1}},
			bson.M{"$inc": bson.M{"quantity": -1}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&item)
		if err == nil {
			return &DecreaseResult{Quantity: item.Quantity}, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, utils.NewStoreError("decrease cart item", err)
		}

		// $not also matches a missing or non-numeric quantity, which counts as 1.
		res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id, "quantity": bson.M{"$not": bson.M{"$gt": 1}}})
		if err != nil {
			return nil, utils.NewStoreError("remove cart item", err)
		}
		if res.DeletedCount == 1 {
			return &DecreaseResult{Removed: true}, nil
		}

		// Neither matched: the line is gone, or its quantity moved in between.
		err = r.Collection.FindOne(ctx, bson.M{"_id": id}).Err()
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundf("Cart item not found")
		}
		if err != nil {
			return nil, utils.NewStoreError("find cart item", err)
		}
	}
	return nil, utils.NewStoreError("decrease cart item", errors.Errorf("quantity of %s kept changing", id.Hex()))
}

// Delete removes one cart line
func (r *CartRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return utils.NewStoreError("delete cart item", err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundf("Item not found")
	}
	return nil
}

// ClearByEmail removes every line in the cart of email and returns the count
func (r *CartRepo) ClearByEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.Collection.DeleteMany(ctx, bson.M{"email": email})
	if err != nil {
		return 0, utils.NewStoreError("clear cart", err)
	}
	return res.DeletedCount, nil
}
