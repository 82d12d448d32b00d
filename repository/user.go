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

// UserRepo is the MongoDB UserRepository
type UserRepo struct {
	Collection *mongo.Collection
}

// NewUserRepo creates a UserRepo on the users collection
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{Collection: db.Collection(UsersCollection)}
}

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, utils.NewStoreError("find users", err)
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, utils.NewStoreError("decode users", err)
	}
	return users, nil
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if _, err := r.Collection.InsertOne(ctx, user); err != nil {
		return primitive.NilObjectID, utils.NewStoreError("insert user", err)
	}
	return user.ID, nil
}
