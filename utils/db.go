// utils/db.go
package utils

import (
	"context"
	"time"

	"elara-server/config"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectDB creates the process wide MongoDB client and pings the deployment.
// The client is returned even when the ping fails so the HTTP listener can
// start; store calls will then fail individually.
func ConnectDB(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(false).
		SetDeprecationErrors(true)
	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongodb")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Database("admin").RunCommand(pingCtx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return client, errors.Wrap(err, "ping mongodb")
	}

	zap.L().Info("Pinged your deployment. Connected to MongoDB", zap.String("database", cfg.DBName))
	return client, nil
}
