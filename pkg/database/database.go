package database

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/travigo/agency-tools/pkg/util"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInstance struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var MongoGlobalInstance *MongoInstance

var ErrNotConnected = errors.New("database is not connected")

const defaultMongoConnectionString = "mongodb://localhost:27017/"
const defaultMongoDatabase = "agency-tools"

func Connect(ctx context.Context) error {
	connectionString := util.GetEnvironmentVariable("AGENCYTOOLS_MONGODB_CONNECTION", defaultMongoConnectionString)
	dbName := util.GetEnvironmentVariable("AGENCYTOOLS_MONGODB_DATABASE", defaultMongoDatabase)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return err
	}

	retry := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	err = backoff.RetryNotify(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		return client.Ping(pingCtx, nil)
	}, retry, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("wait", wait.String()).Msg("MongoDB ping failed, retrying")
	})
	if err != nil {
		client.Disconnect(context.Background())
		return err
	}

	MongoGlobalInstance = &MongoInstance{
		Client:   client,
		Database: client.Database(dbName),
	}

	log.Info().Str("database", dbName).Msg("Connected to MongoDB")

	createIndexes(ctx)

	return nil
}

func Disconnect(ctx context.Context) error {
	if MongoGlobalInstance == nil {
		return nil
	}

	err := MongoGlobalInstance.Client.Disconnect(ctx)
	MongoGlobalInstance = nil

	return err
}

func GetCollection(collectionName string) (*mongo.Collection, error) {
	if MongoGlobalInstance == nil {
		return nil, ErrNotConnected
	}

	return MongoGlobalInstance.Database.Collection(collectionName), nil
}
