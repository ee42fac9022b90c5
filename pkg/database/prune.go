package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ManyDeleter interface {
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// SnapshotPruneFilter matches the documents of a dataset written by any other snapshot
func SnapshotPruneFilter(datasetID string, snapshotID string) bson.M {
	return bson.M{
		"datasetid":  datasetID,
		"snapshotid": bson.M{"$ne": snapshotID},
	}
}

// PruneSnapshot removes the documents of earlier snapshots once a new one is fully written
func PruneSnapshot(ctx context.Context, collection string, target ManyDeleter, datasetID string, snapshotID string) (int64, error) {
	var deleted int64

	retry := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	err := backoff.RetryNotify(func() error {
		result, err := target.DeleteMany(ctx, SnapshotPruneFilter(datasetID, snapshotID))
		if err != nil {
			return err
		}
		deleted = result.DeletedCount
		return nil
	}, retry, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("collection", collection).Str("wait", wait.String()).Msg("Prune failed, retrying")
	})
	if err != nil {
		return 0, err
	}

	log.Info().Str("collection", collection).Int64("Length", deleted).Msg("Pruned stale records")

	return deleted, nil
}
