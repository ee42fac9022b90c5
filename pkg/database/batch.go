package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultBatchSize = 500

type BulkWriter interface {
	BulkWrite(ctx context.Context, models []mongo.WriteModel, opts ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error)
}

// BatchWriter buffers write models and bulk writes them once BatchSize is reached
type BatchWriter struct {
	Collection string
	BatchSize  int

	target  BulkWriter
	items   []mongo.WriteModel
	written int
}

func NewBatchWriter(collection string, target BulkWriter, batchSize int) *BatchWriter {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &BatchWriter{
		Collection: collection,
		BatchSize:  batchSize,
		target:     target,
		items:      make([]mongo.WriteModel, 0, batchSize),
	}
}

func (b *BatchWriter) Add(ctx context.Context, item mongo.WriteModel) error {
	b.items = append(b.items, item)

	if len(b.items) >= b.BatchSize {
		return b.Flush(ctx)
	}

	return nil
}

func (b *BatchWriter) Flush(ctx context.Context) error {
	if len(b.items) == 0 {
		return nil
	}

	batchItems := b.items

	retry := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	err := backoff.RetryNotify(func() error {
		_, err := b.target.BulkWrite(ctx, batchItems, options.BulkWrite().SetOrdered(false))
		return err
	}, retry, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("collection", b.Collection).Str("wait", wait.String()).Msg("Bulk write failed, retrying")
	})
	if err != nil {
		return err
	}

	log.Info().Str("collection", b.Collection).Int("Length", len(batchItems)).Msg("Bulk write")

	b.written += len(batchItems)
	b.items = make([]mongo.WriteModel, 0, b.BatchSize)

	return nil
}

func (b *BatchWriter) Written() int {
	return b.written
}

// UpsertModel replaces the document with the same primaryidentifier or inserts it
func UpsertModel(primaryIdentifier string, document interface{}) mongo.WriteModel {
	return mongo.NewReplaceOneModel().
		SetFilter(map[string]string{"primaryidentifier": primaryIdentifier}).
		SetReplacement(document).
		SetUpsert(true)
}
