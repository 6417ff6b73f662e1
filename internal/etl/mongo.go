package etl

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/acme-corp/churn-ingest/internal/config"
	"github.com/acme-corp/churn-ingest/pkg/database"
	"github.com/acme-corp/churn-ingest/pkg/errs"
	"github.com/acme-corp/churn-ingest/pkg/logger"
	"github.com/acme-corp/churn-ingest/pkg/models"
)

// MongoLoader bulk-loads a batch into the target collection, replacing its
// prior contents. The client is scoped to one Load call and released on
// every exit path.
type MongoLoader struct {
	Config *config.Config
	Logger *logger.Logger
}

func NewMongoLoader(cfg *config.Config, log *logger.Logger) *MongoLoader {
	return &MongoLoader{Config: cfg, Logger: log}
}

func (m *MongoLoader) Load(ctx context.Context, batch models.Batch) (int, error) {
	if len(batch) == 0 {
		m.Logger.Warnf("Load skipped | reason=no_records")
		return 0, nil
	}

	m.Logger.Infof("Starting data load | database=%s collection=%s records=%d",
		m.Config.Database, m.Config.Collection, len(batch))

	client, err := database.ConnectMongo(ctx, m.Config.MongoURI, m.Config.CAFile)
	if err != nil {
		return 0, errs.Wrap(errs.KindLoad, "store connection failed", err)
	}
	defer database.Disconnect(client)

	coll := client.Database(m.Config.Database).Collection(m.Config.Collection)

	// TODO: full replace is a stopgap until downstream consumers can handle
	// incremental upserts; revisit once the ML feature store reads deltas.
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return 0, errs.Wrap(errs.KindLoad, "clearing target collection", err)
	}

	// Enforce customer-level uniqueness. Creating an equivalent existing
	// index is a no-op on the server.
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: FieldCustomerID, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := coll.Indexes().CreateOne(ctx, idx); err != nil {
		return 0, errs.Wrap(errs.KindLoad, "creating unique index", err)
	}

	docs := make([]interface{}, len(batch))
	for i, rec := range batch {
		docs[i] = rec
	}

	res, err := coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	inserted := 0
	if res != nil {
		inserted = len(res.InsertedIDs)
	}

	if err != nil {
		var bwe mongo.BulkWriteException
		if errors.As(err, &bwe) && inserted > 0 {
			// Unordered insert: the store attempted every record; report
			// what landed and keep going.
			m.Logger.Warnf("Partial insert | inserted=%d failed=%d", inserted, len(bwe.WriteErrors))
		} else {
			return inserted, errs.Wrap(errs.KindLoad, "bulk insert failed", err)
		}
	}

	m.Logger.Infof("Data load completed | inserted_records=%d", inserted)
	return inserted, nil
}
