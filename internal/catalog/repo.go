package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource reads the catalog from the activities and events
// collections. Documents are returned in _id order.
type MongoSource struct {
	activities *mongo.Collection
	events     *mongo.Collection
}

func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{
		activities: db.Collection("activities"),
		events:     db.Collection("events"),
	}
}

func (r *MongoSource) Activities(ctx context.Context) ([]Activity, error) {
	var out []Activity
	if err := findAll(ctx, r.activities, &out); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return out, nil
}

func (r *MongoSource) Events(ctx context.Context) ([]Event, error) {
	var out []Event
	if err := findAll(ctx, r.events, &out); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, results any) error {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// Seed upserts every item of doc by id. It is an authoring tool for the
// mongo source; the site itself never writes.
func (r *MongoSource) Seed(ctx context.Context, doc *Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	activities := make([]mongo.WriteModel, len(doc.Activities))
	for i, a := range doc.Activities {
		activities[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": a.ID}).
			SetReplacement(a).
			SetUpsert(true)
	}
	events := make([]mongo.WriteModel, len(doc.Events))
	for i, e := range doc.Events {
		events[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": e.ID}).
			SetReplacement(e).
			SetUpsert(true)
	}

	if len(activities) > 0 {
		if _, err := r.activities.BulkWrite(ctx, activities); err != nil {
			return fmt.Errorf("seed activities: %w", err)
		}
	}
	if len(events) > 0 {
		if _, err := r.events.BulkWrite(ctx, events); err != nil {
			return fmt.Errorf("seed events: %w", err)
		}
	}
	return nil
}

// EmbeddedDocument returns the catalog compiled into the binary.
func EmbeddedDocument() (*Document, error) {
	return Parse(embeddedCatalog)
}
