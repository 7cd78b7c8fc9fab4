package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// allDocs runs a filtered find and decodes every document.
func allDocs[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// oneByID fetches a single document by _id. A missing document is reported
// through the NotFound taxonomy with the given entity name.
func oneByID[T any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, entity string) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, NotFound("%s not found", entity)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// byID indexes a slice of documents by their _id for in-memory reference
// resolution, the read-side counterpart of a relational expansion.
func byID[T any](docs []T, id func(T) primitive.ObjectID) map[primitive.ObjectID]T {
	m := make(map[primitive.ObjectID]T, len(docs))
	for _, d := range docs {
		m[id(d)] = d
	}
	return m
}

// EnsureIndexes creates the indexes the write-side invariants rely on:
// a unique (userId, taskId) pair per assignment and a unique user email.
// Duplicate-key failures on insert are the conflict signal.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("user_tasks").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "taskId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
