package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ReviewDbName  = "crumbly"
	ReviewColName = "review_collections"
)

// reviewCollectionDoc wraps the full review set in a single document so the
// store keeps the same whole-set load/save semantics as the Redis backend.
type reviewCollectionDoc struct {
	ID      string   `bson:"_id"`
	Reviews []Review `bson:"reviews"`
}

// MongoStore persists the review collection as one document, replaced wholesale
// on every save.
type MongoStore struct {
	client *mongo.Client
	docID  string
}

func NewMongoStore(client *mongo.Client, docID string) *MongoStore {
	if docID == "" {
		docID = DefaultReviewsKey
	}
	return &MongoStore{client: client, docID: docID}
}

func (m *MongoStore) collection() (*mongo.Collection, error) {
	if m.client == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return m.client.Database(ReviewDbName).Collection(ReviewColName), nil
}

func (m *MongoStore) Load(ctx context.Context) ([]Review, error) {
	col, err := m.collection()
	if err != nil {
		return nil, err
	}

	res := col.FindOne(ctx, bson.M{"_id": m.docID})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read review collection: %w", err)
	}

	var doc reviewCollectionDoc
	if err := res.Decode(&doc); err != nil {
		// Undecodable documents degrade to an empty collection rather than
		// failing the page load.
		return nil, nil
	}
	return doc.Reviews, nil
}

func (m *MongoStore) Save(ctx context.Context, reviews []Review) error {
	col, err := m.collection()
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = []Review{}
	}

	doc := reviewCollectionDoc{ID: m.docID, Reviews: reviews}
	opts := options.Replace().SetUpsert(true)
	if _, err := col.ReplaceOne(ctx, bson.M{"_id": m.docID}, doc, opts); err != nil {
		return fmt.Errorf("failed to persist review collection: %w", err)
	}
	return nil
}
