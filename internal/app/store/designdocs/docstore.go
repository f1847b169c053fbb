// Package designdocs reads the design_docs collection. The collection is
// owned by an external import pipeline; this application never writes it.
package designdocs

import (
	"context"

	"github.com/drafthub/drafthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("design_docs")}
}

// List returns every design document ordered by ascending id. An empty
// collection returns an empty slice, not an error; the handbook renders an
// informational empty state for it.
func (s *Store) List(ctx context.Context) ([]models.DesignDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []models.DesignDocument{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
