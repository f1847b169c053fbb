package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/drafthub/drafthub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user record with the given email and role.
func (f *Fixtures) CreateUser(ctx context.Context, email, role string) models.User {
	f.t.Helper()

	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateDesignDoc creates a test design document. Pass nil for catalogue or
// pdfLink to exercise the null-column paths.
func (f *Fixtures) CreateDesignDoc(ctx context.Context, id int64, project, drawing string, catalogue, pdfLink *string) models.DesignDocument {
	f.t.Helper()

	doc := models.DesignDocument{
		ID:          id,
		ProjectName: project,
		DrawingName: drawing,
		Catalogue:   catalogue,
		PDFLink:     pdfLink,
		Sheet:       "A-01",
		Revision:    "0",
	}
	if _, err := f.db.Collection("design_docs").InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to create test design doc: %v", err)
	}
	return doc
}

// StrPtr returns a pointer to s, for nullable fixture fields.
func StrPtr(s string) *string { return &s }
