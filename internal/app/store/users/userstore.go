package userstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/drafthub/drafthub/internal/app/system/normalize"
	"github.com/drafthub/drafthub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when inserting a user whose email already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	errBadRole        = errors.New(`role must be "pending"|"user"|"admin"`)
)

// GetByEmail looks up a user by case-insensitive email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after normalizing & validating fields. A blank
// ID gets a generated UUID so records created before the identity provider
// supplied an opaque id still have a stable key.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = normalize.Email(u.Email)
	u.Role = normalize.Role(u.Role)

	switch u.Role {
	case models.RolePending, models.RoleUser, models.RoleAdmin:
		// ok
	default:
		return models.User{}, errBadRole
	}

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// List returns every user, oldest account first. The role editor shows the
// full set; there is no pagination at this scale.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole sets a user's role, keyed by id. The role is the only mutable
// field on a user record.
func (s *Store) UpdateRole(ctx context.Context, id, role string) error {
	role = normalize.Role(role)
	switch role {
	case models.RolePending, models.RoleUser, models.RoleAdmin:
		// ok
	default:
		return errBadRole
	}

	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}

// EnsureAdmin promotes (or creates) the account for email as an admin. Used
// by the startup superadmin bootstrap so a fresh deployment has at least one
// operator who can approve pending users.
func (s *Store) EnsureAdmin(ctx context.Context, email string) error {
	email = normalize.Email(email)
	if email == "" {
		return nil
	}

	_, err := s.c.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set":         bson.M{"role": models.RoleAdmin},
			"$setOnInsert": bson.M{"_id": uuid.NewString(), "created_at": time.Now().UTC()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// ResolveRole maps an identity (email + opaque provider id) to its role,
// lazily creating a pending record on first sight. It implements
// auth.RoleResolver.
//
// Semantics:
//   - record exists: its role is returned unchanged.
//   - record absent: a pending record is inserted (carrying the provider id
//     when available) and "pending" is returned. At most one insert happens
//     per distinct email; a duplicate-key race re-reads the winner.
//   - insert fails: "pending" is still returned with degraded=true so the
//     UI proceeds treating the caller as unprivileged and shows a warning.
//   - lookup fails: the store error propagates.
func (s *Store) ResolveRole(ctx context.Context, email, id string) (string, bool, error) {
	u, err := s.GetByEmail(ctx, email)
	if err == nil {
		return u.Role, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, fmt.Errorf("user lookup: %w", err)
	}

	_, err = s.Create(ctx, models.User{
		ID:    id,
		Email: email,
		Role:  models.RolePending,
	})
	if err == nil {
		return models.RolePending, false, nil
	}

	// Lost an insert race: another request created the record first.
	// Its role is authoritative.
	if errors.Is(err, ErrDuplicateEmail) {
		if u, rerr := s.GetByEmail(ctx, email); rerr == nil {
			return u.Role, false, nil
		}
	}

	// Best-effort: the caller proceeds as pending, the UI shows a warning.
	return models.RolePending, true, nil
}
