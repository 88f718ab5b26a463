package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edustack/course-platform/internal/core/domain"
)

const rolesCollection = "roles"

// RoleStore persists role records and user-role assignments. Role creation is
// an upsert keyed on the role name, so concurrent create-if-absent calls for
// the same role collapse into one document.
type RoleStore struct {
	roles *mongo.Collection
	users *mongo.Collection
}

func NewRoleStore(db *mongo.Database) *RoleStore {
	return &RoleStore{
		roles: db.Collection(rolesCollection),
		users: db.Collection(usersCollection),
	}
}

type roleDoc struct {
	Name      string `bson:"_id"`
	CreatedAt int64  `bson:"created_at"`
}

func (s *RoleStore) Exists(ctx context.Context, name string) (bool, error) {
	err := s.roles.FindOne(ctx, bson.M{"_id": name}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, fmt.Errorf("find role: %w", err)
}

func (s *RoleStore) Create(ctx context.Context, name string) error {
	update := bson.M{"$setOnInsert": roleDoc{Name: name, CreatedAt: time.Now().UTC().Unix()}}
	_, err := s.roles.UpdateOne(ctx, bson.M{"_id": name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("create role: %w", err)
	}
	return nil
}

// Assign adds the role to the user's membership. $addToSet keeps repeated
// assignments from duplicating the role claim.
func (s *RoleStore) Assign(ctx context.Context, username, role string) error {
	exists, err := s.Exists(ctx, role)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRoleNotFound
	}

	result, err := s.users.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$addToSet": bson.M{"roles": role}},
	)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
