package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/edustack/course-platform/internal/core/domain"
)

const usersCollection = "users"

// CredentialStore persists user records in MongoDB. It owns password hashing
// (bcrypt) and the password policy; callers only ever hand it plaintext at
// Create and VerifyPassword.
type CredentialStore struct {
	coll *mongo.Collection
}

func NewCredentialStore(db *mongo.Database) *CredentialStore {
	return &CredentialStore{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Username      string             `bson:"username"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password_hash"`
	SecurityStamp string             `bson:"security_stamp"`
	Roles         []string           `bson:"roles"`
	CreatedAt     int64              `bson:"created_at"`
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:            d.ID.Hex(),
		Username:      d.Username,
		Email:         d.Email,
		SecurityStamp: d.SecurityStamp,
		Roles:         append([]string(nil), d.Roles...),
		CreatedAt:     unixToTime(d.CreatedAt),
	}
}

func (s *CredentialStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *CredentialStore) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// Create validates the password against the policy, hashes it, and inserts
// the user. Duplicate key errors are mapped back to the field that collided.
func (s *CredentialStore) Create(ctx context.Context, user *domain.User, password string) error {
	if !passwordMeetsPolicy(password) {
		return domain.ErrPasswordPolicy
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	doc := userDoc{
		Username:      user.Username,
		Email:         user.Email,
		PasswordHash:  string(hash),
		SecurityStamp: user.SecurityStamp,
		Roles:         []string{},
		CreatedAt:     createdAt.Unix(),
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "email") {
				return domain.ErrEmailExists
			}
			return domain.ErrUsernameExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *CredentialStore) VerifyPassword(ctx context.Context, user *domain.User, password string) (bool, error) {
	var doc userDoc
	if err := s.coll.FindOne(ctx, bson.M{"username": user.Username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, domain.ErrUserNotFound
		}
		return false, fmt.Errorf("find user: %w", err)
	}
	return bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(password)) == nil, nil
}

// Roles returns the user's role names in assignment order.
func (s *CredentialStore) Roles(ctx context.Context, username string) ([]string, error) {
	user, err := s.findOne(ctx, bson.M{"username": username})
	if err != nil {
		return nil, err
	}
	return user.Roles, nil
}

// EnsureIndexes creates the unique indexes backing the uniqueness contract.
func (s *CredentialStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("username")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email")},
	}

	_, err := s.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// passwordMeetsPolicy requires at least one uppercase letter, one digit and
// one special symbol.
func passwordMeetsPolicy(password string) bool {
	var upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r):
			special = true
		}
	}
	return upper && digit && special
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
