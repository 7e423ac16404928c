package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobnest/jobnest-api/internal/domain"
)

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	u.CreatedAt = time.Now().UTC()
	res, err := s.colUsers.InsertOne(ctx, u)
	if err != nil {
		if IsDup(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

func (s *Store) FindUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return s.findUser(ctx, bson.M{"_id": id})
}

// FindUserByVerificationToken matches only while the code is unexpired;
// expired codes behave exactly like unknown ones.
func (s *Store) FindUserByVerificationToken(ctx context.Context, code string) (*domain.User, error) {
	return s.findUser(ctx, bson.M{
		"verification_token":      code,
		"verification_expires_at": bson.M{"$gt": time.Now().UTC()},
	})
}

func (s *Store) FindUserByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return s.findUser(ctx, bson.M{
		"reset_password_token":      token,
		"reset_password_expires_at": bson.M{"$gt": time.Now().UTC()},
	})
}

func (s *Store) findUser(ctx context.Context, filter bson.M) (*domain.User, error) {
	var u domain.User
	err := s.colUsers.FindOne(ctx, filter).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// MarkVerified flips is_verified and clears the verification fields in one
// write, so a consumed code can never match again.
func (s *Store) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	return s.updateUser(ctx, id, bson.M{
		"$set":   bson.M{"is_verified": true},
		"$unset": bson.M{"verification_token": "", "verification_expires_at": ""},
	})
}

func (s *Store) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, t time.Time) error {
	return s.updateUser(ctx, id, bson.M{"$set": bson.M{"last_login": t.UTC()}})
}

// SetResetToken overwrites any pending token, so only the latest reset
// request stays valid.
func (s *Store) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expiresAt time.Time) error {
	return s.updateUser(ctx, id, bson.M{"$set": bson.M{
		"reset_password_token":      token,
		"reset_password_expires_at": expiresAt.UTC(),
	}})
}

func (s *Store) ReplacePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	return s.updateUser(ctx, id, bson.M{
		"$set":   bson.M{"password_hash": hash},
		"$unset": bson.M{"reset_password_token": "", "reset_password_expires_at": ""},
	})
}

func (s *Store) SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) error {
	return s.updateUser(ctx, id, bson.M{"$set": bson.M{"role": role}})
}

func (s *Store) updateUser(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	res, err := s.colUsers.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
