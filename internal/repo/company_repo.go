package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobnest/jobnest-api/internal/domain"
)

func (s *Store) CreateCompany(ctx context.Context, c *domain.Company) error {
	c.CreatedAt = time.Now().UTC()
	res, err := s.colCompanies.InsertOne(ctx, c)
	if err != nil {
		if IsDup(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

func (s *Store) FindCompanyByID(ctx context.Context, id primitive.ObjectID) (*domain.Company, error) {
	var c domain.Company
	err := s.colCompanies.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	cur, err := s.colCompanies.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Company
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
