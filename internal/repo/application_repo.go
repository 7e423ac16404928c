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

func (s *Store) CreateApplication(ctx context.Context, a *domain.Application) error {
	a.CreatedAt = time.Now().UTC()
	res, err := s.colApplications.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

func (s *Store) FindApplicationByID(ctx context.Context, id primitive.ObjectID) (*domain.Application, error) {
	var a domain.Application
	err := s.colApplications.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) ListApplicationsByJob(ctx context.Context, jobID primitive.ObjectID) ([]domain.Application, error) {
	return s.listApplications(ctx, bson.M{"job_id": jobID})
}

func (s *Store) ListApplicationsByCandidate(ctx context.Context, candidateID primitive.ObjectID) ([]domain.Application, error) {
	return s.listApplications(ctx, bson.M{"candidate_id": candidateID})
}

func (s *Store) listApplications(ctx context.Context, filter bson.M) ([]domain.Application, error) {
	cur, err := s.colApplications.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Application
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateApplicationStatus(ctx context.Context, id primitive.ObjectID, status domain.ApplicationStatus) error {
	res, err := s.colApplications.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
