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

func (s *Store) CreateJob(ctx context.Context, j *domain.Job) error {
	j.CreatedAt = time.Now().UTC()
	res, err := s.colJobs.InsertOne(ctx, j)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		j.ID = oid
	}
	return nil
}

func (s *Store) FindJobByID(ctx context.Context, id primitive.ObjectID) (*domain.Job, error) {
	var j domain.Job
	err := s.colJobs.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *Store) ListJobs(ctx context.Context, limit, skip int) ([]domain.Job, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}
	total, err := s.colJobs.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	cur, err := s.colJobs.Find(ctx, bson.M{},
		options.Find().SetLimit(int64(limit)).SetSkip(int64(skip)).
			SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []domain.Job
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *Store) ListJobsByRecruiter(ctx context.Context, recruiterID primitive.ObjectID) ([]domain.Job, error) {
	cur, err := s.colJobs.Find(ctx, bson.M{"recruiter_id": recruiterID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Job
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateJob(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	res, err := s.colJobs.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteJob(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.colJobs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
