package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobnest/jobnest-api/internal/domain"
)

func (s *Store) SaveJob(ctx context.Context, userID, jobID primitive.ObjectID) (*domain.SavedJob, error) {
	sj := &domain.SavedJob{UserID: userID, JobID: jobID, CreatedAt: time.Now().UTC()}
	res, err := s.colSavedJobs.InsertOne(ctx, sj)
	if err != nil {
		if IsDup(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sj.ID = oid
	}
	return sj, nil
}

func (s *Store) ListSavedJobs(ctx context.Context, userID primitive.ObjectID) ([]domain.SavedJob, error) {
	cur, err := s.colSavedJobs.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.SavedJob
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DeleteSavedJob(ctx context.Context, userID, jobID primitive.ObjectID) error {
	res, err := s.colSavedJobs.DeleteOne(ctx, bson.M{"user_id": userID, "job_id": jobID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
