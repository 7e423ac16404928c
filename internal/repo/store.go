package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

type Store struct {
	Client          *mongo.Client
	DB              *mongo.Database
	colUsers        *mongo.Collection
	colJobs         *mongo.Collection
	colCompanies    *mongo.Collection
	colApplications *mongo.Collection
	colSavedJobs    *mongo.Collection
}

func NewStore(ctx context.Context, uri, dbname string) (*Store, error) {
	cli, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetRetryWrites(true).
		SetMaxPoolSize(50),
	)
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx, nil); err != nil {
		return nil, err
	}
	db := cli.Database(dbname)
	return &Store{
		Client:          cli,
		DB:              db,
		colUsers:        db.Collection("users"),
		colJobs:         db.Collection("jobs"),
		colCompanies:    db.Collection("companies"),
		colApplications: db.Collection("applications"),
		colSavedJobs:    db.Collection("saved_jobs"),
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error { return s.Client.Disconnect(ctx) }

// EnsureIndexes creates the indexes the handlers rely on. The unique email
// index is the safety net for concurrent registrations: the application-level
// existence check can race, the index cannot.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.colUsers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys: bson.D{{Key: "verification_token", Value: 1}},
			Options: options.Index().SetName("verification_token").
				SetPartialFilterExpression(bson.M{"verification_token": bson.M{"$exists": true}}),
		},
		{
			Keys: bson.D{{Key: "reset_password_token", Value: 1}},
			Options: options.Index().SetName("reset_token").
				SetPartialFilterExpression(bson.M{"reset_password_token": bson.M{"$exists": true}}),
		},
	})
	if err != nil {
		return err
	}

	_, err = s.colJobs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "recruiter_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("recruiter_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_desc"),
		},
	})
	if err != nil {
		return err
	}

	_, err = s.colCompanies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_name"),
	})
	if err != nil {
		return err
	}

	_, err = s.colApplications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("job_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "candidate_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("candidate_created_desc"),
		},
	})
	if err != nil {
		return err
	}

	_, err = s.colSavedJobs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "job_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user_job"),
	})
	return err
}

func IsDup(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	return false
}
