package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusAccepted    ApplicationStatus = "accepted"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

type Application struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID       primitive.ObjectID `bson:"job_id"        json:"job_id"`
	CandidateID primitive.ObjectID `bson:"candidate_id"  json:"candidate_id"`
	Status      ApplicationStatus  `bson:"status"        json:"status"`
	ResumeURL   string             `bson:"resume_url"    json:"resume_url"`
	Skills      string             `bson:"skills"        json:"skills"`
	Experience  int                `bson:"experience"    json:"experience"`
	Education   string             `bson:"education,omitempty" json:"education,omitempty"`
	Name        string             `bson:"name"          json:"name"`
	Level       string             `bson:"level"         json:"level"`
	CreatedAt   time.Time          `bson:"created_at"    json:"created_at"`
}

type SavedJob struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id"       json:"user_id"`
	JobID     primitive.ObjectID `bson:"job_id"        json:"job_id"`
	CreatedAt time.Time          `bson:"created_at"    json:"created_at"`
}
