package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Job struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecruiterID  primitive.ObjectID `bson:"recruiter_id"  json:"recruiter_id"`
	CompanyID    primitive.ObjectID `bson:"company_id"    json:"company_id"`
	Title        string             `bson:"title"         json:"title"`
	Description  string             `bson:"description"   json:"description"`
	Location     string             `bson:"location"      json:"location"`
	Requirements string             `bson:"requirements"  json:"requirements"`
	IsOpen       bool               `bson:"is_open"       json:"is_open"`
	CreatedAt    time.Time          `bson:"created_at"    json:"created_at"`
}

type Company struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name"          json:"name"`
	LogoURL   string             `bson:"logo_url"      json:"logo_url"`
	CreatedAt time.Time          `bson:"created_at"    json:"created_at"`
}
