package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUnset     Role = ""
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
)

func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleEmployer
}

// User is the credential record. Verification and reset token fields are
// present only while the corresponding flow is pending; they are $unset
// once consumed.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"  json:"id"`
	Email        string             `bson:"email"          json:"email"`
	Name         string             `bson:"name"           json:"name"`
	PasswordHash string             `bson:"password_hash"  json:"-"`
	Role         Role               `bson:"role,omitempty" json:"role"`
	IsVerified   bool               `bson:"is_verified"    json:"is_verified"`

	VerificationToken     string     `bson:"verification_token,omitempty"      json:"-"`
	VerificationExpiresAt *time.Time `bson:"verification_expires_at,omitempty" json:"-"`

	ResetPasswordToken     string     `bson:"reset_password_token,omitempty"      json:"-"`
	ResetPasswordExpiresAt *time.Time `bson:"reset_password_expires_at,omitempty" json:"-"`

	LastLogin time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt time.Time `bson:"created_at"           json:"created_at"`
}
