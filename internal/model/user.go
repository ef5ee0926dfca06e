package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the authentication identity. Profile data lives in a separate
// document so that registration stays a single small insert.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"password" json:"-"`
	ProfileCompleted bool               `bson:"profile_completed" json:"profile_completed"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}
