package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Profile struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           string             `bson:"user_id" json:"user_id"`
	Email            string             `bson:"email" json:"email"`
	Name             string             `bson:"name" json:"name"`
	MobileNumber     string             `bson:"mobile_number" json:"mobile_number"`
	DOB              string             `bson:"dob,omitempty" json:"dob,omitempty"`
	Bio              string             `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture   string             `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	ProfileCompleted bool               `bson:"profile_completed" json:"profile_completed"`
	CreatedAt        time.Time          `bson:"created_at" json:"-"`
}
