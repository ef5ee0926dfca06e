package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment links a user to a course. The (user_id, course_id) pair is
// unique; progress is a fraction updated elsewhere and only read here.
type Enrollment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	CourseID   string             `bson:"course_id" json:"course_id"`
	Progress   float64            `bson:"progress" json:"progress"`
	EnrolledAt time.Time          `bson:"enrolled_at" json:"enrolled_at"`
	Completed  bool               `bson:"completed" json:"completed"`
}
