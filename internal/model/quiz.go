package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultPassingScore = 70

type Quiz struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID     string             `bson:"course_id" json:"course_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	PassingScore int                `bson:"passing_score" json:"passing_score"`
	TimeLimit    int                `bson:"time_limit,omitempty" json:"time_limit,omitempty"` // minutes
	CreatedAt    time.Time          `bson:"created_at" json:"-"`
}

// QuizOption is embedded in its question. IsCorrect is persisted but must
// never be serialized to clients; the attempt DTOs expose option text only.
type QuizOption struct {
	Option    string `bson:"option" json:"option"`
	IsCorrect bool   `bson:"is_correct" json:"-"`
}

// QuizQuestion lives in its own collection keyed by quiz_id. Order is the
// persisted sequence key: answer indices submitted by clients address
// questions sorted by it, so reads must never rely on incidental storage
// order.
type QuizQuestion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuizID      string             `bson:"quiz_id" json:"quiz_id"`
	Question    string             `bson:"question" json:"question"`
	Options     []QuizOption       `bson:"options" json:"options"`
	Explanation string             `bson:"explanation,omitempty" json:"explanation,omitempty"`
	Order       int                `bson:"order" json:"order"`
}
