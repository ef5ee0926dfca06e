package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizResult is append-only attempt history. A user may hold many results
// for the same quiz, one per graded attempt; rows are never mutated.
type QuizResult struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	QuizID         string             `bson:"quiz_id" json:"quiz_id"`
	Score          float64            `bson:"score" json:"score"`
	TotalQuestions int                `bson:"total_questions" json:"total_questions"`
	CorrectAnswers int                `bson:"correct_answers" json:"correct_answers"`
	Passed         bool               `bson:"passed" json:"passed"`
	AttemptedAt    time.Time          `bson:"attempted_at" json:"attempted_at"`
}
