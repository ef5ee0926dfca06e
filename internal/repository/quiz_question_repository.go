package repository

import (
	"context"

	"learnhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuizQuestionRepository struct {
	coll *mongo.Collection
}

func NewQuizQuestionRepository(db *mongo.Database) *QuizQuestionRepository {
	return &QuizQuestionRepository{coll: db.Collection("quiz_questions")}
}

// FindByQuiz returns a quiz's questions sorted by the persisted order key
// (with _id as tiebreaker). The catalog fetch and the grading path both
// go through here, which is what makes submitted answer indices line up
// with the questions the client was shown.
func (r *QuizQuestionRepository) FindByQuiz(ctx context.Context, quizID string) ([]model.QuizQuestion, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.coll.Find(ctx, bson.M{"quiz_id": quizID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []model.QuizQuestion{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuizQuestionRepository) CountByQuiz(ctx context.Context, quizID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"quiz_id": quizID})
}
