package repository

import (
	"context"

	"learnhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuizRepository struct {
	coll *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{coll: db.Collection("quizzes")}
}

func (r *QuizRepository) FindByCourse(ctx context.Context, courseID string) ([]model.Quiz, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"course_id": courseID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	quizzes := []model.Quiz{}
	if err := cursor.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *QuizRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
