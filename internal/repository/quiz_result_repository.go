package repository

import (
	"context"

	"learnhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuizResultRepository struct {
	coll *mongo.Collection
}

func NewQuizResultRepository(db *mongo.Database) *QuizResultRepository {
	return &QuizResultRepository{coll: db.Collection("quiz_results")}
}

func (r *QuizResultRepository) Create(ctx context.Context, result *model.QuizResult) (string, error) {
	res, err := r.coll.InsertOne(ctx, result)
	if err != nil {
		return "", err
	}
	result.ID = res.InsertedID.(primitive.ObjectID)
	return result.ID.Hex(), nil
}

// FindRecentByUser returns the user's newest results, attempted_at
// descending. Decoding is lenient on purpose: fields absent from old
// documents come back as zero values instead of errors.
func (r *QuizResultRepository) FindRecentByUser(ctx context.Context, userID string, limit int64) ([]model.QuizResult, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "attempted_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []model.QuizResult{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *QuizResultRepository) FindAllByUser(ctx context.Context, userID string) ([]model.QuizResult, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []model.QuizResult{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *QuizResultRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
}
