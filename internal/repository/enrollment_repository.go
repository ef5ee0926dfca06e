package repository

import (
	"context"

	"learnhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EnrollmentRepository struct {
	coll *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{coll: db.Collection("enrollments")}
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) (string, error) {
	res, err := r.coll.InsertOne(ctx, enrollment)
	if err != nil {
		return "", err
	}
	enrollment.ID = res.InsertedID.(primitive.ObjectID)
	return enrollment.ID.Hex(), nil
}

func (r *EnrollmentRepository) FindByUserAndCourse(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "course_id": courseID}).Decode(&enrollment)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) FindByUser(ctx context.Context, userID string, limit int64) ([]model.Enrollment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	enrollments := []model.Enrollment{}
	if err := cursor.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// FindRecentByUser returns the user's newest enrollments, enrolled_at
// descending.
func (r *EnrollmentRepository) FindRecentByUser(ctx context.Context, userID string, limit int64) ([]model.Enrollment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "enrolled_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	enrollments := []model.Enrollment{}
	if err := cursor.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *EnrollmentRepository) CountCompletedByUser(ctx context.Context, userID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"user_id": userID, "completed": true})
}
