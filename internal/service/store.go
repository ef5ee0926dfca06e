package service

import (
	"context"

	"learnhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interfaces consumed by the services. The mongo-backed repositories
// satisfy them in production; tests substitute in-memory fakes. Absent
// records surface as mongo.ErrNoDocuments from either implementation.

type UserStore interface {
	Create(ctx context.Context, user *model.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	SetProfileCompleted(ctx context.Context, id primitive.ObjectID, completed bool) error
}

type ProfileStore interface {
	Create(ctx context.Context, profile *model.Profile) (string, error)
	FindByUserID(ctx context.Context, userID string) (*model.Profile, error)
	UpdateFields(ctx context.Context, userID string, fields map[string]interface{}) error
}

type CourseStore interface {
	Find(ctx context.Context, category string, skip, limit int64) ([]model.Course, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Course, error)
	Count(ctx context.Context) (int64, error)
}

type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *model.Enrollment) (string, error)
	FindByUserAndCourse(ctx context.Context, userID, courseID string) (*model.Enrollment, error)
	FindByUser(ctx context.Context, userID string, limit int64) ([]model.Enrollment, error)
	FindRecentByUser(ctx context.Context, userID string, limit int64) ([]model.Enrollment, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountCompletedByUser(ctx context.Context, userID string) (int64, error)
}

type QuizStore interface {
	FindByCourse(ctx context.Context, courseID string) ([]model.Quiz, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Quiz, error)
	Count(ctx context.Context) (int64, error)
}

type QuizQuestionStore interface {
	FindByQuiz(ctx context.Context, quizID string) ([]model.QuizQuestion, error)
	CountByQuiz(ctx context.Context, quizID string) (int64, error)
}

type QuizResultStore interface {
	Create(ctx context.Context, result *model.QuizResult) (string, error)
	FindRecentByUser(ctx context.Context, userID string, limit int64) ([]model.QuizResult, error)
	FindAllByUser(ctx context.Context, userID string) ([]model.QuizResult, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}
