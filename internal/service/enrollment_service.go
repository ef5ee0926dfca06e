package service

import (
	"context"
	"errors"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const enrollmentListLimit = 100

type EnrollmentService struct {
	Enrollments EnrollmentStore
	Courses     CourseStore
}

func NewEnrollmentService(enrollments EnrollmentStore, courses CourseStore) *EnrollmentService {
	return &EnrollmentService{
		Enrollments: enrollments,
		Courses:     courses,
	}
}

// Enroll creates the (user, course) enrollment after verifying the course
// exists and the pair is not already present.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, util.ErrInvalidID
	}

	if _, err := s.Courses.FindByID(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	_, err = s.Enrollments.FindByUserAndCourse(ctx, userID, courseID)
	if err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Progress:   0,
		EnrolledAt: time.Now().UTC(),
		Completed:  false,
	}

	if _, err := s.Enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) ListForUser(ctx context.Context, userID string) ([]model.Enrollment, error) {
	return s.Enrollments.FindByUser(ctx, userID, enrollmentListLimit)
}

// IsEnrolled reports whether the user holds an enrollment for the course.
func (s *EnrollmentService) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	_, err := s.Enrollments.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
