package service

import (
	"context"
	"testing"

	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newEnrollmentFixture() (*EnrollmentService, *fakeCourseStore, *fakeEnrollmentStore) {
	courses := newFakeCourseStore()
	enrollments := &fakeEnrollmentStore{}
	return NewEnrollmentService(enrollments, courses), courses, enrollments
}

func TestEnroll(t *testing.T) {
	svc, courses, store := newEnrollmentFixture()
	course := courses.add("Go 101")

	enrollment, err := svc.Enroll(context.Background(), "user-1", course.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, "user-1", enrollment.UserID)
	assert.Equal(t, course.ID.Hex(), enrollment.CourseID)
	assert.Equal(t, 0.0, enrollment.Progress)
	assert.False(t, enrollment.Completed)
	assert.False(t, enrollment.EnrolledAt.IsZero())
	assert.Len(t, store.enrollments, 1)
}

func TestEnrollRejectsDuplicate(t *testing.T) {
	svc, courses, store := newEnrollmentFixture()
	course := courses.add("Go 101")

	_, err := svc.Enroll(context.Background(), "user-1", course.ID.Hex())
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), "user-1", course.ID.Hex())
	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)
	assert.Len(t, store.enrollments, 1)

	// A different user may still enroll in the same course.
	_, err = svc.Enroll(context.Background(), "user-2", course.ID.Hex())
	assert.NoError(t, err)
}

func TestEnrollValidatesCourse(t *testing.T) {
	svc, _, _ := newEnrollmentFixture()

	_, err := svc.Enroll(context.Background(), "user-1", "bogus")
	assert.ErrorIs(t, err, util.ErrInvalidID)

	_, err = svc.Enroll(context.Background(), "user-1", primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestIsEnrolled(t *testing.T) {
	svc, courses, _ := newEnrollmentFixture()
	course := courses.add("Go 101")

	enrolled, err := svc.IsEnrolled(context.Background(), "user-1", course.ID.Hex())
	require.NoError(t, err)
	assert.False(t, enrolled)

	_, err = svc.Enroll(context.Background(), "user-1", course.ID.Hex())
	require.NoError(t, err)

	enrolled, err = svc.IsEnrolled(context.Background(), "user-1", course.ID.Hex())
	require.NoError(t, err)
	assert.True(t, enrolled)
}
