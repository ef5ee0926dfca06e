package service

import (
	"context"
	"testing"

	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCourseListWithoutCache(t *testing.T) {
	courses := newFakeCourseStore()
	courses.add("Go 101")
	courses.add("React 101")

	// A nil redis client disables caching entirely.
	svc := NewCourseService(courses, nil)

	listed, err := svc.List(context.Background(), "", 0, 10)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestCourseGet(t *testing.T) {
	courses := newFakeCourseStore()
	course := courses.add("Go 101")
	svc := NewCourseService(courses, nil)

	got, err := svc.Get(context.Background(), course.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Go 101", got.Title)

	_, err = svc.Get(context.Background(), "bogus")
	assert.ErrorIs(t, err, util.ErrInvalidID)

	_, err = svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}
