package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const courseListCacheTTL = 5 * time.Minute

type CourseService struct {
	Courses CourseStore
	Redis   *redis.Client
}

func NewCourseService(courses CourseStore, rdb *redis.Client) *CourseService {
	return &CourseService{
		Courses: courses,
		Redis:   rdb,
	}
}

// List returns the course catalog page, served from the redis cache when
// possible. Cache errors degrade to a plain store read.
func (s *CourseService) List(ctx context.Context, category string, skip, limit int64) ([]model.Course, error) {
	cacheKey := fmt.Sprintf("courses:list:%s:%d:%d", category, skip, limit)

	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached []model.Course
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("course cache read failed", zap.Error(err))
		}
	}

	courses, err := s.Courses.Find(ctx, category, skip, limit)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(courses); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, data, courseListCacheTTL).Err(); err != nil {
				logger.Log.Warn("course cache write failed", zap.Error(err))
			}
		}
	}

	return courses, nil
}

func (s *CourseService) Get(ctx context.Context, courseID string) (*model.Course, error) {
	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, util.ErrInvalidID
	}

	course, err := s.Courses.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}
