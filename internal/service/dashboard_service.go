package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const recentItemsLimit = 5

type DashboardService struct {
	Courses     CourseStore
	Enrollments EnrollmentStore
	Quizzes     QuizStore
	Results     QuizResultStore
}

func NewDashboardService(courses CourseStore, enrollments EnrollmentStore, quizzes QuizStore, results QuizResultStore) *DashboardService {
	return &DashboardService{
		Courses:     courses,
		Enrollments: enrollments,
		Quizzes:     quizzes,
		Results:     results,
	}
}

type DashboardStats struct {
	TotalCourses      int64              `json:"total_courses"`
	EnrolledCourses   int64              `json:"enrolled_courses"`
	CompletedCourses  int64              `json:"completed_courses"`
	TotalQuizzes      int64              `json:"total_quizzes"`
	AttemptedQuizzes  int64              `json:"attempted_quizzes"`
	AverageScore      float64            `json:"average_score"`
	RecentEnrollments []RecentEnrollment `json:"recent_enrollments"`
	RecentQuizResults []RecentQuizResult `json:"recent_quiz_results"`
}

type RecentEnrollment struct {
	CourseID    string    `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	EnrolledAt  time.Time `json:"enrolled_at"`
	Progress    float64   `json:"progress"`
}

type RecentQuizResult struct {
	QuizID         string    `json:"quiz_id"`
	QuizTitle      string    `json:"quiz_title"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	Passed         bool      `json:"passed"`
	AttemptedAt    time.Time `json:"attempted_at"`
}

// GetStats aggregates the user's dashboard. The recent lists join back to
// course/quiz documents and silently drop entries whose referent has been
// deleted, so the dashboard stays renderable under concurrent deletion.
func (s *DashboardService) GetStats(ctx context.Context, userID string) (*DashboardStats, error) {
	totalCourses, err := s.Courses.Count(ctx)
	if err != nil {
		return nil, err
	}

	enrolledCourses, err := s.Enrollments.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	completedCourses, err := s.Enrollments.CountCompletedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalQuizzes, err := s.Quizzes.Count(ctx)
	if err != nil {
		return nil, err
	}

	attemptedQuizzes, err := s.Results.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	results, err := s.Results.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	averageScore := 0.0
	if len(results) > 0 {
		sum := 0.0
		for _, r := range results {
			sum += r.Score
		}
		averageScore = math.Round(sum/float64(len(results))*100) / 100
	}

	recentEnrollments, err := s.recentEnrollments(ctx, userID)
	if err != nil {
		return nil, err
	}

	recentResults, err := s.recentQuizResults(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalCourses:      totalCourses,
		EnrolledCourses:   enrolledCourses,
		CompletedCourses:  completedCourses,
		TotalQuizzes:      totalQuizzes,
		AttemptedQuizzes:  attemptedQuizzes,
		AverageScore:      averageScore,
		RecentEnrollments: recentEnrollments,
		RecentQuizResults: recentResults,
	}, nil
}

func (s *DashboardService) recentEnrollments(ctx context.Context, userID string) ([]RecentEnrollment, error) {
	enrollments, err := s.Enrollments.FindRecentByUser(ctx, userID, recentItemsLimit)
	if err != nil {
		return nil, err
	}

	recent := []RecentEnrollment{}
	for _, enrollment := range enrollments {
		oid, err := primitive.ObjectIDFromHex(enrollment.CourseID)
		if err != nil {
			// A malformed reference is as gone as a deleted course.
			continue
		}

		course, err := s.Courses.FindByID(ctx, oid)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				continue
			}
			return nil, err
		}

		recent = append(recent, RecentEnrollment{
			CourseID:    enrollment.CourseID,
			CourseTitle: course.Title,
			EnrolledAt:  enrollment.EnrolledAt,
			Progress:    enrollment.Progress,
		})
	}
	return recent, nil
}

func (s *DashboardService) recentQuizResults(ctx context.Context, userID string) ([]RecentQuizResult, error) {
	results, err := s.Results.FindRecentByUser(ctx, userID, recentItemsLimit)
	if err != nil {
		return nil, err
	}

	recent := []RecentQuizResult{}
	for _, result := range results {
		oid, err := primitive.ObjectIDFromHex(result.QuizID)
		if err != nil {
			continue
		}

		quiz, err := s.Quizzes.FindByID(ctx, oid)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				continue
			}
			return nil, err
		}

		recent = append(recent, RecentQuizResult{
			QuizID:         result.QuizID,
			QuizTitle:      quiz.Title,
			Score:          result.Score,
			CorrectAnswers: result.CorrectAnswers,
			TotalQuestions: result.TotalQuestions,
			Passed:         result.Passed,
			AttemptedAt:    result.AttemptedAt,
		})
	}
	return recent, nil
}
