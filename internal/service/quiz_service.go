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

const recentResultsLimit = 20

type QuizService struct {
	Quizzes   QuizStore
	Questions QuizQuestionStore
	Results   QuizResultStore
}

func NewQuizService(quizzes QuizStore, questions QuizQuestionStore, results QuizResultStore) *QuizService {
	return &QuizService{
		Quizzes:   quizzes,
		Questions: questions,
		Results:   results,
	}
}

// QuizSummary is the catalog row. TotalQuestions is recomputed from the
// questions collection on every read, never stored on the quiz document.
type QuizSummary struct {
	ID             string `json:"id"`
	CourseID       string `json:"course_id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	TotalQuestions int    `json:"total_questions"`
	PassingScore   int    `json:"passing_score"`
	TimeLimit      int    `json:"time_limit,omitempty"`
}

// AttemptQuestion is a question as served for attempting: option display
// text only. Correctness flags have no field to leak through.
type AttemptQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuizWithQuestions struct {
	ID             string            `json:"id"`
	CourseID       string            `json:"course_id"`
	Title          string            `json:"title"`
	Description    string            `json:"description,omitempty"`
	TotalQuestions int               `json:"total_questions"`
	PassingScore   int               `json:"passing_score"`
	TimeLimit      int               `json:"time_limit,omitempty"`
	Questions      []AttemptQuestion `json:"questions"`
}

// QuizResultView is the flat result record returned to clients, with the
// attempt timestamp rendered as an ISO-8601 string.
type QuizResultView struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	QuizID         string  `json:"quiz_id"`
	Score          float64 `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
	Passed         bool    `json:"passed"`
	AttemptedAt    string  `json:"attempted_at"`
}

// ListForCourse returns the quizzes belonging to a course with their
// current question counts.
func (s *QuizService) ListForCourse(ctx context.Context, courseID string) ([]QuizSummary, error) {
	quizzes, err := s.Quizzes.FindByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	summaries := make([]QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		count, err := s.Questions.CountByQuiz(ctx, quiz.ID.Hex())
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, QuizSummary{
			ID:             quiz.ID.Hex(),
			CourseID:       quiz.CourseID,
			Title:          quiz.Title,
			Description:    quiz.Description,
			TotalQuestions: int(count),
			PassingScore:   quiz.PassingScore,
			TimeLimit:      quiz.TimeLimit,
		})
	}
	return summaries, nil
}

// GetForAttempt returns the quiz with its questions in storage order,
// reduced to question text and option text.
func (s *QuizService) GetForAttempt(ctx context.Context, quizID string) (*QuizWithQuestions, error) {
	quiz, questions, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	served := make([]AttemptQuestion, len(questions))
	for i, q := range questions {
		opts := make([]string, len(q.Options))
		for j, opt := range q.Options {
			opts[j] = opt.Option
		}
		served[i] = AttemptQuestion{
			Question: q.Question,
			Options:  opts,
		}
	}

	return &QuizWithQuestions{
		ID:             quiz.ID.Hex(),
		CourseID:       quiz.CourseID,
		Title:          quiz.Title,
		Description:    quiz.Description,
		TotalQuestions: len(served),
		PassingScore:   quiz.PassingScore,
		TimeLimit:      quiz.TimeLimit,
		Questions:      served,
	}, nil
}

// SubmitAttempt grades an answer sheet against the stored key and appends
// a result row. The i-th submitted index addresses the options of the i-th
// question in persisted order; an index outside the option range counts as
// incorrect rather than aborting the attempt.
func (s *QuizService) SubmitAttempt(ctx context.Context, userID, quizID string, answers []int) (*QuizResultView, error) {
	quiz, questions, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return nil, util.ErrNoQuestions
	}
	if len(answers) != len(questions) {
		return nil, util.ErrAnswerCount
	}

	correct := 0
	for i, question := range questions {
		idx := answers[i]
		if idx >= 0 && idx < len(question.Options) && question.Options[idx].IsCorrect {
			correct++
		}
	}

	total := len(questions)
	score := 100 * float64(correct) / float64(total)

	result := &model.QuizResult{
		UserID:         userID,
		QuizID:         quizID,
		Score:          score,
		TotalQuestions: total,
		CorrectAnswers: correct,
		Passed:         score >= float64(quiz.PassingScore),
		AttemptedAt:    time.Now().UTC(),
	}

	if _, err := s.Results.Create(ctx, result); err != nil {
		return nil, err
	}

	view := resultView(result)
	return &view, nil
}

// ListRecentResults returns the user's latest results, newest first.
func (s *QuizService) ListRecentResults(ctx context.Context, userID string) ([]QuizResultView, error) {
	results, err := s.Results.FindRecentByUser(ctx, userID, recentResultsLimit)
	if err != nil {
		return nil, err
	}

	views := make([]QuizResultView, len(results))
	for i, r := range results {
		views[i] = resultView(&r)
	}
	return views, nil
}

// loadQuiz resolves the quiz and its questions in the same stable order
// used by the catalog fetch.
func (s *QuizService) loadQuiz(ctx context.Context, quizID string) (*model.Quiz, []model.QuizQuestion, error) {
	oid, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return nil, nil, util.ErrInvalidID
	}

	quiz, err := s.Quizzes.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, util.ErrQuizNotFound
		}
		return nil, nil, err
	}

	questions, err := s.Questions.FindByQuiz(ctx, quizID)
	if err != nil {
		return nil, nil, err
	}

	return quiz, questions, nil
}

func resultView(r *model.QuizResult) QuizResultView {
	// Documents written before the schema settled may lack a timestamp;
	// render something sane instead of the zero time.
	attemptedAt := r.AttemptedAt
	if attemptedAt.IsZero() {
		attemptedAt = time.Now().UTC()
	}

	return QuizResultView{
		ID:             r.ID.Hex(),
		UserID:         r.UserID,
		QuizID:         r.QuizID,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		CorrectAnswers: r.CorrectAnswers,
		Passed:         r.Passed,
		AttemptedAt:    attemptedAt.UTC().Format(time.RFC3339),
	}
}
