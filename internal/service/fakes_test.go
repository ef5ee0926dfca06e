package service

import (
	"context"
	"sort"

	"learnhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory store fakes. They mirror the mongo repositories' contract,
// including mongo.ErrNoDocuments for absent records.

type fakeUserStore struct {
	users map[string]*model.User // keyed by id hex
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, user *model.User) (string, error) {
	user.ID = primitive.NewObjectID()
	f.users[user.ID.Hex()] = user
	return user.ID.Hex(), nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if u, ok := f.users[id.Hex()]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) SetProfileCompleted(ctx context.Context, id primitive.ObjectID, completed bool) error {
	if u, ok := f.users[id.Hex()]; ok {
		u.ProfileCompleted = completed
	}
	return nil
}

type fakeProfileStore struct {
	profiles map[string]*model.Profile // keyed by user id
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[string]*model.Profile{}}
}

func (f *fakeProfileStore) Create(ctx context.Context, profile *model.Profile) (string, error) {
	profile.ID = primitive.NewObjectID()
	f.profiles[profile.UserID] = profile
	return profile.ID.Hex(), nil
}

func (f *fakeProfileStore) FindByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProfileStore) UpdateFields(ctx context.Context, userID string, fields map[string]interface{}) error {
	p, ok := f.profiles[userID]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "mobile_number":
			p.MobileNumber = v.(string)
		case "dob":
			p.DOB = v.(string)
		case "bio":
			p.Bio = v.(string)
		case "profile_picture":
			p.ProfilePicture = v.(string)
		}
	}
	return nil
}

type fakeCourseStore struct {
	courses map[string]*model.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: map[string]*model.Course{}}
}

func (f *fakeCourseStore) add(title string) *model.Course {
	course := &model.Course{ID: primitive.NewObjectID(), Title: title}
	f.courses[course.ID.Hex()] = course
	return course
}

func (f *fakeCourseStore) Find(ctx context.Context, category string, skip, limit int64) ([]model.Course, error) {
	out := []model.Course{}
	for _, c := range f.courses {
		if category == "" || c.Category == category {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Course, error) {
	if c, ok := f.courses[id.Hex()]; ok {
		return c, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCourseStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.courses)), nil
}

type fakeEnrollmentStore struct {
	enrollments []*model.Enrollment
}

func (f *fakeEnrollmentStore) Create(ctx context.Context, enrollment *model.Enrollment) (string, error) {
	enrollment.ID = primitive.NewObjectID()
	f.enrollments = append(f.enrollments, enrollment)
	return enrollment.ID.Hex(), nil
}

func (f *fakeEnrollmentStore) FindByUserAndCourse(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	for _, e := range f.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return e, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeEnrollmentStore) FindByUser(ctx context.Context, userID string, limit int64) ([]model.Enrollment, error) {
	out := []model.Enrollment{}
	for _, e := range f.enrollments {
		if e.UserID == userID && int64(len(out)) < limit {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) FindRecentByUser(ctx context.Context, userID string, limit int64) ([]model.Enrollment, error) {
	mine := []model.Enrollment{}
	for _, e := range f.enrollments {
		if e.UserID == userID {
			mine = append(mine, *e)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].EnrolledAt.After(mine[j].EnrolledAt) })
	if int64(len(mine)) > limit {
		mine = mine[:limit]
	}
	return mine, nil
}

func (f *fakeEnrollmentStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	for _, e := range f.enrollments {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeEnrollmentStore) CountCompletedByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	for _, e := range f.enrollments {
		if e.UserID == userID && e.Completed {
			n++
		}
	}
	return n, nil
}

type fakeQuizStore struct {
	quizzes map[string]*model.Quiz
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{quizzes: map[string]*model.Quiz{}}
}

func (f *fakeQuizStore) add(courseID, title string, passingScore int) *model.Quiz {
	quiz := &model.Quiz{
		ID:           primitive.NewObjectID(),
		CourseID:     courseID,
		Title:        title,
		PassingScore: passingScore,
	}
	f.quizzes[quiz.ID.Hex()] = quiz
	return quiz
}

func (f *fakeQuizStore) FindByCourse(ctx context.Context, courseID string) ([]model.Quiz, error) {
	out := []model.Quiz{}
	for _, q := range f.quizzes {
		if q.CourseID == courseID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuizStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Quiz, error) {
	if q, ok := f.quizzes[id.Hex()]; ok {
		return q, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeQuizStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.quizzes)), nil
}

type fakeQuestionStore struct {
	byQuiz map[string][]model.QuizQuestion
}

func newFakeQuestionStore() *fakeQuestionStore {
	return &fakeQuestionStore{byQuiz: map[string][]model.QuizQuestion{}}
}

func (f *fakeQuestionStore) add(quizID string, question model.QuizQuestion) {
	question.ID = primitive.NewObjectID()
	question.QuizID = quizID
	question.Order = len(f.byQuiz[quizID])
	f.byQuiz[quizID] = append(f.byQuiz[quizID], question)
}

func (f *fakeQuestionStore) FindByQuiz(ctx context.Context, quizID string) ([]model.QuizQuestion, error) {
	questions := append([]model.QuizQuestion{}, f.byQuiz[quizID]...)
	sort.Slice(questions, func(i, j int) bool { return questions[i].Order < questions[j].Order })
	return questions, nil
}

func (f *fakeQuestionStore) CountByQuiz(ctx context.Context, quizID string) (int64, error) {
	return int64(len(f.byQuiz[quizID])), nil
}

type fakeResultStore struct {
	results []*model.QuizResult
}

func (f *fakeResultStore) Create(ctx context.Context, result *model.QuizResult) (string, error) {
	result.ID = primitive.NewObjectID()
	f.results = append(f.results, result)
	return result.ID.Hex(), nil
}

func (f *fakeResultStore) FindRecentByUser(ctx context.Context, userID string, limit int64) ([]model.QuizResult, error) {
	mine := []model.QuizResult{}
	for _, r := range f.results {
		if r.UserID == userID {
			mine = append(mine, *r)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].AttemptedAt.After(mine[j].AttemptedAt) })
	if int64(len(mine)) > limit {
		mine = mine[:limit]
	}
	return mine, nil
}

func (f *fakeResultStore) FindAllByUser(ctx context.Context, userID string) ([]model.QuizResult, error) {
	mine := []model.QuizResult{}
	for _, r := range f.results {
		if r.UserID == userID {
			mine = append(mine, *r)
		}
	}
	return mine, nil
}

func (f *fakeResultStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	for _, r := range f.results {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}
