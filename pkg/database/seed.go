package database

import (
	"context"
	"log"
	"time"

	"learnhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type seedQuiz struct {
	courseIndex int
	quiz        model.Quiz
	questions   []model.QuizQuestion
}

// SeedDemoData inserts demo courses and quizzes on first run so a fresh
// deployment has something to browse. A non-empty courses collection
// means seeding already happened.
func SeedDemoData(ctx context.Context, db *mongo.Database) error {
	count, err := db.Collection("courses").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding demo courses and quizzes...")

	now := time.Now().UTC()
	courses := demoCourses(now)

	courseIDs := make([]string, len(courses))
	for i, course := range courses {
		res, err := db.Collection("courses").InsertOne(ctx, course)
		if err != nil {
			return err
		}
		courseIDs[i] = res.InsertedID.(primitive.ObjectID).Hex()
	}

	for _, sq := range demoQuizzes(now) {
		sq.quiz.CourseID = courseIDs[sq.courseIndex]
		res, err := db.Collection("quizzes").InsertOne(ctx, sq.quiz)
		if err != nil {
			return err
		}
		quizID := res.InsertedID.(primitive.ObjectID).Hex()

		for i, q := range sq.questions {
			q.QuizID = quizID
			q.Order = i
			if _, err := db.Collection("quiz_questions").InsertOne(ctx, q); err != nil {
				return err
			}
		}
	}

	log.Println("Demo data seeding completed")
	return nil
}

func demoCourses(now time.Time) []model.Course {
	return []model.Course{
		{
			Title:       "Complete Python Programming Masterclass",
			Description: "Learn Python from scratch: syntax, data types, control flow and beyond.",
			Duration:    "12 hours",
			Level:       "Beginner to Advanced",
			Category:    "Programming",
			CreatedAt:   now,
			Lessons: []model.Lesson{
				{Title: "Introduction to Python", YoutubeURL: "https://www.youtube.com/watch?v=rfscVS0vtbw", Duration: "25:00"},
				{Title: "Python Data Types and Variables", YoutubeURL: "https://www.youtube.com/watch?v=khKv-8q7YmY", Duration: "30:00"},
				{Title: "Control Flow and Loops", YoutubeURL: "https://www.youtube.com/watch?v=6iF8Xb7Z3wQ", Duration: "28:00"},
			},
		},
		{
			Title:       "Web Development with React and Next.js",
			Description: "Build modern web applications with React and server-side rendering with Next.js.",
			Duration:    "10 hours",
			Level:       "Intermediate",
			Category:    "Web Development",
			CreatedAt:   now,
			Lessons: []model.Lesson{
				{Title: "React Fundamentals", YoutubeURL: "https://www.youtube.com/watch?v=bMknfKXIFA8", Duration: "40:00"},
				{Title: "Next.js Introduction", YoutubeURL: "https://www.youtube.com/watch?v=mTz0GXj8NN0", Duration: "35:00"},
				{Title: "Server-Side Rendering", YoutubeURL: "https://www.youtube.com/watch?v=f1rF9YKm1Ms", Duration: "22:00"},
			},
		},
		{
			Title:       "Machine Learning Fundamentals",
			Description: "An introduction to supervised learning, model evaluation and neural networks.",
			Duration:    "14 hours",
			Level:       "Intermediate",
			Category:    "Data Science",
			CreatedAt:   now,
			Lessons: []model.Lesson{
				{Title: "Introduction to Machine Learning", YoutubeURL: "https://www.youtube.com/watch?v=ukzFI9rgwfU", Duration: "45:00"},
				{Title: "Supervised Learning", YoutubeURL: "https://www.youtube.com/watch?v=4qVRBYAdLAo", Duration: "38:00"},
				{Title: "Neural Networks Basics", YoutubeURL: "https://www.youtube.com/watch?v=aircAruvnKk", Duration: "19:00"},
			},
		},
	}
}

func demoQuizzes(now time.Time) []seedQuiz {
	return []seedQuiz{
		{
			courseIndex: 0,
			quiz: model.Quiz{
				Title:        "Python Programming Quiz",
				Description:  "Test your Python knowledge",
				PassingScore: model.DefaultPassingScore,
				TimeLimit:    20,
				CreatedAt:    now,
			},
			questions: []model.QuizQuestion{
				{
					Question: "What is the output of print(type([]))?",
					Options: []model.QuizOption{
						{Option: "<class 'list'>", IsCorrect: true},
						{Option: "<class 'dict'>"},
						{Option: "<class 'tuple'>"},
						{Option: "<class 'set'>"},
					},
					Explanation: "[] creates an empty list, so type([]) returns <class 'list'>",
				},
				{
					Question: "Which keyword is used to define a function in Python?",
					Options: []model.QuizOption{
						{Option: "function"},
						{Option: "def", IsCorrect: true},
						{Option: "func"},
						{Option: "define"},
					},
					Explanation: "'def' is the keyword used to define functions in Python",
				},
				{
					Question: "Which of the following is a mutable data type?",
					Options: []model.QuizOption{
						{Option: "tuple"},
						{Option: "string"},
						{Option: "list", IsCorrect: true},
						{Option: "int"},
					},
					Explanation: "Lists are mutable, meaning they can be modified after creation",
				},
				{
					Question: "What is the correct way to comment in Python?",
					Options: []model.QuizOption{
						{Option: "// comment"},
						{Option: "/* comment */"},
						{Option: "# comment", IsCorrect: true},
						{Option: "<!-- comment -->"},
					},
					Explanation: "Python uses # for single-line comments",
				},
			},
		},
		{
			courseIndex: 1,
			quiz: model.Quiz{
				Title:        "React and Next.js Quiz",
				Description:  "Test your React and Next.js knowledge",
				PassingScore: model.DefaultPassingScore,
				TimeLimit:    15,
				CreatedAt:    now,
			},
			questions: []model.QuizQuestion{
				{
					Question: "What is JSX?",
					Options: []model.QuizOption{
						{Option: "A JavaScript library"},
						{Option: "A syntax extension for JavaScript", IsCorrect: true},
						{Option: "A CSS framework"},
						{Option: "A database query language"},
					},
					Explanation: "JSX is a syntax extension that allows writing HTML-like code in JavaScript",
				},
				{
					Question: "Which hook is used for side effects in React?",
					Options: []model.QuizOption{
						{Option: "useState"},
						{Option: "useEffect", IsCorrect: true},
						{Option: "useContext"},
						{Option: "useReducer"},
					},
					Explanation: "useEffect is used for performing side effects in functional components",
				},
				{
					Question: "What does SSR stand for in Next.js?",
					Options: []model.QuizOption{
						{Option: "Server-Side Routing"},
						{Option: "Static Site Rendering"},
						{Option: "Server-Side Rendering", IsCorrect: true},
						{Option: "Simple Site Response"},
					},
					Explanation: "SSR stands for Server-Side Rendering, a key feature of Next.js",
				},
			},
		},
	}
}
