package util

import "errors"

var (
	// Malformed identifiers are rejected before any storage call.
	ErrInvalidID = errors.New("invalid identifier")

	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrQuizNotFound    = errors.New("quiz not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrProfileExists      = errors.New("profile already exists")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")

	ErrAnswerCount = errors.New("answer count must equal question count")
	ErrNoQuestions = errors.New("quiz has no questions")
)
