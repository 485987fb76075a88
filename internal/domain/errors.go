package domain

import "errors"

var (
	// ErrQuizNotFound indicates the requested quiz id is not in the catalog.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrNameTooShort is returned when a submitted display name trims to fewer than two characters.
	ErrNameTooShort = errors.New("display name must be at least 2 characters")
	// ErrOptionOutOfRange indicates a submitted option index does not exist on the question.
	ErrOptionOutOfRange = errors.New("selected option out of range")
	// ErrAlreadyAnswered is returned when the current question was already submitted.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrNotAnswered is returned when advancing past a question that has no submitted answer.
	ErrNotAnswered = errors.New("current question has not been answered")
	// ErrEmptyAttempt indicates an attempt was scored with no answers at all.
	ErrEmptyAttempt = errors.New("attempt has no answers")
	// ErrIncompleteAttempt indicates the answer list does not cover every question.
	ErrIncompleteAttempt = errors.New("attempt does not cover every question")
	// ErrWrongScreen is returned when an intent is not valid for the active screen.
	ErrWrongScreen = errors.New("operation not allowed on the current screen")
)
