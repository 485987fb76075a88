// Package catalog holds the static set of quizzes available to play. The
// catalog is immutable; the rest of the application only ever reads it.
package catalog

import (
	"fmt"

	"github.com/vanshshar/QuizMaster/internal/domain"
)

// Catalog is an ordered, indexed collection of quizzes.
type Catalog struct {
	quizzes []domain.Quiz
	byID    map[string]domain.Quiz
}

// New builds a catalog from the given quizzes, preserving order.
func New(quizzes []domain.Quiz) *Catalog {
	byID := make(map[string]domain.Quiz, len(quizzes))
	for _, quiz := range quizzes {
		byID[quiz.ID] = quiz
	}
	return &Catalog{quizzes: quizzes, byID: byID}
}

// Quizzes returns the quizzes in catalog order.
func (c *Catalog) Quizzes() []domain.Quiz {
	return c.quizzes
}

// Find looks up a quiz by id.
func (c *Catalog) Find(id string) (domain.Quiz, bool) {
	quiz, ok := c.byID[id]
	return quiz, ok
}

// Len returns the number of quizzes.
func (c *Catalog) Len() int {
	return len(c.quizzes)
}

// Validate checks the structural invariants the rest of the application
// relies on: unique quiz ids, non-empty question lists, unique question ids
// within a quiz, and every correct index pointing at an existing option.
func Validate(quizzes []domain.Quiz) error {
	seenQuiz := make(map[string]struct{}, len(quizzes))
	for _, quiz := range quizzes {
		if quiz.ID == "" {
			return fmt.Errorf("quiz %q: missing id", quiz.Title)
		}
		if _, ok := seenQuiz[quiz.ID]; ok {
			return fmt.Errorf("quiz %q: duplicate id", quiz.ID)
		}
		seenQuiz[quiz.ID] = struct{}{}

		if len(quiz.Questions) == 0 {
			return fmt.Errorf("quiz %q: needs at least one question", quiz.ID)
		}
		seenQuestion := make(map[int]struct{}, len(quiz.Questions))
		for _, question := range quiz.Questions {
			if _, ok := seenQuestion[question.ID]; ok {
				return fmt.Errorf("quiz %q: duplicate question id %d", quiz.ID, question.ID)
			}
			seenQuestion[question.ID] = struct{}{}
			if len(question.Options) < 2 {
				return fmt.Errorf("quiz %q question %d: needs at least two options", quiz.ID, question.ID)
			}
			if question.CorrectIndex < 0 || question.CorrectIndex >= len(question.Options) {
				return fmt.Errorf("quiz %q question %d: correct index %d out of range", quiz.ID, question.ID, question.CorrectIndex)
			}
		}
	}
	return nil
}
