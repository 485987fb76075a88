package app

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vanshshar/QuizMaster/internal/domain"
)

// NewAttemptID combines the completion time with a random component, keeping
// ids sortable by creation and collision probability negligible.
func NewAttemptID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + uuid.NewString()
}

// BuildAttempt turns a finished answer list into a persisted attempt record.
// The quiz title and question texts are snapshotted at completion time. The
// answer list must cover every question, so the percentage computation never
// divides by zero.
//
// Percentage is rounded half away from zero (21/32 correct is 66%, 5/8 is 63%).
func BuildAttempt(quiz domain.Quiz, userName string, answers []domain.Answer, now time.Time) (domain.Attempt, error) {
	if len(answers) == 0 {
		return domain.Attempt{}, domain.ErrEmptyAttempt
	}
	if len(answers) != len(quiz.Questions) {
		return domain.Attempt{}, domain.ErrIncompleteAttempt
	}

	score := 0
	for _, answer := range answers {
		if answer.UserAnswer == answer.CorrectAnswer {
			score++
		}
	}
	percentage := int(math.Round(100 * float64(score) / float64(len(answers))))

	return domain.Attempt{
		ID:             NewAttemptID(now),
		UserName:       userName,
		QuizID:         quiz.ID,
		QuizTitle:      quiz.Title,
		Date:           now.UTC(),
		Score:          score,
		TotalQuestions: len(answers),
		Percentage:     percentage,
		Answers:        answers,
	}, nil
}
