package app

import "github.com/vanshshar/QuizMaster/internal/domain"

// Runner drives a single quiz attempt: the question being shown and the
// answers accumulated so far. Questions are answered strictly in order; a
// question can be submitted once and must be submitted before advancing.
type Runner struct {
	quiz    domain.Quiz
	index   int
	answers []domain.Answer
}

func NewRunner(quiz domain.Quiz) *Runner {
	return &Runner{
		quiz:    quiz,
		answers: make([]domain.Answer, 0, len(quiz.Questions)),
	}
}

// Quiz returns the quiz being run.
func (r *Runner) Quiz() domain.Quiz {
	return r.quiz
}

// Current returns the question at the cursor.
func (r *Runner) Current() domain.Question {
	return r.quiz.Questions[r.index]
}

// Index returns the 0-based cursor position.
func (r *Runner) Index() int {
	return r.index
}

// Len returns the total question count.
func (r *Runner) Len() int {
	return len(r.quiz.Questions)
}

// Answered reports whether the current question already has an answer.
func (r *Runner) Answered() bool {
	return len(r.answers) > r.index
}

// Submit records the answer for the current question. Resubmitting the same
// question is rejected so an attempt never carries duplicate answers.
func (r *Runner) Submit(option int) (domain.Answer, error) {
	if r.Answered() {
		return domain.Answer{}, domain.ErrAlreadyAnswered
	}
	question := r.Current()
	if option < 0 || option >= len(question.Options) {
		return domain.Answer{}, domain.ErrOptionOutOfRange
	}
	answer := domain.Answer{
		QuestionID:    question.ID,
		Question:      question.Prompt,
		UserAnswer:    option,
		CorrectAnswer: question.CorrectIndex,
		IsCorrect:     option == question.CorrectIndex,
	}
	r.answers = append(r.answers, answer)
	return answer, nil
}

// Advance moves to the next question, or reports completion after the last
// one. Advancing past an unanswered question is rejected, so a completed
// attempt always covers every question.
func (r *Runner) Advance() (bool, error) {
	if !r.Answered() {
		return false, domain.ErrNotAnswered
	}
	if r.index == len(r.quiz.Questions)-1 {
		return true, nil
	}
	r.index++
	return false, nil
}

// Answers returns a copy of the answers accumulated so far.
func (r *Runner) Answers() []domain.Answer {
	out := make([]domain.Answer, len(r.answers))
	copy(out, r.answers)
	return out
}
