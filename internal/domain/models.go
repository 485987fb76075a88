package domain

import "time"

// Question models an MCQ question with exactly one correct option.
type Question struct {
	ID           int      `json:"id"`
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctAnswer"`
	Explanation  string   `json:"explanation"`
}

// Quiz is an ordered collection of questions with display metadata.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Questions   []Question `json:"questions"`
}

// Answer records one submitted response within an attempt. The question text
// is snapshotted so later catalog edits do not alter history.
type Answer struct {
	QuestionID    int    `json:"questionId"`
	Question      string `json:"question"`
	UserAnswer    int    `json:"userAnswer"`
	CorrectAnswer int    `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// Attempt is one completed run of a quiz. It is built exactly once at
// completion time and never mutated afterwards.
type Attempt struct {
	ID             string    `json:"id"`
	UserName       string    `json:"userName"`
	QuizID         string    `json:"quizId"`
	QuizTitle      string    `json:"quizTitle"`
	Date           time.Time `json:"date"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Percentage     int       `json:"percentage"`
	Answers        []Answer  `json:"answers"`
}

// UserStats aggregates the persisted attempt history. It is derived on demand
// and never stored.
type UserStats struct {
	TotalAttempts    int `json:"totalAttempts"`
	HighestScore     int `json:"highestScore"`
	LastAttemptScore int `json:"lastAttemptScore"`
}
