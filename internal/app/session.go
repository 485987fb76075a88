package app

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vanshshar/QuizMaster/internal/catalog"
	"github.com/vanshshar/QuizMaster/internal/domain"
)

// Screen identifies the active screen of the session state machine.
type Screen int

const (
	ScreenNameEntry Screen = iota
	ScreenDashboard
	ScreenQuizTaking
	ScreenResults
)

func (s Screen) String() string {
	switch s {
	case ScreenNameEntry:
		return "name-entry"
	case ScreenDashboard:
		return "dashboard"
	case ScreenQuizTaking:
		return "quiz-taking"
	case ScreenResults:
		return "results"
	default:
		return "unknown"
	}
}

// Session owns the screen state machine and the data flowing between
// screens: the display name, the quiz being taken, and the finished attempt
// shown on the results screen. The rendering layer drives it with user
// intents and reads back the current screen; it never mutates state directly.
type Session struct {
	catalog *catalog.Catalog
	gateway *Gateway
	now     func() time.Time

	screen      Screen
	userName    string
	runner      *Runner
	lastAttempt *domain.Attempt
}

// NewSession builds a session over the catalog and gateway. When a display
// name is already persisted it resumes straight into the dashboard instead of
// the name-entry screen.
func NewSession(ctx context.Context, cat *catalog.Catalog, gateway *Gateway) (*Session, error) {
	return NewSessionWithClock(ctx, cat, gateway, time.Now)
}

// NewSessionWithClock is a test hook for deterministic attempt timestamps.
func NewSessionWithClock(ctx context.Context, cat *catalog.Catalog, gateway *Gateway, now func() time.Time) (*Session, error) {
	session := &Session{
		catalog: cat,
		gateway: gateway,
		now:     now,
		screen:  ScreenNameEntry,
	}
	name, ok, err := gateway.UserName(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		session.userName = name
		session.screen = ScreenDashboard
	}
	return session, nil
}

// Screen returns the active screen.
func (s *Session) Screen() Screen {
	return s.screen
}

// UserName returns the current display name.
func (s *Session) UserName() string {
	return s.userName
}

// Catalog returns the quiz catalog the session selects from.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Runner returns the in-progress quiz runner, or nil outside quiz-taking.
func (s *Session) Runner() *Runner {
	return s.runner
}

// LastAttempt returns the attempt shown on the results screen.
func (s *Session) LastAttempt() (domain.Attempt, bool) {
	if s.lastAttempt == nil {
		return domain.Attempt{}, false
	}
	return *s.lastAttempt, true
}

// Stats returns the aggregate statistics for the dashboard.
func (s *Session) Stats(ctx context.Context) (domain.UserStats, error) {
	return s.gateway.Stats(ctx)
}

// AttemptsByQuiz returns the persisted history for one quiz.
func (s *Session) AttemptsByQuiz(ctx context.Context, quizID string) ([]domain.Attempt, error) {
	return s.gateway.AttemptsByQuiz(ctx, quizID)
}

// SubmitName validates and persists the display name, then moves to the
// dashboard. The name is trimmed before both validation and storage.
func (s *Session) SubmitName(ctx context.Context, raw string) error {
	if s.screen != ScreenNameEntry {
		return domain.ErrWrongScreen
	}
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) < 2 {
		return domain.ErrNameTooShort
	}
	if err := s.gateway.SetUserName(ctx, name); err != nil {
		return err
	}
	s.userName = name
	s.screen = ScreenDashboard
	return nil
}

// SelectQuiz starts a quiz attempt. An unknown id is reported and leaves the
// screen unchanged.
func (s *Session) SelectQuiz(id string) error {
	if s.screen != ScreenDashboard {
		return domain.ErrWrongScreen
	}
	quiz, ok := s.catalog.Find(id)
	if !ok {
		return domain.ErrQuizNotFound
	}
	s.runner = NewRunner(quiz)
	s.screen = ScreenQuizTaking
	return nil
}

// SubmitAnswer records the answer for the current question and returns it so
// the rendering layer can show immediate feedback.
func (s *Session) SubmitAnswer(option int) (domain.Answer, error) {
	if s.screen != ScreenQuizTaking {
		return domain.Answer{}, domain.ErrWrongScreen
	}
	return s.runner.Submit(option)
}

// Advance moves to the next question. After the last question it scores the
// attempt, persists it, and moves to the results screen, reporting done=true.
func (s *Session) Advance(ctx context.Context) (bool, error) {
	if s.screen != ScreenQuizTaking {
		return false, domain.ErrWrongScreen
	}
	done, err := s.runner.Advance()
	if err != nil || !done {
		return false, err
	}
	attempt, err := BuildAttempt(s.runner.Quiz(), s.userName, s.runner.Answers(), s.now())
	if err != nil {
		return false, err
	}
	if err := s.gateway.SaveAttempt(ctx, attempt); err != nil {
		return false, err
	}
	s.lastAttempt = &attempt
	s.runner = nil
	s.screen = ScreenResults
	return true, nil
}

// Abandon discards the in-progress attempt and returns to the dashboard.
// Confirming with the user first is the rendering layer's job.
func (s *Session) Abandon() error {
	if s.screen != ScreenQuizTaking {
		return domain.ErrWrongScreen
	}
	s.runner = nil
	s.screen = ScreenDashboard
	return nil
}

// BackToDashboard leaves the results screen, clearing the selection.
func (s *Session) BackToDashboard() error {
	if s.screen != ScreenResults {
		return domain.ErrWrongScreen
	}
	s.lastAttempt = nil
	s.screen = ScreenDashboard
	return nil
}

// Retake restarts the quiz just finished, keeping the same selection.
func (s *Session) Retake() error {
	if s.screen != ScreenResults {
		return domain.ErrWrongScreen
	}
	quiz, ok := s.catalog.Find(s.lastAttempt.QuizID)
	if !ok {
		return domain.ErrQuizNotFound
	}
	s.lastAttempt = nil
	s.runner = NewRunner(quiz)
	s.screen = ScreenQuizTaking
	return nil
}

// Logout clears the persisted display name and all in-memory session data,
// returning to name entry. It is valid from any screen.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.gateway.ClearUserName(ctx); err != nil {
		return err
	}
	s.userName = ""
	s.runner = nil
	s.lastAttempt = nil
	s.screen = ScreenNameEntry
	return nil
}
