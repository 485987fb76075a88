package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vanshshar/QuizMaster/internal/app"
	"github.com/vanshshar/QuizMaster/internal/catalog"
	"github.com/vanshshar/QuizMaster/internal/domain"
	"github.com/vanshshar/QuizMaster/internal/infra/memory"
)

func TestSessionStartsAtNameEntry(t *testing.T) {
	session, _ := newTestSession(t)
	if session.Screen() != app.ScreenNameEntry {
		t.Fatalf("expected name-entry, got %v", session.Screen())
	}
}

func TestSessionResumesWithPersistedName(t *testing.T) {
	ctx := context.Background()
	gateway := app.NewGateway(memory.NewStore())
	if err := gateway.SetUserName(ctx, "Dana"); err != nil {
		t.Fatalf("seed name: %v", err)
	}

	session, err := app.NewSession(ctx, catalog.Default(), gateway)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if session.Screen() != app.ScreenDashboard {
		t.Fatalf("expected resume into dashboard, got %v", session.Screen())
	}
	if session.UserName() != "Dana" {
		t.Fatalf("expected Dana, got %q", session.UserName())
	}
}

func TestSessionNameValidation(t *testing.T) {
	ctx := context.Background()

	for _, input := range []string{"", " ", "A"} {
		session, _ := newTestSession(t)
		err := session.SubmitName(ctx, input)
		if !errors.Is(err, domain.ErrNameTooShort) {
			t.Fatalf("input %q: expected rejection, got %v", input, err)
		}
		if session.Screen() != app.ScreenNameEntry {
			t.Fatalf("input %q: rejected name must not transition", input)
		}
	}

	session, _ := newTestSession(t)
	if err := session.SubmitName(ctx, "Al"); err != nil {
		t.Fatalf("expected 2-char name accepted, got %v", err)
	}
	if session.Screen() != app.ScreenDashboard {
		t.Fatalf("expected dashboard after name submit, got %v", session.Screen())
	}

	session, gateway := newTestSession(t)
	if err := session.SubmitName(ctx, " Bo "); err != nil {
		t.Fatalf("expected padded name accepted, got %v", err)
	}
	stored, ok, err := gateway.UserName(ctx)
	if err != nil || !ok || stored != "Bo" {
		t.Fatalf("expected trimmed name persisted as Bo, got %q (ok=%v, err=%v)", stored, ok, err)
	}
}

func TestSessionFullHappyPath(t *testing.T) {
	ctx := context.Background()
	session, gateway := newTestSession(t)

	if err := session.SubmitName(ctx, "Dana"); err != nil {
		t.Fatalf("submit name: %v", err)
	}
	if err := session.SelectQuiz("general"); err != nil {
		t.Fatalf("select quiz: %v", err)
	}
	if session.Screen() != app.ScreenQuizTaking {
		t.Fatalf("expected quiz-taking, got %v", session.Screen())
	}

	// Questions 1-6 answered correctly, 7-8 wrong.
	completeQuiz(t, session, 6)

	if session.Screen() != app.ScreenResults {
		t.Fatalf("expected results, got %v", session.Screen())
	}
	attempt, ok := session.LastAttempt()
	if !ok {
		t.Fatalf("expected a finished attempt")
	}
	if attempt.Score != 6 || attempt.TotalQuestions != 8 || attempt.Percentage != 75 {
		t.Fatalf("expected 6/8 = 75%%, got %d/%d = %d%%", attempt.Score, attempt.TotalQuestions, attempt.Percentage)
	}
	if attempt.UserName != "Dana" || attempt.QuizTitle != "General Knowledge" {
		t.Fatalf("unexpected attempt snapshot: %+v", attempt)
	}

	persisted, err := gateway.Attempts(ctx)
	if err != nil {
		t.Fatalf("load attempts: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != attempt.ID {
		t.Fatalf("expected the attempt persisted at the head, got %+v", persisted)
	}
}

func TestSessionSelectUnknownQuizDoesNotTransition(t *testing.T) {
	session, _ := newTestSession(t)
	if err := session.SubmitName(context.Background(), "Dana"); err != nil {
		t.Fatalf("submit name: %v", err)
	}

	err := session.SelectQuiz("does-not-exist")
	if !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected quiz-not-found, got %v", err)
	}
	if session.Screen() != app.ScreenDashboard {
		t.Fatalf("unknown quiz must not navigate, screen is %v", session.Screen())
	}
}

func TestSessionAbandonDiscardsProgress(t *testing.T) {
	ctx := context.Background()
	session, gateway := newTestSession(t)
	mustReachQuiz(t, session, "react")

	if _, err := session.SubmitAnswer(0); err != nil {
		t.Fatalf("submit answer: %v", err)
	}
	if err := session.Abandon(); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if session.Screen() != app.ScreenDashboard || session.Runner() != nil {
		t.Fatalf("expected dashboard with no runner after abandon")
	}

	attempts, _ := gateway.Attempts(ctx)
	if len(attempts) != 0 {
		t.Fatalf("abandoned attempt must not persist, got %d attempts", len(attempts))
	}
}

func TestSessionRetakeRestartsSameQuiz(t *testing.T) {
	session, _ := newTestSession(t)
	mustReachQuiz(t, session, "webdev")
	completeQuiz(t, session, 8)

	if err := session.Retake(); err != nil {
		t.Fatalf("retake: %v", err)
	}
	if session.Screen() != app.ScreenQuizTaking {
		t.Fatalf("expected quiz-taking after retake, got %v", session.Screen())
	}
	runner := session.Runner()
	if runner.Quiz().ID != "webdev" || runner.Index() != 0 || len(runner.Answers()) != 0 {
		t.Fatalf("expected a fresh runner for the same quiz, got quiz=%q index=%d answers=%d",
			runner.Quiz().ID, runner.Index(), len(runner.Answers()))
	}
	if _, ok := session.LastAttempt(); ok {
		t.Fatalf("expected previous attempt cleared on retake")
	}
}

func TestSessionBackToDashboardClearsSelection(t *testing.T) {
	session, _ := newTestSession(t)
	mustReachQuiz(t, session, "general")
	completeQuiz(t, session, 4)

	if err := session.BackToDashboard(); err != nil {
		t.Fatalf("back to dashboard: %v", err)
	}
	if session.Screen() != app.ScreenDashboard {
		t.Fatalf("expected dashboard, got %v", session.Screen())
	}
	if _, ok := session.LastAttempt(); ok {
		t.Fatalf("expected attempt cleared from session state")
	}
}

func TestSessionLogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	session, gateway := newTestSession(t)
	mustReachQuiz(t, session, "general")

	if err := session.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if session.Screen() != app.ScreenNameEntry || session.UserName() != "" || session.Runner() != nil {
		t.Fatalf("expected pristine name-entry state after logout")
	}
	if _, ok, _ := gateway.UserName(ctx); ok {
		t.Fatalf("expected persisted name removed")
	}

	// A new session over the same store starts at name entry again.
	fresh, err := app.NewSession(ctx, catalog.Default(), gateway)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if fresh.Screen() != app.ScreenNameEntry {
		t.Fatalf("expected fresh session at name-entry, got %v", fresh.Screen())
	}
}

func TestSessionGuardsIntentsPerScreen(t *testing.T) {
	ctx := context.Background()
	session, _ := newTestSession(t)

	if _, err := session.SubmitAnswer(0); !errors.Is(err, domain.ErrWrongScreen) {
		t.Fatalf("expected answer rejected at name-entry, got %v", err)
	}
	if err := session.SelectQuiz("general"); !errors.Is(err, domain.ErrWrongScreen) {
		t.Fatalf("expected selection rejected at name-entry, got %v", err)
	}

	if err := session.SubmitName(ctx, "Dana"); err != nil {
		t.Fatalf("submit name: %v", err)
	}
	if err := session.SubmitName(ctx, "Dana"); !errors.Is(err, domain.ErrWrongScreen) {
		t.Fatalf("expected name rejected at dashboard, got %v", err)
	}
	if err := session.Retake(); !errors.Is(err, domain.ErrWrongScreen) {
		t.Fatalf("expected retake rejected at dashboard, got %v", err)
	}
}

func newTestSession(t *testing.T) (*app.Session, *app.Gateway) {
	t.Helper()
	gateway := app.NewGateway(memory.NewStore())
	now := func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) }
	session, err := app.NewSessionWithClock(context.Background(), catalog.Default(), gateway, now)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session, gateway
}

func mustReachQuiz(t *testing.T, session *app.Session, quizID string) {
	t.Helper()
	ctx := context.Background()
	if session.Screen() == app.ScreenNameEntry {
		if err := session.SubmitName(ctx, "Dana"); err != nil {
			t.Fatalf("submit name: %v", err)
		}
	}
	if err := session.SelectQuiz(quizID); err != nil {
		t.Fatalf("select quiz %q: %v", quizID, err)
	}
}

// completeQuiz answers every question, getting the first `correct` right.
func completeQuiz(t *testing.T, session *app.Session, correct int) {
	t.Helper()
	ctx := context.Background()
	runner := session.Runner()
	total := runner.Len()
	for i := 0; i < total; i++ {
		question := runner.Current()
		picked := question.CorrectIndex
		if i >= correct {
			picked = (question.CorrectIndex + 1) % len(question.Options)
		}
		if _, err := session.SubmitAnswer(picked); err != nil {
			t.Fatalf("submit answer %d: %v", i+1, err)
		}
		done, err := session.Advance(ctx)
		if err != nil {
			t.Fatalf("advance %d: %v", i+1, err)
		}
		if wantDone := i == total-1; done != wantDone {
			t.Fatalf("advance %d: expected done=%v, got %v", i+1, wantDone, done)
		}
	}
}
