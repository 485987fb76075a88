package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vanshshar/QuizMaster/internal/app"
	"github.com/vanshshar/QuizMaster/internal/catalog"
	"github.com/vanshshar/QuizMaster/internal/infra/memory"
)

func TestPlayFullSession(t *testing.T) {
	ctx := context.Background()
	gateway := app.NewGateway(memory.NewStore())
	session := newTestSession(t, gateway)

	// Name, pick quiz 3 (General Knowledge), answer 1-6 right and 7-8 wrong,
	// back to the dashboard, quit.
	input := "Dana\n3\nC\nB\nC\nC\nC\nC\nA\nA\nd\nq\n"
	var out bytes.Buffer

	if err := runPlay(ctx, session, strings.NewReader(input), &out); err != nil {
		t.Fatalf("run play: %v", err)
	}

	rendered := out.String()
	for _, want := range []string{
		"Welcome to QuizMaster!",
		"General Knowledge",
		"Question 1 of 8",
		"Correct!",
		"Incorrect. The correct answer was C. Au",
		"Score: 75% | Correct: 6 | Wrong: 2 | Total: 8",
		"Great job!",
		"Attempts: 1 | Best: 75% | Last: 75%",
		"Goodbye!",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("output missing %q:\n%s", want, rendered)
		}
	}

	attempts, err := gateway.Attempts(ctx)
	if err != nil {
		t.Fatalf("load attempts: %v", err)
	}
	if len(attempts) != 1 || attempts[0].Score != 6 || attempts[0].Percentage != 75 {
		t.Fatalf("expected one persisted 6/8 attempt, got %+v", attempts)
	}
}

func TestPlayResumesIntoDashboard(t *testing.T) {
	ctx := context.Background()
	gateway := app.NewGateway(memory.NewStore())
	if err := gateway.SetUserName(ctx, "Bo"); err != nil {
		t.Fatalf("seed name: %v", err)
	}
	session := newTestSession(t, gateway)

	var out bytes.Buffer
	if err := runPlay(ctx, session, strings.NewReader("q\n"), &out); err != nil {
		t.Fatalf("run play: %v", err)
	}
	if !strings.Contains(out.String(), "Welcome back, Bo!") {
		t.Fatalf("expected resume straight into dashboard:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Enter your name") {
		t.Fatalf("resume must skip name entry:\n%s", out.String())
	}
}

func TestPlayAbandonDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	gateway := app.NewGateway(memory.NewStore())
	session := newTestSession(t, gateway)

	// Start quiz 1, bail out of question 1 with confirmation, quit.
	input := "Dana\n1\nb\ny\nq\n"
	var out bytes.Buffer
	if err := runPlay(ctx, session, strings.NewReader(input), &out); err != nil {
		t.Fatalf("run play: %v", err)
	}

	attempts, err := gateway.Attempts(ctx)
	if err != nil {
		t.Fatalf("load attempts: %v", err)
	}
	if len(attempts) != 0 {
		t.Fatalf("abandoned quiz must not persist an attempt, got %+v", attempts)
	}
}

func TestPlayRejectsShortName(t *testing.T) {
	ctx := context.Background()
	gateway := app.NewGateway(memory.NewStore())
	session := newTestSession(t, gateway)

	var out bytes.Buffer
	if err := runPlay(ctx, session, strings.NewReader("A\nAl\nq\n"), &out); err != nil {
		t.Fatalf("run play: %v", err)
	}
	if !strings.Contains(out.String(), "at least 2 characters") {
		t.Fatalf("expected validation message:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Welcome back, Al!") {
		t.Fatalf("expected second name accepted:\n%s", out.String())
	}
}

func newTestSession(t *testing.T, gateway *app.Gateway) *app.Session {
	t.Helper()
	now := func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) }
	session, err := app.NewSessionWithClock(context.Background(), catalog.Default(), gateway, now)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}
