package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/vanshshar/QuizMaster/internal/domain"
)

// Gateway exposes the two persisted records (display name and attempt
// history) over a RecordStore, plus the statistics derived from them.
type Gateway struct {
	store RecordStore
}

func NewGateway(store RecordStore) *Gateway {
	return &Gateway{store: store}
}

// UserName returns the persisted display name, if any.
func (g *Gateway) UserName(ctx context.Context) (string, bool, error) {
	name, ok, err := g.store.Get(ctx, recordUserName)
	if err != nil {
		return "", false, fmt.Errorf("load user name: %w", err)
	}
	return name, ok && name != "", nil
}

// SetUserName persists the display name.
func (g *Gateway) SetUserName(ctx context.Context, name string) error {
	if err := g.store.Set(ctx, recordUserName, name); err != nil {
		return fmt.Errorf("save user name: %w", err)
	}
	return nil
}

// ClearUserName removes the persisted display name.
func (g *Gateway) ClearUserName(ctx context.Context) error {
	if err := g.store.Delete(ctx, recordUserName); err != nil {
		return fmt.Errorf("clear user name: %w", err)
	}
	return nil
}

// Attempts returns the persisted attempts, newest first. An absent record is
// an empty history. An unparseable record is also treated as empty: losing
// history beats crashing the UI over a corrupt store.
func (g *Gateway) Attempts(ctx context.Context) ([]domain.Attempt, error) {
	raw, ok, err := g.store.Get(ctx, recordAttempts)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	if !ok || raw == "" {
		return []domain.Attempt{}, nil
	}
	var attempts []domain.Attempt
	if err := json.Unmarshal([]byte(raw), &attempts); err != nil {
		log.Printf("attempt history unreadable, starting empty: %v", err)
		return []domain.Attempt{}, nil
	}
	return attempts, nil
}

// SaveAttempt prepends an attempt to the persisted history. The whole list is
// rewritten, which is fine at this data scale.
func (g *Gateway) SaveAttempt(ctx context.Context, attempt domain.Attempt) error {
	attempts, err := g.Attempts(ctx)
	if err != nil {
		return err
	}
	attempts = append([]domain.Attempt{attempt}, attempts...)
	raw, err := json.Marshal(attempts)
	if err != nil {
		return fmt.Errorf("encode attempts: %w", err)
	}
	if err := g.store.Set(ctx, recordAttempts, string(raw)); err != nil {
		return fmt.Errorf("save attempts: %w", err)
	}
	return nil
}

// AttemptsByQuiz returns the attempts for one quiz, newest first.
func (g *Gateway) AttemptsByQuiz(ctx context.Context, quizID string) ([]domain.Attempt, error) {
	attempts, err := g.Attempts(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Attempt, 0, len(attempts))
	for _, attempt := range attempts {
		if attempt.QuizID == quizID {
			filtered = append(filtered, attempt)
		}
	}
	return filtered, nil
}

// Stats recomputes the aggregate statistics from the attempt history.
func (g *Gateway) Stats(ctx context.Context) (domain.UserStats, error) {
	attempts, err := g.Attempts(ctx)
	if err != nil {
		return domain.UserStats{}, err
	}
	if len(attempts) == 0 {
		return domain.UserStats{}, nil
	}
	stats := domain.UserStats{
		TotalAttempts:    len(attempts),
		LastAttemptScore: attempts[0].Percentage,
	}
	for _, attempt := range attempts {
		if attempt.Percentage > stats.HighestScore {
			stats.HighestScore = attempt.Percentage
		}
	}
	return stats, nil
}

// ClearAll wipes both persisted records.
func (g *Gateway) ClearAll(ctx context.Context) error {
	if err := g.store.Delete(ctx, recordUserName); err != nil {
		return fmt.Errorf("clear user name: %w", err)
	}
	if err := g.store.Delete(ctx, recordAttempts); err != nil {
		return fmt.Errorf("clear attempts: %w", err)
	}
	return nil
}
