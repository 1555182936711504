package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// Service appends scores and reads the top list. There is no validation,
// deduplication or rate limiting.
type Service struct {
	store Store
	now   func() time.Time
	newID func() string
	log   *zap.Logger
}

func NewService(store Store, log *zap.Logger) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
		log:   log,
	}
}

// SubmitScore records a score with a server-assigned timestamp. The name is
// stored in NFC so visually equal names compare equal.
func (s *Service) SubmitScore(ctx context.Context, playerName string, score int) (Score, error) {
	rec := Score{
		ID:         s.newID(),
		PlayerName: norm.NFC.String(playerName),
		Score:      score,
		Timestamp:  s.now().UnixMilli(),
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return Score{}, fmt.Errorf("insert score: %w", err)
	}
	s.log.Info("score submitted",
		zap.String("id", rec.ID),
		zap.String("player", rec.PlayerName),
		zap.Int("score", rec.Score))
	return rec, nil
}

// GetTopScores returns at most TopLimit scores, best first.
func (s *Service) GetTopScores(ctx context.Context) ([]Score, error) {
	top, err := s.store.Top(ctx, TopLimit)
	if err != nil {
		return nil, fmt.Errorf("load top scores: %w", err)
	}
	if top == nil {
		top = []Score{}
	}
	return top, nil
}
