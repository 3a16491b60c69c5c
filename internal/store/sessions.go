package store

import (
	"context"
	"fmt"
	"time"

	"github.com/adwitiya/lexio/ent"
	"github.com/adwitiya/lexio/ent/gamesession"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Started(ctx context.Context, start SessionStart) error {
	_, err := r.client.GameSession.Create().
		SetSessionID(start.SessionID).
		SetDocID(start.DocID).
		SetGameType(start.GameType).
		SetDifficulty(start.Difficulty).
		SetRoundsTotal(start.RoundCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record session start: %w", err)
	}
	return nil
}

func (r *sessionRepo) Completed(ctx context.Context, result SessionResult) error {
	n, err := r.client.GameSession.Update().
		Where(gamesession.SessionIDEQ(result.SessionID)).
		SetScore(result.Score).
		SetRoundsCompleted(result.RoundsCompleted).
		SetMainWordsFound(result.MainWordsFound).
		SetBonusWordsFound(result.BonusWordsFound).
		SetTerminationReason(result.TerminationReason).
		SetCompleted(true).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record session completion: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("record session completion: session %s not found", result.SessionID)
	}
	return nil
}

func (r *sessionRepo) List(ctx context.Context) ([]*SessionRecord, error) {
	rows, err := r.client.GameSession.Query().
		Order(ent.Desc(gamesession.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	records := make([]*SessionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &SessionRecord{
			SessionID:         row.SessionID,
			DocID:             row.DocID,
			GameType:          row.GameType,
			Difficulty:        row.Difficulty,
			Score:             row.Score,
			RoundsTotal:       row.RoundsTotal,
			RoundsCompleted:   row.RoundsCompleted,
			MainWordsFound:    row.MainWordsFound,
			BonusWordsFound:   row.BonusWordsFound,
			TerminationReason: row.TerminationReason,
			Completed:         row.Completed,
			StartedAt:         row.StartedAt,
			CompletedAt:       row.CompletedAt,
		})
	}
	return records, nil
}
