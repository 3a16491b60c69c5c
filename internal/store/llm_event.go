package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/adwitiya/lexio/ent"
	"github.com/adwitiya/lexio/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) StatsByPurpose(ctx context.Context) ([]LLMStats, error) {
	rows, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byPurpose := make(map[string]*LLMStats)
	for _, row := range rows {
		s, ok := byPurpose[row.Purpose]
		if !ok {
			s = &LLMStats{Purpose: row.Purpose}
			byPurpose[row.Purpose] = s
		}
		s.Requests++
		if !row.Success {
			s.Failures++
		}
		s.InputTokens += row.InputTokens
		s.OutputTokens += row.OutputTokens
	}

	stats := make([]LLMStats, 0, len(byPurpose))
	for _, s := range byPurpose {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Purpose < stats[j].Purpose })
	return stats, nil
}
