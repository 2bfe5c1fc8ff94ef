package engine

import (
	"context"
	"log/slog"

	"github.com/holloway/touchline/internal/team"
)

// AddGameEvent appends a goal for the given side to a game's ledger and
// increments that side's score. Ledger append and score increment are one
// atomic update; no observer sees one without the other. No-op if the game
// id is unknown.
func (e *Engine) AddGameEvent(ctx context.Context, gameID string, s team.Side, scorerID, assistID string) (team.GameEvent, error) {
	g := e.findGame(gameID)
	if g == nil {
		slog.Debug("event ignored: unknown game", "game", gameID)
		return team.GameEvent{}, nil
	}

	ev := team.GameEvent{
		ID:        e.ids.New(),
		Kind:      team.EventGoal,
		Side:      s,
		ScorerID:  scorerID,
		AssistID:  assistID,
		Timestamp: e.clock.Now().UnixMilli(),
	}
	g.Events = append(g.Events, ev)
	switch s {
	case team.SideAway:
		g.AwayScore++
	default:
		g.HomeScore++
	}

	return ev, e.commit(ctx, team.RecordGames)
}

// RemoveLastGameEvent removes the most recent event for one side — a
// per-side "undo last goal", leaving later events of the other side
// untouched — and decrements that side's score, floored at zero. No-op if
// the side has no events.
func (e *Engine) RemoveLastGameEvent(ctx context.Context, gameID string, s team.Side) error {
	g := e.findGame(gameID)
	if g == nil {
		slog.Debug("undo ignored: unknown game", "game", gameID)
		return nil
	}

	idx := -1
	for i := len(g.Events) - 1; i >= 0; i-- {
		if g.Events[i].Side == s {
			idx = i
			break
		}
	}
	if idx < 0 {
		slog.Debug("undo ignored: no event for side", "game", gameID, "side", s)
		return nil
	}

	g.Events = append(g.Events[:idx], g.Events[idx+1:]...)
	switch s {
	case team.SideAway:
		if g.AwayScore > 0 {
			g.AwayScore--
		}
	default:
		if g.HomeScore > 0 {
			g.HomeScore--
		}
	}

	return e.commit(ctx, team.RecordGames)
}

// recountScores rebuilds both cached scores from the ledger. Only the
// cascade delete calls this; the two ledger operations above are otherwise
// the sole writers of the score fields.
func recountScores(g *team.Game) {
	home, away := 0, 0
	for _, ev := range g.Events {
		if ev.Side == team.SideAway {
			away++
		} else {
			home++
		}
	}
	g.HomeScore = home
	g.AwayScore = away
}
