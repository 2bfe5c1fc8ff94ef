package engine

import (
	"context"
	"log/slog"

	"github.com/holloway/touchline/internal/team"
)

// GameParams carries the operator-editable fixture metadata.
type GameParams struct {
	Opponent    string
	Date        string // "2006-01-02"
	Time        string // "15:04"
	IsHome      bool
	Season      string
	Competition string
}

// Games returns a copy of the fixture list in stored order.
func (e *Engine) Games() []team.Game {
	out := make([]team.Game, len(e.state.Games))
	copy(out, e.state.Games)
	return out
}

// Game returns a copy of one fixture by id.
func (e *Engine) Game(id string) (team.Game, bool) {
	g := e.findGame(id)
	if g == nil {
		return team.Game{}, false
	}
	return *g, true
}

// AddGame creates a fixture with a fresh all-bench lineup covering the
// current roster and an empty event ledger. The season and competition tags
// are recorded as most-recently-used history.
func (e *Engine) AddGame(ctx context.Context, params GameParams) (team.Game, error) {
	g := team.Game{
		ID:          e.ids.New(),
		Opponent:    params.Opponent,
		Date:        params.Date,
		Time:        params.Time,
		IsHome:      params.IsHome,
		Season:      params.Season,
		Competition: params.Competition,
		TimerStatus: team.TimerStopped,
		Lineup:      freshLineup(e.state.Players),
		Events:      []team.GameEvent{},
	}
	e.state.Games = append(e.state.Games, g)
	e.touchHistory(params.Season, params.Competition)

	return g, e.commit(ctx, team.RecordGames, team.RecordGameHistory)
}

// UpdateGameSettings edits fixture metadata and clears the explicit
// finished flag, which is the only way a finished game becomes startable
// again. No-op for an unknown id.
func (e *Engine) UpdateGameSettings(ctx context.Context, id string, params GameParams) error {
	g := e.findGame(id)
	if g == nil {
		slog.Debug("update ignored: unknown game", "game", id)
		return nil
	}

	g.Opponent = params.Opponent
	g.Date = params.Date
	g.Time = params.Time
	g.IsHome = params.IsHome
	g.Season = params.Season
	g.Competition = params.Competition
	g.IsExplicitlyFinished = false
	e.touchHistory(params.Season, params.Competition)

	return e.commit(ctx, team.RecordGames, team.RecordGameHistory)
}

// DeleteGame removes a fixture and everything it owns. The roster is not
// affected. No-op for an unknown id.
func (e *Engine) DeleteGame(ctx context.Context, id string) error {
	idx := -1
	for i := range e.state.Games {
		if e.state.Games[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		slog.Debug("delete ignored: unknown game", "game", id)
		return nil
	}
	e.state.Games = append(e.state.Games[:idx], e.state.Games[idx+1:]...)
	return e.commit(ctx, team.RecordGames)
}
