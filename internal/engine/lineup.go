package engine

import (
	"context"
	"log/slog"

	"github.com/holloway/touchline/internal/team"
)

// MovePlayerInGame transitions one player between bench, field and inactive
// within a game. All transitions are permitted; there is no forced ordering.
//
// The full transition applies against one consistent prior snapshot:
// leaving a time-accruing location finalizes the active timer, entering the
// field while the match clock runs arms a fresh one, and the substitution
// counters advance only on bench→field (on) and field→bench (off) moves.
// Transitions through inactive never touch the counters. No-op if the game
// or player id is unknown.
func (e *Engine) MovePlayerInGame(ctx context.Context, gameID, playerID string, from, to team.Location, pos *team.Position) error {
	g := e.findGame(gameID)
	if g == nil {
		slog.Debug("move ignored: unknown game", "game", gameID)
		return nil
	}
	e.ensureLineup(g)
	entry := findEntry(g, playerID)
	if entry == nil {
		slog.Debug("move ignored: player not in lineup", "game", gameID, "player", playerID)
		return nil
	}

	now := e.clock.Now()

	leavingAccrual := from == team.LocationField || from == team.LocationInactive
	if leavingAccrual && entry.PlaytimerStart != nil {
		entry.PlaytimeSeconds += elapsedSeconds(*entry.PlaytimerStart, now)
		entry.PlaytimerStart = nil
	}

	if to == team.LocationField {
		if g.TimerStatus == team.TimerRunning && entry.PlaytimerStart == nil {
			entry.PlaytimerStart = millis(now)
		}
	} else {
		// Defensive reset: a non-field target never keeps a timer.
		entry.PlaytimerStart = nil
	}

	if from == team.LocationBench && to == team.LocationField {
		entry.SubbedOnCount++
	}
	if from == team.LocationField && to == team.LocationBench {
		entry.SubbedOffCount++
	}

	entry.Location = to
	if to == team.LocationField {
		entry.Position = pos
	} else {
		entry.Position = nil
	}

	return e.commit(ctx, team.RecordGames)
}

// ResetGameLineup replaces a game's entire lineup with a fresh bench-only
// state for every current roster player: timers and counters zeroed, nobody
// a starter. Returns the new lineup; nil if the game id is unknown.
func (e *Engine) ResetGameLineup(ctx context.Context, gameID string) ([]team.PlayerLineupState, error) {
	g := e.findGame(gameID)
	if g == nil {
		slog.Debug("reset ignored: unknown game", "game", gameID)
		return nil, nil
	}

	g.Lineup = freshLineup(e.state.Players)

	lineup := make([]team.PlayerLineupState, len(g.Lineup))
	copy(lineup, g.Lineup)
	return lineup, e.commit(ctx, team.RecordGames)
}
