package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/holloway/touchline/internal/team"
)

// StartGameTimer starts a game's match clock. No-op if the game is unknown,
// explicitly finished, or already running.
//
// On the very first start (no elapsed time accrued yet) every player
// currently on the field is marked a starter; that flag is set exactly once
// and never revisited. Every start arms a per-player timer for each player
// already on the field, and backfills the fixture's date and time to "now"
// when they differ, treating the game as happening live.
func (e *Engine) StartGameTimer(ctx context.Context, gameID string) error {
	g := e.findGame(gameID)
	if g == nil {
		slog.Debug("start ignored: unknown game", "game", gameID)
		return nil
	}
	if g.IsExplicitlyFinished {
		slog.Debug("start ignored: game is finished", "game", gameID)
		return nil
	}
	if g.TimerStatus == team.TimerRunning {
		return nil
	}

	now := e.clock.Now()
	e.ensureLineup(g)

	firstStart := g.TimerElapsedSeconds == 0
	g.TimerStatus = team.TimerRunning
	g.TimerStart = millis(now)
	g.IsExplicitlyFinished = false

	if d := now.Format("2006-01-02"); g.Date != d {
		g.Date = d
	}
	if t := now.Format("15:04"); g.Time != t {
		g.Time = t
	}

	for i := range g.Lineup {
		entry := &g.Lineup[i]
		if entry.Location != team.LocationField {
			continue
		}
		if firstStart {
			entry.IsStarter = true
		}
		if entry.PlaytimerStart == nil {
			entry.PlaytimerStart = millis(now)
		}
	}

	return e.commit(ctx, team.RecordGames)
}

// StopGameTimer stops a running match clock, folding the elapsed time into
// the finalized total and force-finalizing every active per-player timer.
// No-op unless the clock is running with a recorded start instant.
func (e *Engine) StopGameTimer(ctx context.Context, gameID string) error {
	g := e.findGame(gameID)
	if g == nil {
		slog.Debug("stop ignored: unknown game", "game", gameID)
		return nil
	}
	if g.TimerStatus != team.TimerRunning || g.TimerStart == nil {
		return nil
	}

	finalizeClock(g, e.clock.Now())
	return e.commit(ctx, team.RecordGames)
}

// MarkGameFinished stops the clock if it is running, then flags the game as
// explicitly finished. A finished game cannot be restarted until the flag is
// cleared by a settings edit.
func (e *Engine) MarkGameFinished(ctx context.Context, gameID string) error {
	g := e.findGame(gameID)
	if g == nil {
		slog.Debug("finish ignored: unknown game", "game", gameID)
		return nil
	}

	finalizeClock(g, e.clock.Now())
	g.IsExplicitlyFinished = true
	return e.commit(ctx, team.RecordGames)
}

// finalizeClock folds a running clock into timerElapsedSeconds and clears
// it, then finalizes the per-player timers. Field and inactive players both
// accrue on finalization; any timer left on a bench entry is cleared without
// accrual to restore the timer invariant.
func finalizeClock(g *team.Game, now time.Time) {
	if g.TimerStatus != team.TimerRunning || g.TimerStart == nil {
		return
	}
	g.TimerElapsedSeconds += elapsedSeconds(*g.TimerStart, now)
	g.TimerStart = nil
	g.TimerStatus = team.TimerStopped

	for i := range g.Lineup {
		entry := &g.Lineup[i]
		if entry.PlaytimerStart == nil {
			continue
		}
		if entry.Location == team.LocationField || entry.Location == team.LocationInactive {
			entry.PlaytimeSeconds += elapsedSeconds(*entry.PlaytimerStart, now)
		}
		entry.PlaytimerStart = nil
	}
}

// StartPlayerTimer manually arms one player's timer, used to re-arm accrual
// after a correction. No-op unless the player is on the field, the match
// clock is running, and no timer is already active.
func (e *Engine) StartPlayerTimer(ctx context.Context, gameID, playerID string) error {
	g := e.findGame(gameID)
	if g == nil {
		slog.Debug("player start ignored: unknown game", "game", gameID)
		return nil
	}
	e.ensureLineup(g)
	entry := findEntry(g, playerID)
	if entry == nil {
		slog.Debug("player start ignored: unknown player", "game", gameID, "player", playerID)
		return nil
	}
	if entry.Location != team.LocationField || g.TimerStatus != team.TimerRunning || entry.PlaytimerStart != nil {
		return nil
	}

	entry.PlaytimerStart = millis(e.clock.Now())
	return e.commit(ctx, team.RecordGames)
}

// StopPlayerTimer finalizes one player's active timer into playtimeSeconds
// and clears it. No-op if no timer is active.
func (e *Engine) StopPlayerTimer(ctx context.Context, gameID, playerID string) error {
	g := e.findGame(gameID)
	if g == nil {
		slog.Debug("player stop ignored: unknown game", "game", gameID)
		return nil
	}
	entry := findEntry(g, playerID)
	if entry == nil || entry.PlaytimerStart == nil {
		return nil
	}

	entry.PlaytimeSeconds += elapsedSeconds(*entry.PlaytimerStart, e.clock.Now())
	entry.PlaytimerStart = nil
	return e.commit(ctx, team.RecordGames)
}

// GameClockElapsed returns the effective elapsed time for display: the
// finalized total plus, while running, the unrounded time since the start
// instant. Computed on demand, never persisted.
func (e *Engine) GameClockElapsed(gameID string) time.Duration {
	g := e.findGame(gameID)
	if g == nil {
		return 0
	}
	elapsed := time.Duration(g.TimerElapsedSeconds) * time.Second
	if g.TimerStatus == team.TimerRunning && g.TimerStart != nil {
		elapsed += e.clock.Now().Sub(time.UnixMilli(*g.TimerStart))
	}
	return elapsed
}

// PlayerPlaytime returns one player's effective playtime for display,
// including the unrounded live portion of an active timer.
func (e *Engine) PlayerPlaytime(gameID, playerID string) time.Duration {
	g := e.findGame(gameID)
	if g == nil {
		return 0
	}
	entry := findEntry(g, playerID)
	if entry == nil {
		return 0
	}
	elapsed := time.Duration(entry.PlaytimeSeconds) * time.Second
	if entry.PlaytimerStart != nil {
		elapsed += e.clock.Now().Sub(time.UnixMilli(*entry.PlaytimerStart))
	}
	return elapsed
}
