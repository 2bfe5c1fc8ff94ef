package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/holloway/touchline/internal/team"
)

// CommitHook observes committed state. The engine calls it after every
// mutation with the record classes whose snapshot changed; the store adapter
// writes those through durably. Tests inject an in-memory hook.
type CommitHook interface {
	Commit(ctx context.Context, state *team.State, dirty []team.RecordClass) error
}

// NopHook discards commits. Useful for read-only tooling and tests that
// only exercise in-memory behavior.
type NopHook struct{}

// Commit implements CommitHook.
func (NopHook) Commit(context.Context, *team.State, []team.RecordClass) error { return nil }

// Engine is the lineup and timekeeping core.
//
// It holds the full application snapshot and applies every mutation
// synchronously: read the current snapshot, take one wall-clock reading,
// compute the next consistent snapshot, install it, then hand it to the
// commit hook. Runtime-argument failures (unknown game or player id, missing
// template, nothing to undo) are silent no-ops per the operator contract;
// only LoadLineup reports presence explicitly.
//
// Not safe for concurrent use: one operator, one intent at a time.
type Engine struct {
	state *team.State
	hook  CommitHook
	clock clockwork.Clock
	ids   IDGenerator
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock. Tests use clockwork's fake clock to
// make every elapsed-time computation deterministic.
func WithClock(c clockwork.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithIDGenerator overrides entity id generation. Tests use FixedGenerator.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) { e.ids = g }
}

// New creates an Engine over a previously loaded (already sanitized)
// snapshot. A nil state starts empty. A nil hook disables persistence.
func New(state *team.State, hook CommitHook, opts ...Option) *Engine {
	if state == nil {
		state = team.NewState()
	}
	if hook == nil {
		hook = NopHook{}
	}

	e := &Engine{
		state: state,
		hook:  hook,
		clock: clockwork.NewRealClock(),
		ids:   UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// commit hands the current snapshot to the hook with the dirty record set.
func (e *Engine) commit(ctx context.Context, dirty ...team.RecordClass) error {
	if err := e.hook.Commit(ctx, e.state, dirty); err != nil {
		return fmt.Errorf("commit state: %w", err)
	}
	return nil
}

// TeamName returns the stored team name.
func (e *Engine) TeamName() string { return e.state.TeamName }

// SetTeamName stores the team name.
func (e *Engine) SetTeamName(ctx context.Context, name string) error {
	e.state.TeamName = name
	return e.commit(ctx, team.RecordTeamName)
}

// TeamLogo returns the stored team logo reference.
func (e *Engine) TeamLogo() string { return e.state.TeamLogo }

// SetTeamLogo stores the team logo reference.
func (e *Engine) SetTeamLogo(ctx context.Context, logo string) error {
	e.state.TeamLogo = logo
	return e.commit(ctx, team.RecordTeamLogo)
}

// findPlayer returns a pointer into the roster, or nil if id is unknown.
func (e *Engine) findPlayer(id string) *team.Player {
	for i := range e.state.Players {
		if e.state.Players[i].ID == id {
			return &e.state.Players[i]
		}
	}
	return nil
}

// findGame returns a pointer into the games list, or nil if id is unknown.
func (e *Engine) findGame(id string) *team.Game {
	for i := range e.state.Games {
		if e.state.Games[i].ID == id {
			return &e.state.Games[i]
		}
	}
	return nil
}

// findEntry returns a pointer into a game's lineup, or nil.
func findEntry(g *team.Game, playerID string) *team.PlayerLineupState {
	for i := range g.Lineup {
		if g.Lineup[i].PlayerID == playerID {
			return &g.Lineup[i]
		}
	}
	return nil
}

// ensureLineup lazy-initializes a game's lineup from the current roster.
// Games loaded from storage may carry no lineup at all; membership is
// established on first access.
func (e *Engine) ensureLineup(g *team.Game) {
	if g.Lineup != nil {
		return
	}
	g.Lineup = freshLineup(e.state.Players)
}

// freshLineup builds an all-bench lineup covering every roster player, with
// timers and counters zeroed.
func freshLineup(players []team.Player) []team.PlayerLineupState {
	lineup := make([]team.PlayerLineupState, 0, len(players))
	for _, p := range players {
		lineup = append(lineup, team.PlayerLineupState{
			PlayerID: p.ID,
			Location: team.LocationBench,
		})
	}
	return lineup
}

// elapsedSeconds converts a start instant in Unix milliseconds to whole
// seconds elapsed at now, rounded to the nearest second. This is the single
// rounding point for every playtime and clock finalization.
func elapsedSeconds(startMillis int64, now time.Time) int {
	ms := now.UnixMilli() - startMillis
	if ms <= 0 {
		return 0
	}
	return int(math.Round(float64(ms) / 1000.0))
}

// millis returns t as a Unix-millisecond pointer for timer fields.
func millis(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}
