package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/holloway/touchline/internal/team"
)

// kickoff is the fixed instant every engine test starts from.
var kickoff = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

// memoryHook records commits for assertions; the engine never knows it is
// not talking to the real store.
type memoryHook struct {
	commits   int
	lastDirty []team.RecordClass
}

func (h *memoryHook) Commit(_ context.Context, _ *team.State, dirty []team.RecordClass) error {
	h.commits++
	h.lastDirty = dirty
	return nil
}

// seqGen hands out id-1, id-2, ... without ever running dry.
type seqGen struct{ n int }

func (g *seqGen) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestEngine(t *testing.T) (*Engine, *memoryHook, clockwork.FakeClock) {
	t.Helper()
	hook := &memoryHook{}
	clock := clockwork.NewFakeClockAt(kickoff)
	e := New(team.NewState(), hook, WithClock(clock), WithIDGenerator(&seqGen{}))
	return e, hook, clock
}

func addPlayer(t *testing.T, e *Engine, first, last string) team.Player {
	t.Helper()
	p, err := e.AddPlayer(context.Background(), first, last, 0)
	require.NoError(t, err)
	return p
}

func addGame(t *testing.T, e *Engine, opponent string) team.Game {
	t.Helper()
	g, err := e.AddGame(context.Background(), GameParams{Opponent: opponent, Date: "2026-03-14", Time: "15:00"})
	require.NoError(t, err)
	return g
}

func TestNew_NilStateStartsEmpty(t *testing.T) {
	e := New(nil, nil)
	if got := len(e.Players()); got != 0 {
		t.Errorf("expected empty roster, got %d players", got)
	}
	if got := len(e.Games()); got != 0 {
		t.Errorf("expected no games, got %d", got)
	}
}

func TestSetTeamName_CommitsOnlyTeamNameRecord(t *testing.T) {
	e, hook, _ := newTestEngine(t)

	require.NoError(t, e.SetTeamName(context.Background(), "Holloway Harriers"))
	require.Equal(t, "Holloway Harriers", e.TeamName())
	require.Equal(t, []team.RecordClass{team.RecordTeamName}, hook.lastDirty)
}

func TestSetTeamLogo_RoundTrips(t *testing.T) {
	e, _, _ := newTestEngine(t)

	require.NoError(t, e.SetTeamLogo(context.Background(), "logo.png"))
	require.Equal(t, "logo.png", e.TeamLogo())
}

func TestCommit_HookErrorIsWrapped(t *testing.T) {
	hook := failingHook{}
	e := New(team.NewState(), hook)

	err := e.SetTeamName(context.Background(), "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "commit state")
}

type failingHook struct{}

func (failingHook) Commit(context.Context, *team.State, []team.RecordClass) error {
	return fmt.Errorf("disk on fire")
}

func TestElapsedSeconds_RoundsToNearest(t *testing.T) {
	start := kickoff.UnixMilli()

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"exact", kickoff.Add(30 * time.Second), 30},
		{"rounds down", kickoff.Add(30*time.Second + 400*time.Millisecond), 30},
		{"rounds up", kickoff.Add(30*time.Second + 600*time.Millisecond), 31},
		{"half rounds up", kickoff.Add(30*time.Second + 500*time.Millisecond), 31},
		{"clock skew clamps to zero", kickoff.Add(-5 * time.Second), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := elapsedSeconds(start, tt.at); got != tt.want {
				t.Errorf("elapsedSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}
