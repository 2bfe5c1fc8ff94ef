package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway/touchline/internal/team"
)

func TestAddPlayer_JoinsExistingLineups(t *testing.T) {
	e, hook, _ := newTestEngine(t)

	g := addGame(t, e, "Rovers")
	p := addPlayer(t, e, "Ada", "Okafor")

	require.Equal(t, team.LocationBench, p.Location)
	require.Equal(t, []team.RecordClass{team.RecordPlayers, team.RecordGames}, hook.lastDirty)

	got, _ := e.Game(g.ID)
	entry := findEntryByID(t, got, p.ID)
	require.Equal(t, team.LocationBench, entry.Location)
	require.Equal(t, 0, entry.PlaytimeSeconds)
}

func TestAddPlayer_SkipsUninitializedLineups(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	g := addGame(t, e, "Rovers")
	e.findGame(g.ID).Lineup = nil

	addPlayer(t, e, "Ada", "Okafor")

	got, _ := e.Game(g.ID)
	require.Nil(t, got.Lineup)

	// Lazy initialization picks the player up later.
	require.NoError(t, e.StartGameTimer(ctx, g.ID))
	got, _ = e.Game(g.ID)
	require.Len(t, got.Lineup, 1)
}

func TestUpdatePlayer_EditsInPlace(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	p := addPlayer(t, e, "Ada", "Okafor")
	require.NoError(t, e.UpdatePlayer(ctx, p.ID, "Adaeze", "Okafor", 14))

	players := e.Players()
	require.Len(t, players, 1)
	require.Equal(t, "Adaeze", players[0].FirstName)
	require.Equal(t, 14, players[0].JerseyNumber)
	require.Equal(t, p.ID, players[0].ID)
}

func TestDeletePlayer_CascadesEverywhere(t *testing.T) {
	e, hook, _ := newTestEngine(t)
	ctx := context.Background()

	target := addPlayer(t, e, "Ada", "Okafor")
	keeper := addPlayer(t, e, "Billie", "Reyes")
	g := addGame(t, e, "Rovers")

	_, err := e.AddGameEvent(ctx, g.ID, team.SideHome, target.ID, "")
	require.NoError(t, err)
	_, err = e.AddGameEvent(ctx, g.ID, team.SideHome, keeper.ID, target.ID)
	require.NoError(t, err)
	_, err = e.AddGameEvent(ctx, g.ID, team.SideHome, keeper.ID, "")
	require.NoError(t, err)
	require.NoError(t, e.SaveLineup(ctx, "cup-final"))

	require.NoError(t, e.DeletePlayer(ctx, target.ID))

	require.Len(t, e.Players(), 1)
	require.Equal(t, keeper.ID, e.Players()[0].ID)

	got, _ := e.Game(g.ID)
	require.Len(t, got.Lineup, 1)
	require.Equal(t, keeper.ID, got.Lineup[0].PlayerID)

	// Both events naming the deleted player are gone, as scorer and as
	// assist, and the cached score follows the surviving ledger.
	require.Len(t, got.Events, 1)
	require.Equal(t, 1, got.HomeScore)

	sl, ok := e.SavedLineup("cup-final")
	require.True(t, ok)
	require.Len(t, sl.Entries, 1)
	require.Equal(t, keeper.ID, sl.Entries[0].PlayerID)

	require.Equal(t, []team.RecordClass{team.RecordPlayers, team.RecordGames, team.RecordSavedLineups}, hook.lastDirty)
}

func TestDeletePlayer_UnknownIDIsNoOp(t *testing.T) {
	e, hook, _ := newTestEngine(t)

	before := hook.commits
	require.NoError(t, e.DeletePlayer(context.Background(), "missing"))
	require.Equal(t, before, hook.commits)
}

func TestMovePlayer_PositionOnlyOnField(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	p := addPlayer(t, e, "Ada", "Okafor")

	require.NoError(t, e.MovePlayer(ctx, p.ID, team.LocationField, &team.Position{X: 0.5, Y: 0.5}))
	require.NotNil(t, e.Players()[0].Position)

	require.NoError(t, e.MovePlayer(ctx, p.ID, team.LocationInactive, &team.Position{X: 0.5, Y: 0.5}))
	require.Equal(t, team.LocationInactive, e.Players()[0].Location)
	require.Nil(t, e.Players()[0].Position)
}

func TestSwapPlayers(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	a := addPlayer(t, e, "Ada", "Okafor")
	b := addPlayer(t, e, "Billie", "Reyes")

	// Field+field: positions trade, locations stay.
	require.NoError(t, e.MovePlayer(ctx, a.ID, team.LocationField, &team.Position{X: 0.1, Y: 0.1}))
	require.NoError(t, e.MovePlayer(ctx, b.ID, team.LocationField, &team.Position{X: 0.9, Y: 0.9}))
	require.NoError(t, e.SwapPlayers(ctx, a.ID, b.ID))

	players := e.Players()
	require.Equal(t, 0.9, players[0].Position.X)
	require.Equal(t, 0.1, players[1].Position.X)

	// Field+bench: full swap.
	require.NoError(t, e.MovePlayer(ctx, b.ID, team.LocationBench, nil))
	require.NoError(t, e.SwapPlayers(ctx, a.ID, b.ID))

	players = e.Players()
	require.Equal(t, team.LocationBench, players[0].Location)
	require.Nil(t, players[0].Position)
	require.Equal(t, team.LocationField, players[1].Location)
	require.Equal(t, 0.9, players[1].Position.X)

	// Bench+bench: no-op.
	require.NoError(t, e.MovePlayer(ctx, b.ID, team.LocationBench, nil))
	require.NoError(t, e.SwapPlayers(ctx, a.ID, b.ID))
	players = e.Players()
	require.Equal(t, team.LocationBench, players[0].Location)
	require.Equal(t, team.LocationBench, players[1].Location)
}

func TestFindPlayers(t *testing.T) {
	e, _, _ := newTestEngine(t)

	addPlayer(t, e, "Ada", "Okafor")
	addPlayer(t, e, "Billie", "Reyes")
	addPlayer(t, e, "Adaeze", "Obi")

	require.Empty(t, e.FindPlayers(""))

	matches := e.FindPlayers("ada")
	require.Len(t, matches, 2)
	for _, p := range matches {
		require.Contains(t, []string{"Ada", "Adaeze"}, p.FirstName)
	}

	require.Empty(t, e.FindPlayers("zzz"))
}
