package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway/touchline/internal/team"
)

func TestSaveLineup_SnapshotsRoster(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	a := addPlayer(t, e, "Ada", "Okafor")
	b := addPlayer(t, e, "Billie", "Reyes")
	require.NoError(t, e.MovePlayer(ctx, a.ID, team.LocationField, &team.Position{X: 0.3, Y: 0.6}))

	require.NoError(t, e.SaveLineup(ctx, "4-4-2"))

	sl, ok := e.SavedLineup("4-4-2")
	require.True(t, ok)
	require.Len(t, sl.Entries, 2)
	require.Equal(t, a.ID, sl.Entries[0].PlayerID)
	require.Equal(t, team.LocationField, sl.Entries[0].Location)
	require.Equal(t, 0.3, sl.Entries[0].Position.X)
	require.Equal(t, b.ID, sl.Entries[1].PlayerID)
	require.Equal(t, team.LocationBench, sl.Entries[1].Location)
}

func TestSaveLineup_ReplacesSameName(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	a := addPlayer(t, e, "Ada", "Okafor")
	require.NoError(t, e.SaveLineup(ctx, "4-4-2"))

	require.NoError(t, e.MovePlayer(ctx, a.ID, team.LocationField, nil))
	require.NoError(t, e.SaveLineup(ctx, "4-4-2"))

	require.Len(t, e.SavedLineups(), 1)
	sl, _ := e.SavedLineup("4-4-2")
	require.Equal(t, team.LocationField, sl.Entries[0].Location)
}

func TestSaveLineup_BlankNameIsNoOp(t *testing.T) {
	e, hook, _ := newTestEngine(t)

	before := hook.commits
	require.NoError(t, e.SaveLineup(context.Background(), ""))
	require.Equal(t, before, hook.commits)
	require.Empty(t, e.SavedLineups())
}

func TestLoadLineup_AppliesTemplateAndBenchesAbsentPlayers(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	a := addPlayer(t, e, "Ada", "Okafor")
	require.NoError(t, e.MovePlayer(ctx, a.ID, team.LocationField, &team.Position{X: 0.5, Y: 0.5}))
	require.NoError(t, e.SaveLineup(ctx, "4-4-2"))

	// Scramble the roster and add a player the template has never seen.
	require.NoError(t, e.MovePlayer(ctx, a.ID, team.LocationInactive, nil))
	late := addPlayer(t, e, "Billie", "Reyes")
	require.NoError(t, e.MovePlayer(ctx, late.ID, team.LocationField, &team.Position{X: 0.8, Y: 0.2}))

	ok, err := e.LoadLineup(ctx, "4-4-2")
	require.NoError(t, err)
	require.True(t, ok)

	players := e.Players()
	require.Equal(t, team.LocationField, players[0].Location)
	require.Equal(t, 0.5, players[0].Position.X)
	require.Equal(t, team.LocationBench, players[1].Location)
	require.Nil(t, players[1].Position)
}

func TestLoadLineup_MissingTemplate(t *testing.T) {
	e, hook, _ := newTestEngine(t)
	ctx := context.Background()

	a := addPlayer(t, e, "Ada", "Okafor")
	require.NoError(t, e.MovePlayer(ctx, a.ID, team.LocationField, nil))

	before := hook.commits
	ok, err := e.LoadLineup(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, before, hook.commits)
	require.Equal(t, team.LocationField, e.Players()[0].Location)
}

func TestImportSavedLineup_DropsUnknownPlayers(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	a := addPlayer(t, e, "Ada", "Okafor")

	err := e.ImportSavedLineup(ctx, team.SavedLineup{
		Name: "imported",
		Entries: []team.SavedLineupEntry{
			{PlayerID: a.ID, Location: team.LocationField},
			{PlayerID: "long-gone", Location: team.LocationField},
		},
	})
	require.NoError(t, err)

	sl, ok := e.SavedLineup("imported")
	require.True(t, ok)
	require.Len(t, sl.Entries, 1)
	require.Equal(t, a.ID, sl.Entries[0].PlayerID)
}

func TestDeleteSavedLineup(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	addPlayer(t, e, "Ada", "Okafor")
	require.NoError(t, e.SaveLineup(ctx, "4-4-2"))
	require.NoError(t, e.DeleteSavedLineup(ctx, "4-4-2"))

	_, ok := e.SavedLineup("4-4-2")
	require.False(t, ok)

	// Deleting again is harmless.
	require.NoError(t, e.DeleteSavedLineup(ctx, "4-4-2"))
}

func TestHistory_MostRecentFirstAndUnique(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	for _, season := range []string{"2025/26", "2024/25", "2025/26"} {
		_, err := e.AddGame(ctx, GameParams{Opponent: "Rovers", Season: season, Competition: "League"})
		require.NoError(t, err)
	}

	h := e.History()
	require.Equal(t, []string{"2025/26", "2024/25"}, h.Seasons)
	require.Equal(t, []string{"League"}, h.Competitions)
}

func TestHistory_CapsAtLimit(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	for i := 0; i < historyLimit+3; i++ {
		_, err := e.AddGame(ctx, GameParams{Opponent: "Rovers", Season: fmt.Sprintf("season-%d", i)})
		require.NoError(t, err)
	}

	h := e.History()
	require.Len(t, h.Seasons, historyLimit)
	require.Equal(t, fmt.Sprintf("season-%d", historyLimit+2), h.Seasons[0])
}

func TestHistory_BlankTagsIgnored(t *testing.T) {
	e, _, _ := newTestEngine(t)

	_, err := e.AddGame(context.Background(), GameParams{Opponent: "Rovers"})
	require.NoError(t, err)

	h := e.History()
	require.Empty(t, h.Seasons)
	require.Empty(t, h.Competitions)
}
