package team

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortPlayersByName(t *testing.T) {
	players := []Player{
		{ID: "1", FirstName: "Zoe", LastName: "Adams"},
		{ID: "2", FirstName: "ana", LastName: "Álvarez"},
		{ID: "3", FirstName: "Ben", LastName: "adams"},
		{ID: "4", FirstName: "Cara", LastName: "Baker"},
	}

	sorted := SortPlayersByName(players)

	// Case-insensitive, accent-aware: adams before Álvarez before Baker,
	// ties broken by first name.
	ids := make([]string, len(sorted))
	for i, p := range sorted {
		ids[i] = p.ID
	}
	require.Equal(t, []string{"3", "1", "2", "4"}, ids)

	// Input order untouched.
	require.Equal(t, "1", players[0].ID)
}

func TestPlayerName(t *testing.T) {
	require.Equal(t, "Ada Okafor", Player{FirstName: "Ada", LastName: "Okafor"}.Name())
	require.Equal(t, "Okafor", Player{LastName: "Okafor"}.Name())
	require.Equal(t, "Ada", Player{FirstName: "Ada"}.Name())
	require.Equal(t, "", Player{}.Name())
}
