package team

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortPlayersByName returns a copy of players ordered by last name then
// first name, using locale-aware collation so accented names sort the way
// a team sheet would print them.
func SortPlayersByName(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)

	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		if r := c.CompareString(out[i].LastName, out[j].LastName); r != 0 {
			return r < 0
		}
		return c.CompareString(out[i].FirstName, out[j].FirstName) < 0
	})
	return out
}
