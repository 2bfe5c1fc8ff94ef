package engine

import (
	"context"
	"log/slog"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/holloway/touchline/internal/team"
)

// Players returns a copy of the roster in stored order.
func (e *Engine) Players() []team.Player {
	out := make([]team.Player, len(e.state.Players))
	copy(out, e.state.Players)
	return out
}

// FindPlayers returns roster players whose name fuzzy-matches query, best
// match first. An empty query matches nobody.
func (e *Engine) FindPlayers(query string) []team.Player {
	if query == "" {
		return nil
	}

	names := make([]string, len(e.state.Players))
	for i, p := range e.state.Players {
		names[i] = p.Name()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	matched := make([]team.Player, 0, len(ranks))
	for _, r := range ranks {
		matched = append(matched, e.state.Players[r.OriginalIndex])
	}
	return matched
}

// AddPlayer appends a new bench player to the roster. Every game that
// already initialized its lineup gets a fresh bench entry for the player,
// keeping lineup membership equal to roster membership; games without a
// lineup stay untouched and pick the player up on lazy initialization.
func (e *Engine) AddPlayer(ctx context.Context, firstName, lastName string, jerseyNumber int) (team.Player, error) {
	p := team.Player{
		ID:           e.ids.New(),
		FirstName:    firstName,
		LastName:     lastName,
		JerseyNumber: jerseyNumber,
		Location:     team.LocationBench,
	}
	e.state.Players = append(e.state.Players, p)

	for i := range e.state.Games {
		g := &e.state.Games[i]
		if g.Lineup == nil {
			continue
		}
		g.Lineup = append(g.Lineup, team.PlayerLineupState{
			PlayerID: p.ID,
			Location: team.LocationBench,
		})
	}

	return p, e.commit(ctx, team.RecordPlayers, team.RecordGames)
}

// UpdatePlayer edits a player's name and jersey number. No-op for an
// unknown id.
func (e *Engine) UpdatePlayer(ctx context.Context, id, firstName, lastName string, jerseyNumber int) error {
	p := e.findPlayer(id)
	if p == nil {
		slog.Debug("update ignored: unknown player", "player", id)
		return nil
	}
	p.FirstName = firstName
	p.LastName = lastName
	p.JerseyNumber = jerseyNumber
	return e.commit(ctx, team.RecordPlayers)
}

// DeletePlayer removes a player and cascades over every structure that
// references the id: game lineups lose the player's entry, ledgers lose
// events naming the player as scorer or assist (scores are recounted from
// the surviving events), and saved templates drop the player's slot. The
// cascade is one logical operation; nothing observes a dangling id.
func (e *Engine) DeletePlayer(ctx context.Context, id string) error {
	idx := -1
	for i := range e.state.Players {
		if e.state.Players[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		slog.Debug("delete ignored: unknown player", "player", id)
		return nil
	}
	e.state.Players = append(e.state.Players[:idx], e.state.Players[idx+1:]...)

	for i := range e.state.Games {
		g := &e.state.Games[i]
		if g.Lineup != nil {
			kept := g.Lineup[:0]
			for _, entry := range g.Lineup {
				if entry.PlayerID != id {
					kept = append(kept, entry)
				}
			}
			g.Lineup = kept
		}

		pruned := false
		events := g.Events[:0]
		for _, ev := range g.Events {
			if ev.ScorerID == id || ev.AssistID == id {
				pruned = true
				continue
			}
			events = append(events, ev)
		}
		g.Events = events
		if pruned {
			recountScores(g)
		}
	}

	for i := range e.state.SavedLineups {
		sl := &e.state.SavedLineups[i]
		kept := sl.Entries[:0]
		for _, entry := range sl.Entries {
			if entry.PlayerID != id {
				kept = append(kept, entry)
			}
		}
		sl.Entries = kept
	}

	return e.commit(ctx, team.RecordPlayers, team.RecordGames, team.RecordSavedLineups)
}

// MovePlayer sets a player's ad-hoc location and position, the arrangement
// used outside of any game. No-op for an unknown id.
func (e *Engine) MovePlayer(ctx context.Context, id string, location team.Location, pos *team.Position) error {
	p := e.findPlayer(id)
	if p == nil {
		slog.Debug("move ignored: unknown player", "player", id)
		return nil
	}
	p.Location = location
	if location == team.LocationField {
		p.Position = pos
	} else {
		p.Position = nil
	}
	return e.commit(ctx, team.RecordPlayers)
}

// SwapPlayers exchanges two players' ad-hoc placement. Two field players
// trade positions only; a field player and a bench player trade both
// location and position; two players on the same non-field location are
// left alone.
func (e *Engine) SwapPlayers(ctx context.Context, idA, idB string) error {
	a := e.findPlayer(idA)
	b := e.findPlayer(idB)
	if a == nil || b == nil || a == b {
		slog.Debug("swap ignored: unknown player", "a", idA, "b", idB)
		return nil
	}

	switch {
	case a.Location == team.LocationField && b.Location == team.LocationField:
		a.Position, b.Position = b.Position, a.Position
	case a.Location != b.Location:
		a.Location, b.Location = b.Location, a.Location
		a.Position, b.Position = b.Position, a.Position
	default:
		// Both on the same non-field location: nothing to exchange.
		return nil
	}

	return e.commit(ctx, team.RecordPlayers)
}
