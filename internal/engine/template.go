package engine

import (
	"context"
	"log/slog"

	"github.com/holloway/touchline/internal/team"
)

// historyLimit caps each most-recently-used list.
const historyLimit = 10

// SavedLineups returns a copy of the stored templates in stored order.
func (e *Engine) SavedLineups() []team.SavedLineup {
	out := make([]team.SavedLineup, len(e.state.SavedLineups))
	copy(out, e.state.SavedLineups)
	return out
}

// SavedLineup returns one template by name.
func (e *Engine) SavedLineup(name string) (team.SavedLineup, bool) {
	for _, sl := range e.state.SavedLineups {
		if sl.Name == name {
			return sl, true
		}
	}
	return team.SavedLineup{}, false
}

// SaveLineup snapshots every roster player's current ad-hoc location and
// position under the given name, replacing any existing template of the
// same name. No-op for a blank name.
func (e *Engine) SaveLineup(ctx context.Context, name string) error {
	if name == "" {
		slog.Debug("save ignored: blank template name")
		return nil
	}

	entries := make([]team.SavedLineupEntry, 0, len(e.state.Players))
	for _, p := range e.state.Players {
		entries = append(entries, team.SavedLineupEntry{
			PlayerID: p.ID,
			Location: p.Location,
			Position: p.Position,
		})
	}
	e.putSavedLineup(team.SavedLineup{Name: name, Entries: entries})

	return e.commit(ctx, team.RecordSavedLineups)
}

// LoadLineup applies a named template to the roster: players present in the
// template take their saved location and position, players absent from it
// are forced to the bench with no position. Returns false without touching
// anything if no template with that name exists.
func (e *Engine) LoadLineup(ctx context.Context, name string) (bool, error) {
	sl, ok := e.SavedLineup(name)
	if !ok {
		return false, nil
	}

	saved := make(map[string]team.SavedLineupEntry, len(sl.Entries))
	for _, entry := range sl.Entries {
		saved[entry.PlayerID] = entry
	}

	for i := range e.state.Players {
		p := &e.state.Players[i]
		if entry, ok := saved[p.ID]; ok {
			p.Location = entry.Location
			p.Position = entry.Position
		} else {
			p.Location = team.LocationBench
			p.Position = nil
		}
	}

	return true, e.commit(ctx, team.RecordPlayers)
}

// ImportSavedLineup stores an externally supplied template (YAML import),
// dropping entries that reference players no longer on the roster. Replaces
// any existing template of the same name. No-op for a blank name.
func (e *Engine) ImportSavedLineup(ctx context.Context, sl team.SavedLineup) error {
	if sl.Name == "" {
		slog.Debug("import ignored: blank template name")
		return nil
	}

	entries := make([]team.SavedLineupEntry, 0, len(sl.Entries))
	for _, entry := range sl.Entries {
		if e.findPlayer(entry.PlayerID) == nil {
			slog.Warn("dropping template entry for unknown player", "template", sl.Name, "player", entry.PlayerID)
			continue
		}
		entries = append(entries, entry)
	}
	e.putSavedLineup(team.SavedLineup{Name: sl.Name, Entries: entries})

	return e.commit(ctx, team.RecordSavedLineups)
}

// DeleteSavedLineup removes a template by name. No-op if absent.
func (e *Engine) DeleteSavedLineup(ctx context.Context, name string) error {
	for i := range e.state.SavedLineups {
		if e.state.SavedLineups[i].Name == name {
			e.state.SavedLineups = append(e.state.SavedLineups[:i], e.state.SavedLineups[i+1:]...)
			return e.commit(ctx, team.RecordSavedLineups)
		}
	}
	slog.Debug("delete ignored: unknown template", "template", name)
	return nil
}

// putSavedLineup replaces a template in place or appends a new one.
func (e *Engine) putSavedLineup(sl team.SavedLineup) {
	for i := range e.state.SavedLineups {
		if e.state.SavedLineups[i].Name == sl.Name {
			e.state.SavedLineups[i] = sl
			return
		}
	}
	e.state.SavedLineups = append(e.state.SavedLineups, sl)
}

// History returns the most-recently-used season and competition tags.
func (e *Engine) History() team.GameHistory {
	return team.GameHistory{
		Seasons:      append([]string{}, e.state.History.Seasons...),
		Competitions: append([]string{}, e.state.History.Competitions...),
	}
}

// touchHistory promotes non-blank tags to the front of their MRU lists.
// Callers commit RecordGameHistory alongside their own dirty records.
func (e *Engine) touchHistory(season, competition string) {
	e.state.History.Seasons = touchMRU(e.state.History.Seasons, season)
	e.state.History.Competitions = touchMRU(e.state.History.Competitions, competition)
}

// touchMRU moves value to the front of list, keeping entries unique and the
// list bounded. Blank values leave the list unchanged.
func touchMRU(list []string, value string) []string {
	if value == "" {
		return list
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, value)
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	if len(out) > historyLimit {
		out = out[:historyLimit]
	}
	return out
}
