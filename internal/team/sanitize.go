package team

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// This file is the trust boundary between persisted documents and typed
// state. Each Sanitize* function takes one raw record document and produces
// a fully repaired value or an error.
//
// Two failure classes apply (never both to the same document):
//   - The whole document fails to parse: an error is returned and the caller
//     resets the record to its default value.
//   - The document parses but individual elements are malformed: those
//     elements are dropped or field-defaulted, a warning is logged, and
//     sanitization continues.
//
// Sanitization is idempotent: feeding a sanitized value back through its
// sanitizer reproduces it unchanged.

// SanitizeTeamField parses a plain string record (teamName, teamLogo).
func SanitizeTeamField(data []byte) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("parse string record: %w", err)
	}
	return s, nil
}

// SanitizePlayers parses the players record. Non-object entries and entries
// without a string id are dropped; location falls back to bench.
func SanitizePlayers(data []byte) ([]Player, error) {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse players record: %w", err)
	}

	players := make([]Player, 0, len(raw))
	for i, entry := range raw {
		obj, ok := entry.(map[string]any)
		if !ok {
			slog.Warn("dropping malformed player entry", "index", i)
			continue
		}
		id := stringField(obj, "id")
		if id == "" {
			slog.Warn("dropping player entry without id", "index", i)
			continue
		}
		players = append(players, Player{
			ID:           id,
			FirstName:    stringField(obj, "firstName"),
			LastName:     stringField(obj, "lastName"),
			JerseyNumber: intField(obj, "jerseyNumber"),
			Location:     rosterLocation(stringField(obj, "location")),
			Position:     positionField(obj, "position"),
		})
	}
	return players, nil
}

// SanitizeGames parses the games record. Entries without an id are dropped.
// A retained game's lineup keeps only well-formed elements and is nil when
// the stored lineup is not an array; events always sanitize to a non-nil
// slice.
func SanitizeGames(data []byte) ([]Game, error) {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse games record: %w", err)
	}

	games := make([]Game, 0, len(raw))
	for i, entry := range raw {
		obj, ok := entry.(map[string]any)
		if !ok {
			slog.Warn("dropping malformed game entry", "index", i)
			continue
		}
		id := stringField(obj, "id")
		if id == "" {
			slog.Warn("dropping game entry without id", "index", i)
			continue
		}
		games = append(games, Game{
			ID:                   id,
			Opponent:             stringField(obj, "opponent"),
			Date:                 stringField(obj, "date"),
			Time:                 stringField(obj, "time"),
			IsHome:               boolField(obj, "isHome"),
			Season:               stringField(obj, "season"),
			Competition:          stringField(obj, "competition"),
			HomeScore:            intField(obj, "homeScore"),
			AwayScore:            intField(obj, "awayScore"),
			TimerStatus:          timerStatus(stringField(obj, "timerStatus")),
			TimerStart:           millisField(obj, "timerStartTime"),
			TimerElapsedSeconds:  intField(obj, "timerElapsedSeconds"),
			IsExplicitlyFinished: boolField(obj, "isExplicitlyFinished"),
			Lineup:               sanitizeLineup(obj["lineup"], id),
			Events:               sanitizeEvents(obj["events"], id),
		})
	}
	return games, nil
}

// sanitizeLineup repairs one game's lineup array. A missing or non-array
// lineup stays nil so the engine can lazy-initialize it from the roster.
func sanitizeLineup(raw any, gameID string) []PlayerLineupState {
	arr, ok := raw.([]any)
	if !ok {
		return nil
	}

	lineup := make([]PlayerLineupState, 0, len(arr))
	for i, entry := range arr {
		obj, ok := entry.(map[string]any)
		if !ok {
			slog.Warn("dropping malformed lineup entry", "game", gameID, "index", i)
			continue
		}
		playerID := stringField(obj, "playerId")
		if playerID == "" {
			slog.Warn("dropping lineup entry without player id", "game", gameID, "index", i)
			continue
		}
		lineup = append(lineup, PlayerLineupState{
			PlayerID:        playerID,
			Location:        lineupLocation(stringField(obj, "location")),
			Position:        positionField(obj, "position"),
			PlaytimeSeconds: intField(obj, "playtimeSeconds"),
			PlaytimerStart:  millisField(obj, "playtimerStartTime"),
			IsStarter:       boolField(obj, "isStarter"),
			SubbedOnCount:   intField(obj, "subbedOnCount"),
			SubbedOffCount:  intField(obj, "subbedOffCount"),
		})
	}
	return lineup
}

// sanitizeEvents repairs one game's event ledger. Unlike lineup, an absent
// or invalid ledger becomes an empty slice, never nil. An element survives
// only with an id, a goal kind, a team and a numeric timestamp.
func sanitizeEvents(raw any, gameID string) []GameEvent {
	arr, ok := raw.([]any)
	if !ok {
		return []GameEvent{}
	}

	events := make([]GameEvent, 0, len(arr))
	for i, entry := range arr {
		obj, ok := entry.(map[string]any)
		if !ok {
			slog.Warn("dropping malformed event entry", "game", gameID, "index", i)
			continue
		}
		id := stringField(obj, "id")
		kind := stringField(obj, "type")
		_, hasSide := obj["team"].(string)
		ts, hasTS := obj["timestamp"].(float64)
		if id == "" || kind != EventGoal || !hasSide || !hasTS {
			slog.Warn("dropping incomplete event entry", "game", gameID, "index", i)
			continue
		}
		events = append(events, GameEvent{
			ID:        id,
			Kind:      EventGoal,
			Side:      side(stringField(obj, "team")),
			ScorerID:  stringField(obj, "scorerId"),
			AssistID:  stringField(obj, "assistId"),
			Timestamp: int64(ts),
		})
	}
	return events
}

// SanitizeSavedLineups parses the savedLineups record. Templates need a
// non-blank name; entries need a player id. Template locations only ever
// take the ad-hoc bench/field values.
func SanitizeSavedLineups(data []byte) ([]SavedLineup, error) {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse saved lineups record: %w", err)
	}

	lineups := make([]SavedLineup, 0, len(raw))
	for i, entry := range raw {
		obj, ok := entry.(map[string]any)
		if !ok {
			slog.Warn("dropping malformed saved lineup", "index", i)
			continue
		}
		name := stringField(obj, "name")
		if name == "" {
			slog.Warn("dropping saved lineup without name", "index", i)
			continue
		}

		var entries []SavedLineupEntry
		if arr, ok := obj["entries"].([]any); ok {
			entries = make([]SavedLineupEntry, 0, len(arr))
			for j, e := range arr {
				eobj, ok := e.(map[string]any)
				if !ok {
					slog.Warn("dropping malformed saved lineup entry", "lineup", name, "index", j)
					continue
				}
				playerID := stringField(eobj, "playerId")
				if playerID == "" {
					slog.Warn("dropping saved lineup entry without player id", "lineup", name, "index", j)
					continue
				}
				entries = append(entries, SavedLineupEntry{
					PlayerID: playerID,
					Location: rosterLocation(stringField(eobj, "location")),
					Position: positionField(eobj, "position"),
				})
			}
		}
		if entries == nil {
			entries = []SavedLineupEntry{}
		}
		lineups = append(lineups, SavedLineup{Name: name, Entries: entries})
	}
	return lineups, nil
}

// SanitizeGameHistory parses the gameHistory record. Non-string and blank
// entries are dropped from both lists.
func SanitizeGameHistory(data []byte) (GameHistory, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return GameHistory{}, fmt.Errorf("parse game history record: %w", err)
	}
	return GameHistory{
		Seasons:      stringList(raw["seasons"]),
		Competitions: stringList(raw["competitions"]),
	}, nil
}

func stringList(raw any) []string {
	out := []string{}
	arr, ok := raw.([]any)
	if !ok {
		return out
	}
	for _, v := range arr {
		s, ok := v.(string)
		if !ok || s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Field coercion helpers. Wrong-typed or absent fields yield the zero value
// for their class: "" / 0 / false / nil.

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func intField(obj map[string]any, key string) int {
	f, _ := obj[key].(float64)
	return int(f)
}

func boolField(obj map[string]any, key string) bool {
	b, _ := obj[key].(bool)
	return b
}

func millisField(obj map[string]any, key string) *int64 {
	f, ok := obj[key].(float64)
	if !ok {
		return nil
	}
	ms := int64(f)
	return &ms
}

func positionField(obj map[string]any, key string) *Position {
	pos, ok := obj[key].(map[string]any)
	if !ok {
		return nil
	}
	x, okX := pos["x"].(float64)
	y, okY := pos["y"].(float64)
	if !okX || !okY {
		return nil
	}
	return &Position{X: x, Y: y}
}

func rosterLocation(s string) Location {
	switch Location(s) {
	case LocationBench, LocationField:
		return Location(s)
	default:
		return LocationBench
	}
}

func lineupLocation(s string) Location {
	switch Location(s) {
	case LocationBench, LocationField, LocationInactive:
		return Location(s)
	default:
		return LocationBench
	}
}

func side(s string) Side {
	switch Side(s) {
	case SideHome, SideAway:
		return Side(s)
	default:
		return SideHome
	}
}

func timerStatus(s string) TimerStatus {
	switch TimerStatus(s) {
	case TimerStopped, TimerRunning:
		return TimerStatus(s)
	default:
		return TimerStopped
	}
}
