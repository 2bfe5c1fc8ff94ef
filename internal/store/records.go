package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/holloway/touchline/internal/team"
)

// Load reads every record class, runs it through its sanitizer and
// assembles the application snapshot. A record that fails to parse as a
// whole is reset: the row is deleted and the class keeps its default value,
// so the application always starts from a usable state.
func (s *Store) Load(ctx context.Context) (*team.State, error) {
	state := team.NewState()

	for _, class := range team.AllRecordClasses {
		value, ok, err := s.readRecord(ctx, class)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		if err := applyRecord(state, class, []byte(value)); err != nil {
			slog.Warn("resetting unparsable record", "key", class, "error", err)
			if err := s.deleteRecord(ctx, class); err != nil {
				return nil, err
			}
		}
	}

	return state, nil
}

// Commit implements engine.CommitHook: it writes the dirty record classes
// through in a single transaction, so one mutation is one durable write.
func (s *Store) Commit(ctx context.Context, state *team.State, dirty []team.RecordClass) error {
	if len(dirty) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("commit records: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	for _, class := range dirty {
		value, err := marshalRecord(state, class)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO records (key, value)
			VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, string(class), value)
		if err != nil {
			return fmt.Errorf("write record %s: %w", class, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit records: %w", err)
	}
	return nil
}

// readRecord fetches one record document. The second return is false when
// the record does not exist.
func (s *Store) readRecord(ctx context.Context, class team.RecordClass) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM records WHERE key = ?
	`, string(class)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read record %s: %w", class, err)
	}
	return value, true, nil
}

// deleteRecord clears one record row. Used when a stored document is
// unparsable and must be discarded.
func (s *Store) deleteRecord(ctx context.Context, class team.RecordClass) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, string(class)); err != nil {
		return fmt.Errorf("delete record %s: %w", class, err)
	}
	return nil
}

// applyRecord sanitizes one raw document into its slot on the snapshot.
// An error means the whole document was unparsable; field-level repair
// happens inside the sanitizers and is not an error.
func applyRecord(state *team.State, class team.RecordClass, data []byte) error {
	switch class {
	case team.RecordTeamName:
		name, err := team.SanitizeTeamField(data)
		if err != nil {
			return err
		}
		state.TeamName = name
	case team.RecordTeamLogo:
		logo, err := team.SanitizeTeamField(data)
		if err != nil {
			return err
		}
		state.TeamLogo = logo
	case team.RecordPlayers:
		players, err := team.SanitizePlayers(data)
		if err != nil {
			return err
		}
		state.Players = players
	case team.RecordGames:
		games, err := team.SanitizeGames(data)
		if err != nil {
			return err
		}
		state.Games = games
	case team.RecordSavedLineups:
		lineups, err := team.SanitizeSavedLineups(data)
		if err != nil {
			return err
		}
		state.SavedLineups = lineups
	case team.RecordGameHistory:
		history, err := team.SanitizeGameHistory(data)
		if err != nil {
			return err
		}
		state.History = history
	default:
		return fmt.Errorf("unknown record class %q", class)
	}
	return nil
}

// marshalRecord serializes one record class from the snapshot to its JSON
// document form.
func marshalRecord(state *team.State, class team.RecordClass) (string, error) {
	var v any
	switch class {
	case team.RecordTeamName:
		v = state.TeamName
	case team.RecordTeamLogo:
		v = state.TeamLogo
	case team.RecordPlayers:
		v = state.Players
	case team.RecordGames:
		v = state.Games
	case team.RecordSavedLineups:
		v = state.SavedLineups
	case team.RecordGameHistory:
		v = state.History
	default:
		return "", fmt.Errorf("unknown record class %q", class)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal record %s: %w", class, err)
	}
	return string(data), nil
}
