package cli

import (
	"context"
	"log/slog"

	"github.com/holloway/touchline/internal/config"
	"github.com/holloway/touchline/internal/engine"
	"github.com/holloway/touchline/internal/store"
)

// app bundles one opened store with an engine over its loaded state. Every
// command opens the app, runs its intents and closes; the engine writes
// through on each mutation so there is no separate save step.
type app struct {
	store  *store.Store
	engine *engine.Engine
}

// openApp opens the database, loads and sanitizes the snapshot and wires
// the engine with the store as its commit hook. A configured team name seeds
// a database that has none yet.
func openApp(ctx context.Context, opts *RootOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	path := opts.Database
	if path == "" {
		path = cfg.DBPath
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	state, err := st.Load(ctx)
	if err != nil {
		st.Close()
		return nil, WrapExitError(ExitCommandError, "failed to load state", err)
	}

	eng := engine.New(state, st)
	if state.TeamName == "" && cfg.TeamName != "" {
		if err := eng.SetTeamName(ctx, cfg.TeamName); err != nil {
			st.Close()
			return nil, WrapExitError(ExitCommandError, "failed to seed team name", err)
		}
	}

	return &app{store: st, engine: eng}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}
