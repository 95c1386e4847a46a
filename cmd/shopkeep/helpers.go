// Shared helpers for shopkeep CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/shopkeep/internal/kv"
	"github.com/mesh-intelligence/shopkeep/internal/master"
	"github.com/mesh-intelligence/shopkeep/internal/session"
	"github.com/mesh-intelligence/shopkeep/internal/store"
	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// env bundles the attached storage and the session manager for one command
// invocation. The caller must defer env.close().
type env struct {
	kv   *kv.Store
	rec  *master.Record
	sess *session.Manager
}

// openEnv resolves the directories, attaches the key-value store, and wires
// the master record and session manager on top of it.
func openEnv() (*env, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	kvStore, err := kv.Open(types.Config{Backend: defaultBackend, DataDir: dataDir})
	if err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return &env{
		kv:   kvStore,
		rec:  master.New(kvStore),
		sess: session.NewManager(configDir),
	}, nil
}

func (e *env) close() {
	if err := e.kv.Close(); err != nil {
		logger.Warn("closing store", zap.Error(err))
	}
}

// openStore requires an active session and opens the working set for the
// logged-in user.
func (e *env) openStore() (*store.Store, error) {
	sess, err := e.sess.Require()
	if err != nil {
		return nil, err
	}
	return store.Open(e.rec, sess.UserID, store.Options{Logger: logger})
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseID parses a positional id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", types.ErrValidation, arg)
	}
	return id, nil
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// requireYes gates destructive commands behind an explicit --yes flag.
func requireYes(yes bool, what string) error {
	if !yes {
		return fmt.Errorf("%w: %s is destructive, pass --yes to confirm", types.ErrValidation, what)
	}
	return nil
}
