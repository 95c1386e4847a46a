// Package main provides the shopkeep CLI, a single-user record keeper for
// contact directories and bookstore inventories backed by a local key-value
// store.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// Exit codes: 1 for user errors (bad input, not found, no session),
// 2 for system errors (storage, config).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "shopkeep:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps sentinel errors to user errors; anything else is a system
// error.
func exitCode(err error) int {
	for _, userErr := range []error{
		types.ErrValidation,
		types.ErrNotFound,
		types.ErrNoSession,
		types.ErrDuplicateUsername,
		types.ErrInvalidCredentials,
		types.ErrInsufficientStock,
		types.ErrCategoryInUse,
		types.ErrBackupParse,
		types.ErrBackupSchema,
	} {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}
