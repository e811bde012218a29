// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tfctl/confkit/internal/config"
	"github.com/tfctl/confkit/internal/prefs"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// the root schema being edited, loaded preferences, context and the starting
// working directory.
type Meta struct {
	Args        []string
	Schema      *config.Schema
	Prefs       prefs.Type
	Context     context.Context
	StartingDir string

	// Farewell, when set, is printed after a completed editing session.
	Farewell func(*config.Config) string
}
