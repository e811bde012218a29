// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/tfctl/confkit/internal/fieldtype"
)

// castle builds a fresh three level schema tree persisted under a temp dir.
func castle(t *testing.T) *Schema {
	t.Helper()

	walls := NewSchema("WallColors").
		Field("north", fieldtype.RGB{255, 255, 255}).
		Field("east", fieldtype.RGB{255, 0, 0}).
		Field("south", fieldtype.RGB{0, 255, 0}).
		Field("west", fieldtype.RGB{0, 0, 255})

	colors := NewSchema("Colors").
		Field("light", fieldtype.RGB{255, 255, 0}, Hint("Lamp color")).
		Field("walls", walls)

	s := NewSchema("Root").
		File(filepath.Join(t.TempDir(), "config.json")).
		Field("age", 3).
		Field("name", "Archibald", Hint("Your name")).
		Field("bald", true).
		Field("height", 1.75).
		Field("documents", ".", As(fieldtype.Path)).
		Field("tags", []string{"tall"}).
		Field("colors", colors)

	t.Cleanup(func() { forget(s) })
	return s
}

// forget drops s from the process registry so a test can open it again the
// way a new process would.
func forget(s *Schema) {
	openMu.Lock()
	defer openMu.Unlock()
	delete(opened, s)
}
