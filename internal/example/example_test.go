// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package example

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/confkit/internal/config"
	"github.com/tfctl/confkit/internal/fieldtype"
)

func TestRoot_Registry(t *testing.T) {
	fields, err := Root().Registry()
	require.NoError(t, err)

	types := map[string]string{}
	for _, f := range fields {
		types[f.Name] = f.Type.Name()
	}
	assert.Equal(t, map[string]string{
		"age":       "int",
		"bald":      "bool",
		"colors":    "Colors",
		"documents": "path",
		"name":      "string",
		"nicknames": "list[string]",
	}, types)
}

func TestRoot_RoomsAreIndependent(t *testing.T) {
	g, err := Root().New(nil, true)
	require.NoError(t, err)

	require.NoError(t, g.Set("colors.walls.east", "#000"))

	v, _ := g.Get("colors.walls.east")
	assert.Equal(t, fieldtype.RGB{0, 0, 0}, v)
	v, _ = g.Get("colors.castle.east")
	assert.Equal(t, fieldtype.RGB{128, 128, 128}, v)
}

func TestFancyName(t *testing.T) {
	c, err := config.Open(Root(), config.WithPath(filepath.Join(t.TempDir(), "config.json")))
	require.NoError(t, err)

	assert.Equal(t, "Archibald the Bald", FancyName(c))

	require.NoError(t, c.Set("bald", false))
	require.NoError(t, c.Set("name", "Bob"))
	assert.Equal(t, "Bob the Hirsute", FancyName(c))
}

func TestDefaultFile(t *testing.T) {
	assert.Equal(t, config.DefaultFile, filepath.Base(DefaultFile()))
}
