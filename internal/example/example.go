// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package example

import (
	"os"
	"path/filepath"

	"github.com/tfctl/confkit/internal/config"
	"github.com/tfctl/confkit/internal/fieldtype"
)

// Version of the persisted layout. Bump it when a field changes meaning.
const Version = 1

// WallColors is reused for every room, so each instance is independent.
func WallColors() *config.Schema {
	return config.NewSchema("WallColors").
		Field("east", fieldtype.RGB{255, 0, 0},
			config.Hint("The color of the eastern wall, where the sun rises")).
		Field("west", fieldtype.RGB{0, 255, 0},
			config.Hint("The color of the western wall, where the cowboys ride")).
		Field("north", fieldtype.RGB{0, 0, 255},
			config.Hint("The color of the northern wall, where the snow falls")).
		Field("south", fieldtype.RGB{0, 0, 0},
			config.Hint("The color of the southern wall, where the ice creams"))
}

func Colors() *config.Schema {
	walls := WallColors()
	castle := walls.MustNew(map[string]any{
		"east":  "#808080",
		"west":  "#808080",
		"north": "#606060",
		"south": "#606060",
	})

	return config.NewSchema("Colors").
		Doc("The colors of your favorite places").
		Field("light", fieldtype.RGB{255, 255, 255}, config.Hint("The color of your lights")).
		Field("walls", walls, config.Hint("The colors of the walls of your secret place")).
		Field("castle", castle, config.Hint("The colors of the walls of your castle"))
}

// Root returns a fresh root schema persisted at DefaultFile.
func Root() *config.Schema {
	return config.NewSchema("Config").
		File(DefaultFile()).
		Version(Version).
		Field("age", 3).
		Field("name", "Archibald", config.Hint("Your name")).
		Field("documents", ".", config.As(fieldtype.Path),
			config.Hint("The path to your documents folder")).
		Field("bald", true, config.Hint("Are you bald?")).
		Field("nicknames", []string{}, config.Hint("What friends call you")).
		Field("colors", Colors(), config.Hint("The colors around you"))
}

// DefaultFile is config.json under the user config directory, falling back
// to the working directory when there is none.
func DefaultFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return config.DefaultFile
	}
	return filepath.Join(dir, "confkit", config.DefaultFile)
}

// FancyName is the name followed by an epithet that depends on baldness.
func FancyName(c *config.Config) string {
	name, _ := c.Get("name")
	bald, _ := c.Get("bald")
	if b, ok := bald.(bool); ok && b {
		return name.(string) + " the Bald"
	}
	return name.(string) + " the Hirsute"
}
