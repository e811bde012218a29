// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"github.com/tfctl/confkit/internal/config"
	"github.com/tfctl/confkit/internal/output"
)

// Item is one field to ask for.
type Item struct {
	Path    string
	Label   string
	Type    string
	Current string
}

// Apply stores the text entered for the field at path. A returned error
// is shown to the user and the field is asked again.
type Apply func(path, text string) error

// ItemsFrom lists the leaf fields under infos, descending into nested
// groups. Current holds each value in the form a user would type it.
func ItemsFrom(infos []config.Info, prefix string) []Item {
	var items []Item
	for _, info := range infos {
		path := info.Field.Name
		if prefix != "" {
			path = prefix + "." + path
		}

		if g := info.Group(); g != nil {
			items = append(items, ItemsFrom(g.Info(), path)...)
			continue
		}

		items = append(items, Item{
			Path:    path,
			Label:   info.Field.Label(),
			Type:    info.Field.Type.Name(),
			Current: output.InterfaceToString(info.Encoded()),
		})
	}
	return items
}
