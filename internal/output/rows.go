// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strings"

	"github.com/apex/log"

	"github.com/tfctl/confkit/internal/config"
)

// Row keys produced by FieldRows, in display order.
const (
	ColField = "field"
	ColType  = "type"
	ColValue = "value"
	ColHint  = "hint"
)

// Columns is the default column set of the list table.
var Columns = []string{ColField, ColType, ColValue, ColHint}

// maxRowDepth limits how deep FieldRows descends into nested groups.
const maxRowDepth = 16

// FieldRows flattens field infos into table rows, nested groups first as a
// row of their own and then their fields indented below it. Each row also
// carries "path", the dotted path of the field.
func FieldRows(infos []config.Info, prefix string) []map[string]interface{} {
	return fieldRowsWalker(infos, prefix, 0)
}

func fieldRowsWalker(infos []config.Info, prefix string, depth int) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(infos))

	for _, info := range infos {
		path := info.Field.Name
		if prefix != "" {
			path = prefix + "." + path
		}

		row := map[string]interface{}{
			"path":   path,
			ColField: strings.Repeat("  ", depth) + info.Field.Name,
			ColType:  info.Field.Type.Name(),
			ColHint:  info.Field.Hint,
		}

		g := info.Group()
		if g == nil {
			row[ColValue] = info.Encoded()
			rows = append(rows, row)
			continue
		}

		rows = append(rows, row)
		if depth >= maxRowDepth {
			log.Debugf("not descending into %s: too deep", path)
			continue
		}
		rows = append(rows, fieldRowsWalker(g.Info(), path, depth+1)...)
	}

	return rows
}
