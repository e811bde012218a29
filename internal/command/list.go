// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/confkit/internal/filters"
	"github.com/tfctl/confkit/internal/log"
	"github.com/tfctl/confkit/internal/meta"
	"github.com/tfctl/confkit/internal/output"
)

// listCommandAction renders every field, nested groups indented below
// their parent, as a table.
func listCommandAction(ctx context.Context, cmd *cli.Command) error {
	log.Debugf("Executing action for list")

	c, err := OpenConfig(cmd)
	if err != nil {
		return err
	}

	rows := output.FieldRows(c.Info(), "")
	rows = filters.FilterDataset(rows, cmd.String("filter"))
	output.SortDataset(rows, cmd.String("sort"))

	if cmd.Bool("titles") {
		cmd.Metadata["header"] = c.Path()
		if st, err := os.Stat(c.Path()); err == nil {
			cmd.Metadata["header"] = output.Header(c.Path(), st.Size(), st.ModTime(), c.Enciphered())
		}
	}

	output.TableWriter(rows, output.Columns, cmd, writer(cmd))
	return nil
}

func listCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "list fields with their type, value and hint",
		UsageText: BinaryName + " list [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewTableFlags("list", meta.Prefs.Source),
		Action: listCommandAction,
	}
}
