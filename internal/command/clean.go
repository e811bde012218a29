// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/confkit/internal/log"
	"github.com/tfctl/confkit/internal/meta"
	"github.com/tfctl/confkit/internal/output"
)

// cleanCommandAction loads and saves the file again, which drops unknown
// keys and rejected values and normalizes the layout.
func cleanCommandAction(ctx context.Context, cmd *cli.Command) error {
	log.Debugf("Executing action for clean")

	c, err := OpenConfig(cmd)
	if err != nil {
		return err
	}
	if err := c.Save(); err != nil {
		return err
	}

	if c.HadErrors() {
		output.Notice(errWriter(cmd), BinaryName)
	}
	fmt.Fprintf(errWriter(cmd), "%s cleaned\n", c.Path())
	return nil
}

func cleanCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "clean",
		Usage:     "rewrite the file without unknown or invalid entries",
		UsageText: BinaryName + " clean",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: cleanCommandAction,
	}
}
