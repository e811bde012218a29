// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/confkit/internal/log"
	"github.com/tfctl/confkit/internal/meta"
	"github.com/tfctl/confkit/internal/prompt"
)

// resetCommandAction puts every field back to its default and saves, after
// confirmation unless --yes.
func resetCommandAction(ctx context.Context, cmd *cli.Command) error {
	log.Debugf("Executing action for reset")

	c, err := OpenConfig(cmd)
	if err != nil {
		return err
	}

	if !cmd.Bool("yes") && !prompt.Confirm(reader(cmd), errWriter(cmd), "Reset "+c.Path()+" to defaults?") {
		fmt.Fprintln(errWriter(cmd), "nothing changed")
		return nil
	}

	if err := c.Reset(); err != nil {
		return err
	}
	if err := c.Save(); err != nil {
		return err
	}
	fmt.Fprintf(errWriter(cmd), "%s reset to defaults\n", c.Path())
	return nil
}

func resetCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "reset",
		Usage:     "reset every field to its default",
		UsageText: BinaryName + " reset [--yes]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "do not ask for confirmation",
				Value:   false,
			},
		},
		Action: resetCommandAction,
	}
}
