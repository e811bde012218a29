// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/confkit/internal/log"
	"github.com/tfctl/confkit/internal/meta"
	"github.com/tfctl/confkit/internal/output"
)

// showCommandAction prints the persisted document, or the part at a dotted
// path. Before the first save the document that would be written is shown.
func showCommandAction(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	log.Debugf("Executing action for show %q", path)

	c, err := OpenConfig(cmd)
	if err != nil {
		return err
	}

	doc, err := c.Raw()
	if err != nil {
		return err
	}

	if st, err := os.Stat(c.Path()); err == nil {
		fmt.Fprintln(errWriter(cmd), output.Header(c.Path(), st.Size(), st.ModTime(), c.Enciphered()))
	} else {
		fmt.Fprintf(errWriter(cmd), "%s, not saved yet\n", c.Path())
		if doc, err = jsonBytes(c.Persistable()); err != nil {
			return err
		}
	}

	return output.Show(doc, path, cmd.String("output"), cmd.Bool("color"), writer(cmd))
}

func showCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print the saved configuration",
		UsageText: BinaryName + " show [path] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "path"},
		},
		Flags: []cli.Flag{
			NameSpacedValueChainFlagFromConfigFile("show", meta.Prefs.Source, &cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "enable colored JSON output",
				Value:   false,
			}),
			NewOutputFlag("show", meta.Prefs.Source),
		},
		Action: showCommandAction,
	}
}
