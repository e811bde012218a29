// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/confkit/internal/differ"
	"github.com/tfctl/confkit/internal/log"
	"github.com/tfctl/confkit/internal/meta"
)

// diffCommandAction shows how the current values differ from the defaults.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	log.Debugf("Executing action for diff")

	c, err := OpenConfig(cmd)
	if err != nil {
		return err
	}

	defaults, err := c.Defaults()
	if err != nil {
		return err
	}
	before, err := jsonBytes(defaults)
	if err != nil {
		return err
	}
	after, err := jsonBytes(c.Persistable())
	if err != nil {
		return err
	}

	changed, err := differ.Diff(before, after, differ.Options{
		Color:  cmd.Bool("color"),
		Ignore: differ.ParseIgnore(cmd.String("ignore")),
	}, writer(cmd))
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(errWriter(cmd), "no changes from the defaults")
	}
	return nil
}

// jsonBytes encodes v without HTML escaping.
func jsonBytes(v any) ([]byte, error) {
	var buf bytes.Buffer
	e := json.NewEncoder(&buf)
	e.SetEscapeHTML(false)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare current values with the defaults",
		UsageText: BinaryName + " diff [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NameSpacedValueChainFlagFromConfigFile("diff", meta.Prefs.Source, &cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "enable colored diff output",
				Value:   false,
			}),
			&cli.StringFlag{
				Name:  "ignore",
				Usage: "comma-separated list of top level fields to leave out",
			},
		},
		Action: diffCommandAction,
	}
}
