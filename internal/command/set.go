// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/confkit/internal/config"
	"github.com/tfctl/confkit/internal/log"
	"github.com/tfctl/confkit/internal/meta"
	"github.com/tfctl/confkit/internal/output"
)

// ErrAssignment is returned for an argument that is not key=value.
var ErrAssignment = errors.New("expected key=value")

// setCommandAction is the action handler for the "set" subcommand.
func setCommandAction(ctx context.Context, cmd *cli.Command) error {
	log.Debugf("Executing action for set %v", cmd.Args().Slice())

	if !cmd.Args().Present() {
		return fmt.Errorf("%w, got nothing", ErrAssignment)
	}

	c, err := OpenConfig(cmd)
	if err != nil {
		return err
	}
	return bulkSet(cmd, c, cmd.Args().Slice(), cmd.Bool("strict"))
}

// ParseAssignments turns key=value arguments into update entries, keeping
// their order. Values stay text; the field types parse them.
func ParseAssignments(args []string) ([]config.Entry, error) {
	entries := make([]config.Entry, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w, got %q", ErrAssignment, arg)
		}
		entries = append(entries, config.Entry{Key: key, Value: value})
	}
	return entries, nil
}

// bulkSet applies key=value arguments through the update protocol and
// saves. Unknown keys are reported and skipped. A rejected value is skipped
// too unless strict, where nothing is applied.
func bulkSet(cmd *cli.Command, c *config.Config, args []string, strict bool) error {
	entries, err := ParseAssignments(args)
	if err != nil {
		return err
	}

	unknown := false
	for _, e := range entries {
		if _, err := c.Field(e.Key); err != nil {
			fmt.Fprintf(errWriter(cmd), "%v, ignored\n", err)
			unknown = true
		}
	}

	return c.With(func(c *config.Config) error {
		hadError, err := c.Update(entries, strict)
		if err != nil {
			return err
		}
		if hadError || unknown {
			output.Notice(errWriter(cmd), BinaryName)
		}
		return nil
	})
}

// setCommandBuilder constructs the cli.Command for "set".
func setCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "set fields from key=value pairs",
		UsageText: BinaryName + " set [--strict] key=value [key=value ...]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail without changing anything when a value is invalid",
				Value: false,
			},
		},
		Action: setCommandAction,
	}
}
