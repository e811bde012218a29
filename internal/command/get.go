// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/confkit/internal/log"
	"github.com/tfctl/confkit/internal/meta"
)

// getCommandAction prints the value at a dotted path. Text is printed as
// is, anything else in its JSON form.
func getCommandAction(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	log.Debugf("Executing action for get %q", path)

	if path == "" {
		return fmt.Errorf("missing field path")
	}

	c, err := OpenConfig(cmd)
	if err != nil {
		return err
	}

	f, err := c.Field(path)
	if err != nil {
		return err
	}
	v, err := c.Get(path)
	if err != nil {
		return err
	}

	w := writer(cmd)
	enc := f.Type.Encode(v)
	if s, ok := enc.(string); ok {
		_, err = fmt.Fprintln(w, s)
		return err
	}

	e := json.NewEncoder(w)
	e.SetEscapeHTML(false)
	return e.Encode(enc)
}

func getCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print one value",
		UsageText: BinaryName + " get <path>",
		Metadata: map[string]any{
			"meta": meta,
		},
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "path"},
		},
		Action: getCommandAction,
	}
}
