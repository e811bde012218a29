// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/confkit/internal/config"
	"github.com/tfctl/confkit/internal/log"
	"github.com/tfctl/confkit/internal/prompt"
)

// Terminal access, replaced in tests.
var (
	interactive    = prompt.IsTerminal
	readPassphrase = prompt.Passphrase
)

// editFields prompts for every leaf field under group, the whole
// configuration when group is empty. Accepted values are saved even when the
// user stops early.
func editFields(cmd *cli.Command, c *config.Config, group string) error {
	infos, err := c.InfoAt(group)
	if err != nil {
		return err
	}
	items := prompt.ItemsFrom(infos, group)

	apply := func(path, text string) error {
		return c.Set(path, text)
	}

	return c.With(func(c *config.Config) error {
		var (
			res prompt.Result
			err error
		)
		if interactive() {
			res, err = prompt.Edit(items, apply)
		} else {
			res, err = prompt.Lines(reader(cmd), errWriter(cmd), items, apply)
		}
		if err != nil {
			return err
		}

		log.Debugf("edit %q: changed=%d aborted=%v", group, res.Changed, res.Aborted)
		fmt.Fprintf(errWriter(cmd), "%d of %d fields changed, saved to %s\n", res.Changed, len(items), c.Path())
		if m := GetMeta(cmd); m.Farewell != nil && !res.Aborted {
			fmt.Fprintln(errWriter(cmd), m.Farewell(c))
		}
		return nil
	})
}
