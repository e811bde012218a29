// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/confkit/internal/config"
	"github.com/tfctl/confkit/internal/log"
	"github.com/tfctl/confkit/internal/meta"
	"github.com/tfctl/confkit/internal/obfuscate"
	"github.com/tfctl/confkit/internal/prefs"
)

// BinaryName is what users type to reach the interactive editor.
const BinaryName = "confkit"

// AppOption adjusts the metadata shared by every command.
type AppOption func(*meta.Meta)

// WithFarewell sets the line printed after a completed editing session.
func WithFarewell(f func(*config.Config) string) AppOption {
	return func(m *meta.Meta) { m.Farewell = f }
}

// InitApp builds the command tree editing the configuration declared by
// schema.
func InitApp(ctx context.Context, args []string, schema *config.Schema, opts ...AppOption) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the subcommand
	// and also the namespace used for preference lookups. It could be a flag,
	// a group or a key=value pair, none of which namespaces anything.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") && !strings.Contains(args[1], "=") {
		ns = args[1]
	}

	p, err := prefs.Load(ns)
	if err != nil {
		return nil, err
	}

	meta := meta.Meta{
		Args:        args,
		Schema:      schema,
		Prefs:       p,
		Context:     ctx,
		StartingDir: sd,
	}
	for _, opt := range opts {
		opt(&meta)
	}

	app := &cli.Command{
		Name:      BinaryName,
		Usage:     "edit " + schema.Name() + " settings",
		UsageText: BinaryName + " [group | key=value ...] [options]",
		Description: "With no arguments every field is prompted for. A group name " +
			"prompts only the fields of that group, and key=value pairs are set " +
			"directly. Values are saved on exit.",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewFileFlag(schema),
			NewPassphraseFlag(),
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       BinaryName + " version info",
				HideDefault: true,
				Local:       true,
			},
		},
		Action: rootCommandAction,
	}

	app.Commands = append(app.Commands,
		cleanCommandBuilder(meta),
		diffCommandBuilder(meta),
		getCommandBuilder(meta),
		listCommandBuilder(meta),
		resetCommandBuilder(meta),
		setCommandBuilder(meta),
		showCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// rootCommandAction prompts for every field, prompts for one group, or sets
// key=value pairs, depending on the arguments.
func rootCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	args := cmd.Args().Slice()
	log.Debugf("Executing root action for %v", args)

	c, err := OpenConfig(cmd)
	if err != nil {
		return err
	}

	switch {
	case len(args) == 0:
		return editFields(cmd, c, "")
	case len(args) == 1 && !strings.Contains(args[0], "="):
		if f, err := c.Field(args[0]); err != nil || !f.IsGroup() {
			return fmt.Errorf("%s is not a group of %s", args[0], m.Schema.Name())
		}
		return editFields(cmd, c, args[0])
	default:
		return bulkSet(cmd, c, args, false)
	}
}

// GetMeta returns the meta.Meta stored in the command's Metadata, looking at
// parents when the command itself has none. If missing or of an unexpected
// type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	for _, c := range lineage(cmd) {
		if c.Metadata == nil {
			continue
		}
		if m, ok := c.Metadata["meta"].(meta.Meta); ok {
			return m
		}
	}
	return meta.Meta{}
}

func lineage(cmd *cli.Command) []*cli.Command {
	if cmd == nil {
		return nil
	}
	return cmd.Lineage()
}

// OpenConfig opens the configuration of the command's schema, honoring the
// --file and --passphrase flags. Rejected values found while loading are
// reported on the error stream.
func OpenConfig(cmd *cli.Command) (*config.Config, error) {
	m := GetMeta(cmd)
	if m.Schema == nil {
		return nil, fmt.Errorf("no schema")
	}

	path := cmd.String("file")
	if path == "" {
		path = m.Schema.FilePath()
	}
	if !filepath.IsAbs(path) && m.StartingDir != "" && !strings.HasPrefix(path, "~") {
		path = filepath.Join(m.StartingDir, path)
	}

	opts := []config.Option{
		config.WithPath(path),
		config.WithReporter(func(e *config.ValidationError) {
			fmt.Fprintf(errWriter(cmd), "%s: %v\n", e.Field, e)
		}),
	}
	pass := cmd.String("passphrase")
	if pass == "-" {
		var err error
		if pass, err = readPassphrase(errWriter(cmd), "Passphrase"); err != nil {
			return nil, err
		}
	}
	if pass != "" {
		opts = append(opts, config.WithKey(obfuscate.KeyFromPassphrase(pass, []byte(m.Schema.Name()))))
	}

	c, err := config.Open(m.Schema, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return c, nil
}

func reader(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
