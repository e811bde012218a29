// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/confkit/internal/config"
	"github.com/tfctl/confkit/internal/output"
)

// NewFileFlag constructs the --file flag naming the configuration file. The
// schema's own path is the default.
func NewFileFlag(schema *config.Schema) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "configuration file to edit",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CONFKIT_FILE"),
		),
		Value: schema.FilePath(),
	}
}

// NewPassphraseFlag constructs the --passphrase flag. When set, the file is
// enciphered with a key derived from it. "-" asks for it on the terminal.
func NewPassphraseFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "passphrase",
		Aliases: []string{"p"},
		Usage:   "passphrase the configuration file is enciphered with, - to prompt",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CONFKIT_PASSPHRASE"),
		),
	}
}

// NewTableFlags returns the flags shaping table output, each backed by the
// preferences file under the ns namespace.
func NewTableFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:  "filter",
			Usage: "comma-separated list of row filters, e.g. type=color",
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.IntFlag{
			Name:  "padding",
			Usage: "spaces between table columns",
			Value: 2,
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of columns to sort the rows by",
			Validator: func(value string) error {
				return FlagValidators(value, SortValidator)
			},
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		}),
	}
}

// NewOutputFlag constructs the --output flag of show.
func NewOutputFlag(ns string, path string) *cli.StringFlag {
	return NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format, one of json, yaml or raw",
		Value:   output.Formats[0],
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	})
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain. An empty path adds none.
func NameSpacedValueChainFlagFromConfigFile[F cli.Flag](ns string, path string, flag F) F {
	if path == "" {
		return flag
	}

	chain := sourcesOf(flag)
	if chain == nil {
		return flag
	}

	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Names()[0], altsrc.StringSourcer(path))
		chain.Chain = append(chain.Chain, src)
	}

	src := yaml.YAML(flag.Names()[0], altsrc.StringSourcer(path))
	chain.Chain = append(chain.Chain, src)

	return flag
}

// sourcesOf returns the Sources chain of the flag kinds used here.
func sourcesOf(flag cli.Flag) *cli.ValueSourceChain {
	switch f := flag.(type) {
	case *cli.StringFlag:
		return &f.Sources
	case *cli.BoolFlag:
		return &f.Sources
	case *cli.IntFlag:
		return &f.Sources
	}
	return nil
}
