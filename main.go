// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/confkit/internal/command"
	"github.com/tfctl/confkit/internal/config"
	"github.com/tfctl/confkit/internal/example"
	"github.com/tfctl/confkit/internal/log"
	"github.com/tfctl/confkit/internal/prefs"
	"github.com/tfctl/confkit/internal/version"
)

var ctx = context.Background()

// flagAliases maps every spelling of a flag taking a value to one name.
// Any other flag is a switch.
var flagAliases = map[string]string{
	"--file":       "file",
	"-f":           "file",
	"--passphrase": "passphrase",
	"-p":           "passphrase",
	"--output":     "output",
	"-o":           "output",
	"--sort":       "sort",
	"-s":           "sort",
	"--padding":    "padding",
	"--filter":     "filter",
	"--ignore":     "ignore",
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.String(example.Root().VersionTag()))
			return true
		}
	}
	return false
}

// namespace is the subcommand name, empty when args[1] is a flag, a group
// or an assignment.
func namespace(args []string) string {
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") && !strings.HasPrefix(args[1], "@") && !strings.Contains(args[1], "=") {
		return args[1]
	}
	return ""
}

// processSetOnly replaces the first @name argument with the arguments
// stored under name in the preferences file, namespaced by subcommand.
func processSetOnly(args []string) []string {
	removeIdx := -1
	set := ""
	for i := 1; i < len(args); i++ {
		if strings.HasPrefix(args[i], "@") {
			set = args[i][1:]
			removeIdx = i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	entries, err := prefs.GetStringSlice(set)
	if err != nil {
		log.Debugf("no argument set %q: %v", set, err)
	}
	return injectSet(append(args[:removeIdx:removeIdx], args[removeIdx+1:]...), entries, removeIdx)
}

// injectSet inserts entries, each split on whitespace, at insertIdx.
func injectSet(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// deduplicateFlags keeps only the last occurrence of each flag, so a flag
// given on the command line overrides one injected from an argument set.
// Positional arguments keep their order.
func deduplicateFlags(args []string) []string {
	type token struct {
		key  string
		args []string
	}

	var tokens []token
	for i := 0; i < len(args); i++ {
		a := args[i]
		if i == 0 || !strings.HasPrefix(a, "-") || a == "-" || a == "--" {
			tokens = append(tokens, token{args: []string{a}})
			continue
		}

		name, _, hasValue := strings.Cut(a, "=")
		key := strings.TrimLeft(name, "-")
		if canon, ok := flagAliases[name]; ok {
			key = canon
			if !hasValue && i+1 < len(args) {
				tokens = append(tokens, token{key: key, args: []string{a, args[i+1]}})
				i++
				continue
			}
		}
		tokens = append(tokens, token{key: key, args: []string{a}})
	}

	last := map[string]int{}
	for i, t := range tokens {
		if t.key != "" {
			last[t.key] = i
		}
	}

	out := make([]string, 0, len(args))
	for i, t := range tokens {
		if t.key != "" && last[t.key] != i {
			continue
		}
		out = append(out, t.args...)
	}
	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string, schema *config.Schema) int {
	app, err := command.InitApp(ctx, args, schema,
		command.WithFarewell(func(c *config.Config) string {
			return "Goodbye, " + example.FancyName(c) + "."
		}))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	// If --help appears anywhere, skip argument processing and let the CLI
	// handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound && namespace(args) != "completion" {
		if _, err := prefs.Load(namespace(args)); err != nil {
			log.Debugf("prefs: %v", err)
		}
		args = deduplicateFlags(processSetOnly(args))
		log.Debugf("args after set processing: args=%v", args)
	}

	return initAndRunApp(args, example.Root())
}
