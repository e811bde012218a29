// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsTerminal reports whether stdin and stdout are both terminals.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Lines asks for every item on w and reads answers from r, one per line.
// It behaves like Edit: an empty line keeps the value and a rejected value
// is asked again. End of input stops early and counts as aborted.
func Lines(r io.Reader, w io.Writer, items []Item, apply Apply) (Result, error) {
	var result Result
	in := bufio.NewReader(r)

	for i := 0; i < len(items); {
		item := items[i]
		fmt.Fprintf(w, "%s (%s) [%s]: ", item.Label, item.Type, item.Current)

		text, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return result, err
		}
		eof := errors.Is(err, io.EOF)
		text = strings.TrimRight(text, "\r\n")

		if eof && text == "" {
			fmt.Fprintln(w)
			result.Aborted = true
			return result, nil
		}

		if strings.TrimSpace(text) != "" {
			if err := apply(item.Path, text); err != nil {
				fmt.Fprintf(w, "  %v\n", err)
				if eof {
					result.Aborted = true
					return result, nil
				}
				continue
			}
			result.Changed++
		}
		i++
	}
	return result, nil
}

// Confirm asks a yes/no question. Anything but y or yes is no.
func Confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", question)
	text, _ := bufio.NewReader(r).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "y", "yes":
		return true
	}
	return false
}

// Passphrase reads a secret from the terminal without echo.
func Passphrase(w io.Writer, label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("passphrase prompt needs a terminal")
	}
	fmt.Fprintf(w, "%s: ", label)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
