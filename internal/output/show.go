// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/confkit/internal/fieldpath"
)

// Formats accepted by Show.
var Formats = []string{"json", "yaml", "raw"}

var prettyOptions = &pretty.Options{Width: 80, Indent: "    ", SortKeys: true}

// Show writes the persisted document doc, or the part of it at path, in
// the given format. json is indented with sorted keys (colored when color
// is set), yaml is converted and raw is the value exactly as stored.
func Show(doc []byte, path string, format string, color bool, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	p, err := fieldpath.Parse(path)
	if path != "" && err != nil {
		return err
	}
	result := fieldpath.Lookup(doc, p)
	if !result.Exists() {
		return fmt.Errorf("%s: not found", path)
	}

	switch format {
	case "raw":
		_, err = fmt.Fprintln(w, result.Raw)
	case "yaml":
		var out []byte
		out, err = yaml.Marshal(result.Value())
		if err == nil {
			_, err = w.Write(out)
		}
	default:
		out := pretty.PrettyOptions([]byte(result.Raw), prettyOptions)
		if result.Type != gjson.JSON {
			out = append([]byte(result.Raw), '\n')
		}
		if color {
			out = pretty.Color(out, nil)
		}
		_, err = w.Write(out)
	}
	return err
}

// Header describes a persisted file for humans, for example
// "/home/me/config.json, 1.2 kB, modified 3 minutes ago".
func Header(path string, size int64, modTime time.Time, enciphered bool) string {
	h := fmt.Sprintf("%s, %s, modified %s", path, humanize.Bytes(uint64(size)), humanize.Time(modTime))
	if enciphered {
		h += ", enciphered"
	}
	return h
}

// Notice points the user at the interactive editor after some values were
// rejected.
func Notice(w io.Writer, binary string) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Some values were invalid and have been ignored. Run %q to review and fix them.\n", binary)
}
