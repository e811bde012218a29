// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Options adjusts Diff.
type Options struct {
	// Color enables ANSI colored output.
	Color bool

	// Ignore lists top level keys left out of the comparison.
	Ignore []string
}

// Diff compares two JSON objects and writes an annotated rendering of
// before with the changes to w. It reports whether the documents differ.
func Diff(before, after []byte, opts Options, w io.Writer) (bool, error) {
	log.Debugf("diff: len(before)=%d len(after)=%d", len(before), len(after))

	if w == nil {
		w = os.Stdout
	}

	before, err := withoutKeys(before, opts.Ignore)
	if err != nil {
		return false, fmt.Errorf("failed to read left document: %w", err)
	}
	after, err = withoutKeys(after, opts.Ignore)
	if err != nil {
		return false, fmt.Errorf("failed to read right document: %w", err)
	}

	delta, err := gojsondiff.New().Compare(before, after)
	if err != nil {
		return false, fmt.Errorf("failed to compare documents: %w", err)
	}

	if !delta.Modified() {
		return false, nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(before, &jdoc); err != nil {
		return true, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       opts.Color,
	}

	diffString, err := formatter.NewAsciiFormatter(jdoc, config).Format(delta)
	if err != nil {
		return true, err
	}

	fmt.Fprint(w, diffString)
	if !strings.HasSuffix(diffString, "\n") {
		fmt.Fprintln(w)
	}
	return true, nil
}

// withoutKeys drops top level keys from a JSON object.
func withoutKeys(doc []byte, keys []string) ([]byte, error) {
	if len(keys) == 0 {
		return doc, nil
	}

	var m map[string]interface{}
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, err
	}
	for _, k := range keys {
		delete(m, k)
	}
	return json.Marshal(m)
}

// ParseIgnore splits a comma separated list of keys.
func ParseIgnore(spec string) (keys []string) {
	for key := range strings.SplitSeq(spec, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return
}
