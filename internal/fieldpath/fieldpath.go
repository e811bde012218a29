// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fieldpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Sep separates the segments of a dotted path.
const Sep = "."

// ErrEmptySegment is returned for paths like "colors..east" or "".
var ErrEmptySegment = errors.New("empty path segment")

// Path is a parsed dotted path. Each segment names a field of the group
// reached by the previous segments.
type Path []string

// Parse splits a dotted path into segments. Surrounding whitespace is
// ignored; empty segments are an error.
func Parse(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptySegment
	}
	parts := strings.Split(s, Sep)
	for i, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w at position %d in %q", ErrEmptySegment, i, s)
		}
	}
	return Path(parts), nil
}

// MustParse is Parse for constant paths.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String joins the segments back into dotted form.
func (p Path) String() string {
	return strings.Join(p, Sep)
}

// Head returns the first segment and the remaining path.
func (p Path) Head() (string, Path) {
	if len(p) == 0 {
		return "", nil
	}
	return p[0], p[1:]
}

// Leaf returns the last segment.
func (p Path) Leaf() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Parent returns every segment but the last.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// IsNested reports whether the path reaches into a nested group.
func (p Path) IsNested() bool {
	return len(p) > 1
}

// Join appends a segment, returning a new Path.
func (p Path) Join(segment string) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, segment)
}

// gjsonPath escapes each segment so field names containing gjson syntax
// characters are matched literally.
func (p Path) gjsonPath() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = gjson.Escape(s)
	}
	return strings.Join(parts, Sep)
}

// Lookup finds the value at p inside a JSON document. An empty path returns
// the whole document.
func Lookup(doc []byte, p Path) gjson.Result {
	if len(p) == 0 {
		return gjson.ParseBytes(doc)
	}
	return gjson.GetBytes(doc, p.gjsonPath())
}
