// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fieldtype

type pathType struct{}

// Path is a filesystem path. Nothing is checked against the filesystem; the
// type only tells editors to treat the value as a path.
var Path Type = pathType{}

func (pathType) Name() string { return "path" }

func (pathType) Validate(value any) bool {
	_, ok := value.(string)
	return ok
}

func (pathType) Parse(text string) (any, error) { return text, nil }

func (t pathType) Decode(raw any) (any, error) {
	if s, ok := raw.(string); ok {
		return s, nil
	}
	return nil, parseError(t, raw, ErrShape)
}

func (pathType) Encode(value any) any { return value }
