// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fieldtype

import (
	"errors"
	"fmt"
)

// Type is the validate / parse / serialize contract of one field.
type Type interface {
	// Name is the display name used in prompts, listings and warnings.
	Name() string

	// Validate reports whether value already has the in-memory shape of the
	// type. It never converts.
	Validate(value any) bool

	// Parse reads a human-typed string into the in-memory shape.
	Parse(text string) (any, error)

	// Decode converts a raw value, typically produced by JSON decoding, into
	// the in-memory shape. Strings go through Parse.
	Decode(raw any) (any, error)

	// Encode converts a valid in-memory value into something encoding/json
	// can marshal.
	Encode(value any) any
}

// ErrShape is the cause of a ParseError when the raw value has the wrong
// shape altogether (a map where a number was expected, and so on).
var ErrShape = errors.New("unexpected shape")

// ParseError reports that raw input could not be read as a given type.
type ParseError struct {
	Type  string
	Input any
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read %#v as %s: %v", e.Input, e.Type, e.Err)
	}
	return fmt.Sprintf("cannot read %#v as %s", e.Input, e.Type)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(t Type, input any, err error) *ParseError {
	return &ParseError{Type: t.Name(), Input: input, Err: err}
}

// Shape names the Go shape of a value for warnings, e.g. "string" or
// "[]interface {}".
func Shape(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}

// Convert returns value unchanged when it validates, otherwise the result of
// decoding it. The decoded value must itself validate.
func Convert(t Type, value any) (any, error) {
	if t.Validate(value) {
		return value, nil
	}
	out, err := t.Decode(value)
	if err != nil {
		return nil, err
	}
	if !t.Validate(out) {
		return nil, parseError(t, value, fmt.Errorf("decoded to %s", Shape(out)))
	}
	return out, nil
}

type anyType struct{}

// Any accepts every value as is.
var Any Type = anyType{}

func (anyType) Name() string                   { return "any" }
func (anyType) Validate(any) bool              { return true }
func (anyType) Parse(text string) (any, error) { return text, nil }
func (anyType) Decode(raw any) (any, error)    { return raw, nil }
func (anyType) Encode(value any) any           { return value }
