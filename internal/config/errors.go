// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/tfctl/confkit/internal/fieldtype"
)

var (
	// ErrUnknownField is returned by single field access for a name the
	// schema does not declare. Bulk updates skip such names silently.
	ErrUnknownField = errors.New("unknown field")

	// ErrNotGroup is returned when a dotted path goes through a field that
	// is not a nested group.
	ErrNotGroup = errors.New("not a nested group")

	// ErrCallable is returned when a function value is assigned to a field.
	ErrCallable = errors.New("cannot store a function in a field")

	// ErrReservedName is returned by schema construction for names that
	// start and end with "__".
	ErrReservedName = errors.New("reserved field name")

	// ErrInvalidName is returned for empty names and names containing the
	// path separator.
	ErrInvalidName = errors.New("invalid field name")

	// ErrDuplicateField is returned when a schema declares a name twice.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrSchemaInUse is returned when fields are declared on a schema
	// whose registry was already built.
	ErrSchemaInUse = errors.New("schema registry already built")
)

// ValidationError reports a value that could neither be accepted as is nor
// converted by the field's type. The field keeps its previous value.
type ValidationError struct {
	Field    string
	Value    any
	Expected string
	Err      error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("field %s is a %s but should be %s", e.Field, e.Got(), e.Expected)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Got names the Go shape of the rejected value.
func (e *ValidationError) Got() string {
	return fieldtype.Shape(e.Value)
}
