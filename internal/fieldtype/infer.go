// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fieldtype

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNoInference is returned by Infer for defaults that cannot describe a
// field type on their own.
var ErrNoInference = errors.New("cannot infer a field type")

// Infer returns the type described by a default value: the primitive types
// for bool, int, float64 and string, Color for RGB, and Native of the exact Go
// type otherwise. Nil, functions, channels and maps keyed by anything other
// than strings are rejected.
func Infer(def any) (Type, error) {
	switch def.(type) {
	case nil:
		return nil, fmt.Errorf("%w from nil", ErrNoInference)
	case bool:
		return Bool, nil
	case int:
		return Int, nil
	case float64:
		return Float, nil
	case string:
		return String, nil
	case RGB:
		return Color, nil
	}

	rt := reflect.TypeOf(def)
	switch rt.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, fmt.Errorf("%w from %s", ErrNoInference, rt.Kind())
	case reflect.Map:
		if rt.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w from %s: map keys must be strings", ErrNoInference, rt)
		}
	}
	return Native(rt), nil
}
