// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package fieldtype defines how a configuration field's value is validated,
// read from text or decoded JSON, and written back to JSON.
//
// A Type is a small stateless (or parametrized) strategy. For every value v
// with t.Validate(v), decoding the JSON round trip of t.Encode(v) yields a
// value equal to v that validates again.
//
// Built-ins:
//   - Any, Bool, Int, Float, String: primitives, read from text the way a
//     command line would (strconv)
//   - Color: RGB triples persisted as "#rrggbb", read from "#RRGGBB" or "#RGB"
//   - Path: any string, no filesystem checks
//   - Native, ListOf, MapOf, TupleOf: declared Go containers, read from
//     literal-only HCL expressions or coerced from decoded JSON
package fieldtype
