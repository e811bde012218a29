// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects rows of the field table.
//
// Filters are key-operator-target expressions joined by a delimiter (default
// comma, override with CONFKIT_FILTER_DELIM). Keys name a row column such as
// field, path, type, value or hint.
//
// Operators, each negated with a leading !:
//
//   - = : exact match, numeric when both sides are numbers
//   - ~ : case insensitive match
//   - ^ : prefix match
//   - < : less than
//   - > : greater than
//   - @ : substring, or membership for lists and objects
//   - / : regular expression match
//
// Examples:
//
//   - "type=color" : only color fields
//   - "path^colors.walls." : fields of one nested group
//   - "hint/wall$" : hints ending in "wall"
//   - "value@tall" : lists holding "tall"
//   - "type!=int,value>1" : several filters must all match
//
// Invalid expressions are logged and skipped.
package filters
