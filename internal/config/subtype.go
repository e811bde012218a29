// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"

	"github.com/tfctl/confkit/internal/fieldtype"
)

// subType is the field type of a nested group. Its JSON form is an object
// holding the nested fields.
type subType struct {
	schema *Schema
}

// SubConfig returns the field type of groups built from s, for explicit
// declarations with As.
func SubConfig(s *Schema) fieldtype.Type {
	return subType{schema: s}
}

func (t subType) Name() string {
	if t.schema.name == "" {
		return "SubConfig"
	}
	return t.schema.name
}

func (t subType) Validate(value any) bool {
	g, ok := value.(*Group)
	return ok && g != nil && g.schema == t.schema
}

func (t subType) Parse(text string) (any, error) {
	return t.decode(text, false)
}

func (t subType) Decode(raw any) (any, error) {
	return t.decode(raw, false)
}

// decode builds a fresh group from defaults overlaid with raw. With strict
// unset, bad nested values are warned about and left at their defaults.
func (t subType) decode(raw any, strict bool) (*Group, error) {
	g, _, err := t.decodeReport(raw, strict, "", nil)
	return g, err
}

// decodeReport is decode naming nested fields below prefix and handing
// each rejected one to report. hadError is set when a nested field was
// rejected.
func (t subType) decodeReport(raw any, strict bool, prefix string, report Reporter) (g *Group, hadError bool, err error) {
	var m map[string]any
	switch v := raw.(type) {
	case *Group:
		if v != nil && v.schema == t.schema {
			return v, false, nil
		}
		return nil, false, &fieldtype.ParseError{Type: t.Name(), Input: raw, Err: fieldtype.ErrShape}
	case string:
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			return nil, false, &fieldtype.ParseError{Type: t.Name(), Input: raw, Err: fmt.Errorf("not a JSON object: %w", err)}
		}
	case map[string]any:
		m = v
	default:
		return nil, false, &fieldtype.ParseError{Type: t.Name(), Input: raw, Err: fieldtype.ErrShape}
	}

	g, err = t.schema.defaults()
	if err != nil {
		return nil, false, &fieldtype.ParseError{Type: t.Name(), Input: raw, Err: err}
	}
	hadError, err = g.update(SortedEntries(m), strict, prefix, report)
	if err != nil {
		return nil, hadError, &fieldtype.ParseError{Type: t.Name(), Input: raw, Err: err}
	}
	return g, hadError, nil
}

func (t subType) Encode(value any) any {
	if g, ok := value.(*Group); ok && g != nil {
		return g.Persistable()
	}
	return value
}
