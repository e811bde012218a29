// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/mohae/deepcopy"

	"github.com/tfctl/confkit/internal/fieldpath"
	"github.com/tfctl/confkit/internal/fieldtype"
	"github.com/tfctl/confkit/internal/log"
)

// Group is a runtime instance of a schema: a sub configuration. Any number
// of independent groups may be built from the same schema. A Group is not
// safe for concurrent use; the root Config serializes access to its tree.
type Group struct {
	schema *Schema
	values map[string]any
}

// New builds a group holding the schema defaults overlaid with initial
// through the update protocol. With strict set, the first value that cannot
// be converted fails construction.
func (s *Schema) New(initial map[string]any, strict bool) (*Group, error) {
	g, err := s.defaults()
	if err != nil {
		return nil, err
	}
	if len(initial) > 0 {
		if _, err := g.UpdateMap(initial, strict); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// MustNew is New for static declarations; it panics on error.
func (s *Schema) MustNew(initial map[string]any) *Group {
	g, err := s.New(initial, true)
	if err != nil {
		panic(err)
	}
	return g
}

// Schema returns the schema the group was built from.
func (g *Group) Schema() *Schema {
	return g.schema
}

// Fields yields the field names in alphabetical order. The sequence reads
// the cached registry and can be ranged over any number of times.
func (g *Group) Fields() iter.Seq[string] {
	names := g.schema.Names()
	return func(yield func(string) bool) {
		for _, n := range names {
			if !yield(n) {
				return
			}
		}
	}
}

// Len returns the number of fields.
func (g *Group) Len() int {
	return len(g.schema.Names())
}

// Contains reports whether the dotted path names a declared field.
func (g *Group) Contains(path string) bool {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return false
	}
	_, _, err = g.resolve(p)
	return err == nil
}

// Get returns the value at a dotted path.
func (g *Group) Get(path string) (any, error) {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return nil, err
	}
	target, f, err := g.resolve(p)
	if err != nil {
		return nil, err
	}
	return target.values[f.Name], nil
}

// Field returns the registry entry of the field at a dotted path.
func (g *Group) Field(path string) (*Field, error) {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return nil, err
	}
	_, f, err := g.resolve(p)
	return f, err
}

// Set assigns the value at a dotted path. The value is stored as is when the
// field type validates it, converted otherwise; when both fail a
// *ValidationError is returned and the field is left unchanged.
func (g *Group) Set(path string, value any) error {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return err
	}
	target, f, err := g.resolve(p)
	if err != nil {
		return err
	}

	v, err := convert(f, value, false)
	if err != nil {
		verr := &ValidationError{Field: p.String(), Value: value, Expected: f.Type.Name(), Err: err}
		log.Debugf("set %s rejected: %v", p, verr)
		return verr
	}

	log.Tracef("set %s to %#v", p, v)
	target.values[f.Name] = v
	return nil
}

// resolve walks p down to the group owning its leaf.
func (g *Group) resolve(p fieldpath.Path) (*Group, *Field, error) {
	cur := g
	for i, seg := range p {
		f, ok := cur.schema.Lookup(seg)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownField, fieldpath.Path(p[:i+1]))
		}
		if i == len(p)-1 {
			return cur, f, nil
		}
		if !f.IsGroup() {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotGroup, fieldpath.Path(p[:i+1]))
		}
		next, ok := cur.values[seg].(*Group)
		if !ok || next == nil {
			return nil, nil, fmt.Errorf("%w: %s holds no group", ErrNotGroup, fieldpath.Path(p[:i+1]))
		}
		cur = next
	}
	return nil, nil, fmt.Errorf("%w: empty path", ErrUnknownField)
}

// convert runs a raw value through the field type: accepted as is when it
// validates, decoded otherwise.
func convert(f *Field, raw any, strict bool) (any, error) {
	if raw != nil && reflect.TypeOf(raw).Kind() == reflect.Func {
		return nil, ErrCallable
	}
	if st, ok := f.Type.(subType); ok && strict && !st.Validate(raw) {
		return st.decode(raw, true)
	}
	return fieldtype.Convert(f.Type, raw)
}

// Info is what an editor needs to render one field.
type Info struct {
	Field *Field
	Value any
}

// Group returns the nested group held by the field, or nil for leaves.
func (i Info) Group() *Group {
	g, _ := i.Value.(*Group)
	return g
}

// Encoded returns the value in its JSON form, which is also the form a
// user types it in.
func (i Info) Encoded() any {
	return i.Field.Type.Encode(i.Value)
}

// Info describes every field in alphabetical order.
func (g *Group) Info() []Info {
	fields, err := g.schema.Registry()
	if err != nil {
		return nil
	}
	out := make([]Info, 0, len(fields))
	for _, f := range fields {
		out = append(out, Info{Field: f, Value: g.values[f.Name]})
	}
	return out
}

// Persistable returns the JSON-ready form of the group: every field passed
// through its type's Encode. Nested groups become nested maps.
func (g *Group) Persistable() map[string]any {
	out := make(map[string]any, len(g.values))
	for name := range g.Fields() {
		f, _ := g.schema.Lookup(name)
		out[name] = f.Type.Encode(g.values[name])
	}
	return out
}

// Clone returns a deep, independent copy.
func (g *Group) Clone() *Group {
	c := &Group{schema: g.schema, values: make(map[string]any, len(g.values))}
	for k, v := range g.values {
		if sub, ok := v.(*Group); ok && sub != nil {
			c.values[k] = sub.Clone()
			continue
		}
		c.values[k] = deepcopy.Copy(v)
	}
	return c
}
