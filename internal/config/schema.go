// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mohae/deepcopy"

	"github.com/tfctl/confkit/internal/fieldpath"
	"github.com/tfctl/confkit/internal/fieldtype"
	"github.com/tfctl/confkit/internal/log"
)

const (
	// DefaultFile is used by root schemas that never call File.
	DefaultFile = "config.json"

	// reservedAffix marks metadata names, which are never fields.
	reservedAffix = "__"
)

// Schema declares the fields of a configuration group. Build it once at
// startup with NewSchema and the chained setters; the field registry is
// computed on first use and shared by every instance.
type Schema struct {
	name    string
	doc     string
	file    string
	version int
	key     []byte

	decls []decl

	once   sync.Once
	mu     sync.RWMutex
	fields map[string]*Field
	names  []string
	err    error
}

type decl struct {
	name string
	def  any
	typ  fieldtype.Type
	hint string
}

// FieldOption adjusts a field declaration.
type FieldOption func(*decl)

// As declares the field type explicitly instead of inferring it from the
// default. The default must be valid for, or convertible to, that type.
func As(t fieldtype.Type) FieldOption {
	return func(d *decl) { d.typ = t }
}

// Hint attaches a human description shown by editors.
func Hint(hint string) FieldOption {
	return func(d *decl) { d.hint = hint }
}

// Field is one entry of a schema registry.
type Field struct {
	Name    string
	Type    fieldtype.Type
	Hint    string
	Default any

	// Sub is the schema of a nested group field, nil for leaves.
	Sub *Schema

	defGroup *Group
}

// IsGroup reports whether the field holds a nested group.
func (f *Field) IsGroup() bool {
	return f.Sub != nil
}

// Label is the hint, or the field name when there is none.
func (f *Field) Label() string {
	if f.Hint != "" {
		return f.Hint
	}
	return f.Name
}

// newDefault returns a value for a fresh instance. Containers and groups are
// copied so instances never share mutable defaults.
func (f *Field) newDefault() (any, error) {
	if f.Sub != nil {
		if f.defGroup != nil {
			return f.defGroup.Clone(), nil
		}
		return f.Sub.defaults()
	}
	return deepcopy.Copy(f.Default), nil
}

// NewSchema starts a schema declaration. Root schemas use version 1 and
// DefaultFile unless told otherwise.
func NewSchema(name string) *Schema {
	return &Schema{
		name:    name,
		file:    DefaultFile,
		version: 1,
	}
}

// Field declares a field with its default value. Declaring a field once the
// registry is built is an error returned by every later Registry call.
func (s *Schema) Field(name string, def any, opts ...FieldOption) *Schema {
	d := decl{name: name, def: def}
	for _, opt := range opts {
		opt(&d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fields != nil {
		s.err = errors.Join(s.err, fmt.Errorf("%w: cannot add %q to %s", ErrSchemaInUse, name, s.name))
		return s
	}
	s.decls = append(s.decls, d)
	return s
}

// Doc sets a description of the schema.
func (s *Schema) Doc(doc string) *Schema {
	s.doc = doc
	return s
}

// File sets where a root configuration is persisted.
func (s *Schema) File(path string) *Schema {
	s.file = path
	return s
}

// Version sets the version tag written to, and required from, the
// persisted file.
func (s *Schema) Version(v int) *Schema {
	s.version = v
	return s
}

// XORKey makes the persisted file obfuscated with key. An empty key means
// plain JSON.
func (s *Schema) XORKey(key []byte) *Schema {
	s.key = append([]byte(nil), key...)
	return s
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Description returns the text given to Doc.
func (s *Schema) Description() string { return s.doc }

// FilePath returns the persisted file path.
func (s *Schema) FilePath() string { return s.file }

// VersionTag returns the declared version.
func (s *Schema) VersionTag() int { return s.version }

// CipherKey returns the declared XOR key.
func (s *Schema) CipherKey() []byte { return s.key }

func (s *Schema) built() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fields != nil
}

// Registry returns the schema's fields sorted by name, building and caching
// the registry on first call. Build errors are returned on every call.
func (s *Schema) Registry() ([]*Field, error) {
	s.once.Do(s.build)

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*Field, len(s.names))
	for i, n := range s.names {
		out[i] = s.fields[n]
	}
	return out, nil
}

// Lookup returns the registry entry for name.
func (s *Schema) Lookup(name string) (*Field, bool) {
	if _, err := s.Registry(); err != nil {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.fields[name]
	return f, ok
}

// Names returns the field names in alphabetical order.
func (s *Schema) Names() []string {
	if _, err := s.Registry(); err != nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.names...)
}

func (s *Schema) build() {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := make(map[string]*Field, len(s.decls))
	var errs []error
	for _, d := range s.decls {
		if _, dup := fields[d.name]; dup {
			errs = append(errs, fmt.Errorf("%w: %s.%s", ErrDuplicateField, s.name, d.name))
			continue
		}
		f, err := resolveField(d)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", s.name, d.name, err))
			continue
		}
		log.Debugf("schema %s: field %s has type %s", s.name, f.Name, f.Type.Name())
		fields[d.name] = f
	}

	names := make([]string, 0, len(fields))
	for n := range fields {
		names = append(names, n)
	}
	sort.Strings(names)

	s.fields = fields
	s.names = names
	s.err = errors.Join(errs...)
}

// resolveField turns a declaration into a registry entry, inferring the type
// when none was given.
func resolveField(d decl) (*Field, error) {
	if err := checkName(d.name); err != nil {
		return nil, err
	}

	f := &Field{Name: d.name, Hint: d.hint, Type: d.typ}

	switch def := d.def.(type) {
	case *Group:
		f.Sub = def.schema
		f.defGroup = def.Clone()
	case *Schema:
		f.Sub = def
	}

	if st, ok := d.typ.(subType); ok {
		if f.Sub != nil && f.Sub != st.schema {
			return nil, fmt.Errorf("default group %s does not match type %s", f.Sub.name, st.schema.name)
		}
		f.Sub = st.schema
		_, isSchema := d.def.(*Schema)
		if d.def != nil && f.defGroup == nil && !isSchema {
			g, err := st.decode(d.def, true)
			if err != nil {
				return nil, err
			}
			f.defGroup = g
		}
	}

	if f.Sub != nil {
		f.Type = subType{schema: f.Sub}
		return f, nil
	}

	if f.Type == nil {
		t, err := fieldtype.Infer(d.def)
		if err != nil {
			return nil, err
		}
		f.Type = t
		f.Default = d.def
		return f, nil
	}

	v, err := fieldtype.Convert(f.Type, d.def)
	if err != nil {
		return nil, fmt.Errorf("default does not fit type %s: %w", f.Type.Name(), err)
	}
	f.Default = v
	return f, nil
}

func checkName(name string) error {
	switch {
	case name == "" || strings.Contains(name, fieldpath.Sep):
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case IsReserved(name):
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	return nil
}

// IsReserved reports whether name follows the metadata naming convention
// (starts and ends with "__") and therefore can never be a field.
func IsReserved(name string) bool {
	return len(name) >= 2*len(reservedAffix) &&
		strings.HasPrefix(name, reservedAffix) &&
		strings.HasSuffix(name, reservedAffix)
}

// SetDefault changes the default of a declared field. Once the registry is
// built the field type is frozen: the new default must be valid for, or
// convertible to, that type. Existing instances are not touched.
func (s *Schema) SetDefault(name string, def any) error {
	if !s.built() {
		for i := range s.decls {
			if s.decls[i].name == name {
				s.decls[i].def = def
				return nil
			}
		}
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, s.name, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.fields[name]
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, s.name, name)
	}

	if f.Sub != nil {
		st := f.Type.(subType)
		g, err := st.decode(def, true)
		if err != nil {
			return &ValidationError{Field: name, Value: def, Expected: f.Type.Name(), Err: err}
		}
		nf := *f
		nf.defGroup = g
		s.fields[name] = &nf
		return nil
	}

	v, err := fieldtype.Convert(f.Type, def)
	if err != nil {
		return &ValidationError{Field: name, Value: def, Expected: f.Type.Name(), Err: err}
	}
	nf := *f
	nf.Default = v
	s.fields[name] = &nf
	return nil
}

// Redeclare replaces a field declaration, type included. It is the only way
// to change a frozen type. Instances created earlier keep their values.
func (s *Schema) Redeclare(name string, def any, opts ...FieldOption) error {
	d := decl{name: name, def: def}
	for _, opt := range opts {
		opt(&d)
	}

	idx := -1
	for i := range s.decls {
		if s.decls[i].name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, s.name, name)
	}

	if !s.built() {
		s.decls[idx] = d
		return nil
	}

	f, err := resolveField(d)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", s.name, name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.decls[idx] = d
	s.fields[name] = f
	return nil
}

// defaults builds an instance holding every default.
func (s *Schema) defaults() (*Group, error) {
	fields, err := s.Registry()
	if err != nil {
		return nil, err
	}
	g := &Group{schema: s, values: make(map[string]any, len(fields))}
	for _, f := range fields {
		v, err := f.newDefault()
		if err != nil {
			return nil, err
		}
		g.values[f.Name] = v
	}
	return g, nil
}
