// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/tfctl/confkit/internal/log"
	"github.com/tfctl/confkit/internal/util"
)

// Config is the persisted root of a configuration tree. There is one per
// root schema per process, obtained with Open. All methods are safe for
// concurrent use.
type Config struct {
	mu sync.Mutex

	schema   *Schema
	root     *Group
	path     string
	key      []byte
	strict   bool
	report   Reporter
	hadError bool
}

// Option adjusts the first Open of a schema. Later Opens ignore options.
type Option func(*Config)

// WithStrict makes the initial load fail on the first invalid value instead
// of warning and keeping the default.
func WithStrict(strict bool) Option {
	return func(c *Config) { c.strict = strict }
}

// WithKey overrides the schema's XOR key for this instance.
func WithKey(key []byte) Option {
	return func(c *Config) { c.key = append([]byte(nil), key...) }
}

// WithPath overrides the schema's file path.
func WithPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.path = path
		}
	}
}

// WithReporter receives every field rejected while loading.
func WithReporter(r Reporter) Option {
	return func(c *Config) { c.report = r }
}

var (
	openMu sync.Mutex
	opened = map[*Schema]*Config{}
)

// Open returns the process-wide Config of a root schema. The first call
// builds the defaults and overlays the persisted file; every later call
// returns that same instance and ignores opts. A failed first call leaves
// nothing behind, so it can be retried.
func Open(s *Schema, opts ...Option) (*Config, error) {
	openMu.Lock()
	defer openMu.Unlock()

	if c, ok := opened[s]; ok {
		if len(opts) > 0 {
			log.Debugf("config %s already open, ignoring options", s.name)
		}
		return c, nil
	}

	c := &Config{schema: s, path: s.file, key: s.key}
	for _, opt := range opts {
		opt(c)
	}

	path, err := util.ResolvePath(c.path)
	if err != nil {
		return nil, err
	}
	c.path = path

	if err := c.load(); err != nil {
		return nil, err
	}

	opened[s] = c
	return c, nil
}

// MustOpen is Open that panics on error.
func MustOpen(s *Schema, opts ...Option) *Config {
	c, err := Open(s, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Schema returns the root schema.
func (c *Config) Schema() *Schema {
	return c.schema
}

// Path returns the absolute path of the persisted file.
func (c *Config) Path() string {
	return c.path
}

// Enciphered reports whether the file is XOR obfuscated.
func (c *Config) Enciphered() bool {
	return len(c.key) > 0
}

// HadErrors reports whether the initial load rejected any field.
func (c *Config) HadErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hadError
}

// Get returns the value at a dotted path.
func (c *Config) Get(path string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Get(path)
}

// Set assigns the value at a dotted path. See Group.Set.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Set(path, value)
}

// Field returns the registry entry of the field at a dotted path.
func (c *Config) Field(path string) (*Field, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Field(path)
}

// Update runs entries through the update protocol. See Group.Update.
func (c *Config) Update(entries []Entry, strict bool) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.update(entries, strict, "", c.report)
}

// UpdateMap is Update over a map, applied in key order.
func (c *Config) UpdateMap(m map[string]any, strict bool) (bool, error) {
	return c.Update(SortedEntries(m), strict)
}

// Fields yields the root field names in alphabetical order.
func (c *Config) Fields() iter.Seq[string] {
	names := c.schema.Names()
	return func(yield func(string) bool) {
		for _, n := range names {
			if !yield(n) {
				return
			}
		}
	}
}

// Info describes every root field.
func (c *Config) Info() []Info {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Info()
}

// InfoAt describes the fields of the nested group at path. An empty path
// is the root.
func (c *Config) InfoAt(path string) ([]Info, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if path == "" {
		return c.root.Info(), nil
	}
	v, err := c.root.Get(path)
	if err != nil {
		return nil, err
	}
	g, ok := v.(*Group)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotGroup, path)
	}
	return g.Info(), nil
}

// Persistable returns the JSON-ready document including the version tag.
func (c *Config) Persistable() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persistable()
}

// Defaults returns the JSON-ready document a fresh configuration would
// persist.
func (c *Config) Defaults() (map[string]any, error) {
	g, err := c.schema.defaults()
	if err != nil {
		return nil, err
	}
	doc := g.Persistable()
	doc[VersionKey] = c.schema.version
	return doc, nil
}

// Raw returns the persisted bytes, deciphered when a key is configured. A
// missing file returns nil.
func (c *Config) Raw() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readRaw()
}

// Save writes the configuration to its file.
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save()
}

// Reset deletes the file and puts every field, nested groups included,
// back to fresh defaults. The file is not written again until Save.
func (c *Config) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := util.RemoveIfExists(c.path); err != nil {
		return err
	}
	root, err := c.schema.defaults()
	if err != nil {
		return err
	}
	c.root = root
	c.hadError = false
	log.Infof("reset %s to defaults", c.path)
	return nil
}

// With runs fn and then saves exactly once, also when fn fails or panics.
// A save error is joined with fn's error. A panic is raised again after the
// save.
func (c *Config) With(fn func(*Config) error) (err error) {
	defer func() {
		r := recover()
		serr := c.Save()
		if r != nil {
			if serr != nil {
				log.WithError(serr).Error("saving after panic")
			}
			panic(r)
		}
		err = errors.Join(err, serr)
	}()
	return fn(c)
}
