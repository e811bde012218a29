// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strconv"

	"github.com/samber/oops"
	"github.com/tidwall/gjson"

	"github.com/tfctl/confkit/internal/log"
	"github.com/tfctl/confkit/internal/obfuscate"
	"github.com/tfctl/confkit/internal/util"
)

// VersionKey holds the schema version in a persisted root document.
const VersionKey = "__version__"

// readRaw returns the deciphered file contents. A missing file reads as nil.
func (c *Config) readRaw() ([]byte, error) {
	data, found, err := util.ReadIfExists(c.path)
	if err != nil {
		return nil, oops.In("config").With("path", c.path).Wrapf(err, "reading configuration")
	}
	if !found {
		log.Debugf("%s does not exist, using defaults", c.path)
		return nil, nil
	}
	if len(c.key) > 0 {
		log.Debugf("deciphering %s with key %s", c.path, obfuscate.Abbrev(c.key))
		data = obfuscate.XOR(data, c.key)
	}
	return data, nil
}

// load builds a fresh default tree and overlays the persisted document
// through the update protocol. A document carrying a different version is
// dropped whole.
func (c *Config) load() error {
	root, err := c.schema.defaults()
	if err != nil {
		return err
	}
	c.root = root
	c.hadError = false

	data, err := c.readRaw()
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if !gjson.ValidBytes(data) {
		return oops.In("config").With("path", c.path).Errorf("%s is not valid JSON", c.path)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return oops.In("config").With("path", c.path).Errorf("%s does not hold a JSON object", c.path)
	}

	if v := doc.Get(VersionKey); v.Exists() {
		if v.Type != gjson.Number || v.Int() != int64(c.schema.version) {
			log.Infof("%s has version %s, want %d; using defaults", c.path, v.Raw, c.schema.version)
			return nil
		}
	}

	var entries []Entry
	doc.ForEach(func(key, value gjson.Result) bool {
		if key.String() != VersionKey {
			entries = append(entries, Entry{Key: key.String(), Value: rawValue(value)})
		}
		return true
	})

	hadError, err := c.root.update(entries, c.strict, "", c.report)
	if err != nil {
		return oops.In("config").With("path", c.path).Wrapf(err, "loading configuration")
	}
	c.hadError = hadError
	log.Debugf("loaded %d keys from %s", len(entries), c.path)
	return nil
}

// encode renders the persisted form. Plain files are indented with sorted
// keys; enciphered files are compact.
func (c *Config) encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if len(c.key) == 0 {
		enc.SetIndent("", "    ")
	}
	if err := enc.Encode(c.persistable()); err != nil {
		return nil, oops.In("config").With("path", c.path).Wrapf(err, "encoding configuration")
	}

	data := buf.Bytes()
	if len(c.key) > 0 {
		data = obfuscate.XOR(bytes.TrimRight(data, "\n"), c.key)
	}
	return data, nil
}

// save truncates and rewrites the file.
func (c *Config) save() error {
	data, err := c.encode()
	if err != nil {
		return err
	}
	if err := util.EnsureParentDir(c.path); err != nil {
		return oops.In("config").With("path", c.path).Wrapf(err, "creating configuration directory")
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return oops.In("config").With("path", c.path).Wrapf(err, "writing configuration")
	}
	log.Infof("saved %s (%d bytes)", c.path, len(data))
	return nil
}

func (c *Config) persistable() map[string]any {
	doc := c.root.Persistable()
	doc[VersionKey] = c.schema.version
	return doc
}

// rawValue is gjson's Value except that integral numbers become int, so
// integers beyond float64 precision load unchanged.
func rawValue(r gjson.Result) any {
	switch {
	case r.Type == gjson.Number:
		if i, err := strconv.ParseInt(r.Raw, 10, 0); err == nil {
			return int(i)
		}
		return r.Float()
	case r.IsArray():
		out := []any{}
		r.ForEach(func(_, v gjson.Result) bool {
			out = append(out, rawValue(v))
			return true
		})
		return out
	case r.IsObject():
		out := map[string]any{}
		r.ForEach(func(k, v gjson.Result) bool {
			out[k.String()] = rawValue(v)
			return true
		})
		return out
	}
	return r.Value()
}
