// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"sort"

	apex "github.com/apex/log"

	"github.com/tfctl/confkit/internal/fieldpath"
	"github.com/tfctl/confkit/internal/log"
)

// Entry is one (key, raw value) pair of a bulk update. Keys may be dotted
// paths into nested groups.
type Entry struct {
	Key   string
	Value any
}

// Reporter receives every field rejected by a non-strict update.
type Reporter func(*ValidationError)

// staged is a converted value waiting to be applied.
type staged struct {
	path  fieldpath.Path
	value any
}

// Update runs entries through the update protocol in slice order. Unknown
// keys are skipped silently. A value is accepted as is when it validates,
// converted otherwise. With strict set the first rejection is returned as a
// *ValidationError and nothing from the batch is applied. Without it every
// rejection is logged, the field keeps its value and the remaining entries
// are applied; hadError then reports that at least one field was rejected.
func (g *Group) Update(entries []Entry, strict bool) (hadError bool, err error) {
	return g.update(entries, strict, "", nil)
}

// UpdateMap is Update over a map, applied in key order.
func (g *Group) UpdateMap(m map[string]any, strict bool) (bool, error) {
	return g.Update(SortedEntries(m), strict)
}

// SortedEntries turns a map into entries ordered by key.
func SortedEntries(m map[string]any) []Entry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Value: m[k]}
	}
	return entries
}

// update is the update protocol. prefix is the path of g below the root,
// used to name rejected nested fields.
func (g *Group) update(entries []Entry, strict bool, prefix string, report Reporter) (bool, error) {
	batch := make([]staged, 0, len(entries))
	hadError := false

	for _, e := range entries {
		p, err := fieldpath.Parse(e.Key)
		if err != nil {
			log.Tracef("update: skipping key %q", e.Key)
			continue
		}
		if head, _ := p.Head(); IsReserved(head) {
			log.Tracef("update: skipping reserved key %q", e.Key)
			continue
		}
		name := p.String()
		if prefix != "" {
			name = prefix + "." + name
		}

		_, f, err := g.resolve(p)
		if err != nil {
			if errors.Is(err, ErrUnknownField) || errors.Is(err, ErrNotGroup) {
				log.Debugf("update: ignoring undeclared key %s", p)
				continue
			}
			return hadError, err
		}

		var v any
		if st, ok := f.Type.(subType); ok && isGroupInput(e.Value) {
			// Rejected nested fields are reported under their full path.
			var nestedErr bool
			v, nestedErr, err = st.decodeReport(e.Value, strict, name, report)
			hadError = hadError || nestedErr
		} else {
			v, err = convert(f, e.Value, strict)
		}
		if err != nil {
			verr := &ValidationError{Field: name, Value: e.Value, Expected: f.Type.Name(), Err: err}
			if strict {
				return true, verr
			}
			hadError = true
			log.WithFields(apex.Fields{
				"field": verr.Field,
				"got":   verr.Got(),
				"want":  verr.Expected,
			}).Warn("invalid value ignored")
			if report != nil {
				report(verr)
			}
			continue
		}
		batch = append(batch, staged{path: p, value: v})
	}

	// Paths are resolved again so an earlier entry replacing a whole group
	// is seen by later entries addressing its leaves.
	for _, s := range batch {
		target, f, err := g.resolve(s.path)
		if err != nil {
			return hadError, err
		}
		target.values[f.Name] = s.value
	}
	return hadError, nil
}

// isGroupInput reports whether raw is an object or JSON text a nested group
// is decoded from.
func isGroupInput(raw any) bool {
	switch raw.(type) {
	case map[string]any, string:
		return true
	}
	return false
}
