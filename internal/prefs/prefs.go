// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// FileName is looked up in the user config directory.
const FileName = "confkit.yaml"

// Type is the in-memory form of the preferences file.
//
// Fields:
//   - Source: absolute path of the YAML file loaded, empty when none.
//   - Namespace: optional command name preferred in lookups, so
//     "list.sort" wins over "sort" while running list.
//   - Data: raw key/value tree unmarshaled from YAML.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Prefs holds the preferences loaded by Load.
var Prefs Type

// Load reads the preferences file and populates Prefs. A missing file is not
// an error; Prefs is then empty.
func Load(namespace string) (Type, error) {
	Prefs = Type{Namespace: namespace}

	path, err := File()
	if err != nil {
		return Prefs, err
	}
	if path == "" {
		return Prefs, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Prefs, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Prefs, fmt.Errorf("parsing %s: %w", path, err)
	}

	Prefs.Source = path
	Prefs.Data = data
	return Prefs, nil
}

// GetString returns the string value for the given dotted key path. If the key
// is not found and a single defaultValue is provided, the default is returned.
// Returns an error if the value exists but is not a string.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := Prefs.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}
	return s, nil
}

// GetInt returns the integer value for the given dotted key path.
func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := Prefs.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	// YAML numbers may be unmarshaled as int/float64 depending on content.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, errors.New("value is not an int")
	}
}

// get traverses the preferences tree using a dotted key path. If Namespace is
// set, the namespaced key is tried first, then the bare key.
func (p *Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if p.Namespace != "" {
		candidateKeys = []string{p.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		var current interface{} = p.Data

		success := true
		for _, key := range strings.Split(key, ".") {
			m, ok := current.(map[string]interface{})
			if !ok {
				success = false
				break
			}
			current, ok = m[key]
			if !ok {
				success = false
				break
			}
		}

		if success {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

// File returns the absolute path of the preferences file. CONFKIT_CLI_FILE
// names it explicitly and must then exist. Otherwise FileName in the OS user
// config directory is used when present. An empty path means there is none.
func File() (string, error) {
	if cfgPath := os.Getenv("CONFKIT_CLI_FILE"); cfgPath != "" {
		fileInfo, err := os.Stat(cfgPath)
		if err != nil {
			return "", fmt.Errorf("preferences file not found at CONFKIT_CLI_FILE path: %s", cfgPath)
		}
		if fileInfo.IsDir() {
			return "", fmt.Errorf("CONFKIT_CLI_FILE points to a directory: %s", cfgPath)
		}
		log.Debugf("using preferences from CONFKIT_CLI_FILE: %s", cfgPath)
		return filepath.Abs(cfgPath)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", nil
	}

	file := filepath.Join(dir, FileName)
	if fileInfo, err := os.Stat(file); err == nil && !fileInfo.IsDir() {
		log.Debugf("using preferences file: %s", file)
		return file, nil
	}

	return "", nil
}

// GetStringSlice returns the list at the given dotted key path. A single
// string is a list of one.
func GetStringSlice(key string) ([]string, error) {
	val, err := Prefs.get(key)
	if err != nil {
		return nil, err
	}

	switch v := val.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s: list item %v is not a string", key, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.New("value is not a list")
	}
}
