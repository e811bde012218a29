// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/confkit/internal/fieldtype"
	"github.com/tfctl/confkit/internal/obfuscate"
)

func TestOpen_MissingFile(t *testing.T) {
	s := castle(t)

	c, err := Open(s)
	require.NoError(t, err)

	assert.Equal(t, s.FilePath(), c.Path())
	assert.False(t, c.HadErrors())
	assert.NoFileExists(t, c.Path())

	raw, err := c.Raw()
	assert.NoError(t, err)
	assert.Nil(t, raw)

	v, _ := c.Get("name")
	assert.Equal(t, "Archibald", v)
}

func TestOpen_Singleton(t *testing.T) {
	s := castle(t)

	a, err := Open(s)
	require.NoError(t, err)
	b, err := Open(s, WithPath("/ignored/elsewhere.json"), WithStrict(true))
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, s.FilePath(), b.Path())

	require.NoError(t, a.Set("age", 10))
	v, _ := b.Get("age")
	assert.Equal(t, 10, v)

	// Another root schema gets its own instance.
	other, err := Open(castle(t))
	require.NoError(t, err)
	assert.NotSame(t, a, other)
}

func TestOpen_Concurrent(t *testing.T) {
	s := castle(t)

	var wg sync.WaitGroup
	got := make([]*Config, 8)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = MustOpen(s)
		}()
	}
	wg.Wait()

	for _, c := range got {
		assert.Same(t, got[0], c)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	s := castle(t)

	c, err := Open(s)
	require.NoError(t, err)
	require.NoError(t, c.Set("age", 41))
	require.NoError(t, c.Set("colors.walls.east", fieldtype.RGB{18, 52, 86}))
	require.NoError(t, c.Set("tags", `["a", "b"]`))
	require.NoError(t, c.Set("height", 2))
	require.NoError(t, c.Save())

	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"age\": 41,\n")
	assert.Contains(t, string(data), `"east": "#123456"`)
	assert.Contains(t, string(data), `"__version__": 1`)
	assert.True(t, bytes.HasSuffix(data, []byte("}\n")))

	info, err := os.Stat(c.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	forget(s)
	c2, err := Open(s)
	require.NoError(t, err)
	assert.NotSame(t, c, c2)

	v, _ := c2.Get("age")
	assert.Equal(t, 41, v)
	v, _ = c2.Get("colors.walls.east")
	assert.Equal(t, fieldtype.RGB{18, 52, 86}, v)
	v, _ = c2.Get("tags")
	assert.Equal(t, []string{"a", "b"}, v)
	v, _ = c2.Get("height")
	assert.Equal(t, float64(2), v)
	assert.Equal(t, c.Persistable(), c2.Persistable())
}

func TestSave_SortedKeys(t *testing.T) {
	c, err := Open(castle(t))
	require.NoError(t, err)
	require.NoError(t, c.Save())

	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)

	order := []string{`"__version__"`, `"age"`, `"bald"`, `"colors"`, `"documents"`, `"height"`, `"name"`, `"tags"`}
	last := -1
	for _, k := range order {
		i := bytes.Index(data, []byte(k))
		require.Greater(t, i, last, k)
		last = i
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	s := castle(t)
	path := filepath.Join(t.TempDir(), "deep", "er", "config.json")

	c, err := Open(s, WithPath(path))
	require.NoError(t, err)
	require.NoError(t, c.Save())
	assert.FileExists(t, path)
}

func TestLoad_UnknownFieldDropped(t *testing.T) {
	s := castle(t)
	writeFile(t, s.FilePath(), `{"__version__": 1, "age": 7, "shoe_size": 44, "colors": {"hue": 1}}`)

	c, err := Open(s, WithStrict(true))
	require.NoError(t, err)

	v, _ := c.Get("age")
	assert.Equal(t, 7, v)

	require.NoError(t, c.Save())
	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "shoe_size")
	assert.NotContains(t, string(data), "hue")
}

func TestLoad_VersionDiscard(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    int
	}{
		{"older", `1`, 3},
		{"string", `"2"`, 3},
		{"matching", `2`, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := castle(t).Version(2)
			writeFile(t, s.FilePath(), `{"__version__": `+tt.version+`, "age": 99, "name": "Bob"}`)

			c, err := Open(s)
			require.NoError(t, err)

			v, _ := c.Get("age")
			assert.Equal(t, tt.want, v)
		})
	}

	t.Run("missing_tag", func(t *testing.T) {
		s := castle(t).Version(2)
		writeFile(t, s.FilePath(), `{"age": 99}`)

		c, err := Open(s)
		require.NoError(t, err)
		v, _ := c.Get("age")
		assert.Equal(t, 99, v)
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"empty", "", false},
		{"whitespace", " \n", false},
		{"garbage", "{not json", true},
		{"array", "[1, 2]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := castle(t)
			writeFile(t, s.FilePath(), tt.content)

			_, err := Open(s)
			if tt.wantErr {
				assert.Error(t, err)
				// A failed open can be retried.
				writeFile(t, s.FilePath(), "{}")
				_, err = Open(s)
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad_Reporter(t *testing.T) {
	s := castle(t)
	writeFile(t, s.FilePath(), `{"age": "old", "bald": "maybe", "name": "Bob"}`)

	var rejected []string
	c, err := Open(s, WithReporter(func(e *ValidationError) {
		rejected = append(rejected, e.Field+":"+e.Got())
	}))
	require.NoError(t, err)

	assert.True(t, c.HadErrors())
	assert.Equal(t, []string{"age:string", "bald:string"}, rejected)

	v, _ := c.Get("name")
	assert.Equal(t, "Bob", v)
}

func TestLoad_NestedReporter(t *testing.T) {
	s := castle(t)
	writeFile(t, s.FilePath(), `{"colors": {"light": "yellow", "walls": {"east": "#000"}}}`)

	var rejected []string
	c, err := Open(s, WithReporter(func(e *ValidationError) {
		rejected = append(rejected, e.Field+":"+e.Got())
	}))
	require.NoError(t, err)

	assert.True(t, c.HadErrors())
	assert.Equal(t, []string{"colors.light:string"}, rejected)

	v, _ := c.Get("colors.walls.east")
	assert.Equal(t, fieldtype.RGB{0, 0, 0}, v)
	v, _ = c.Get("colors.light")
	assert.Equal(t, fieldtype.RGB{255, 255, 0}, v)
}

func TestLoad_LargeIntegers(t *testing.T) {
	s := castle(t)
	c, err := Open(s)
	require.NoError(t, err)

	require.NoError(t, c.Set("age", 1<<53+1))
	require.NoError(t, c.Save())
	forget(s)

	c, err = Open(s)
	require.NoError(t, err)
	assert.False(t, c.HadErrors())
	v, _ := c.Get("age")
	assert.Equal(t, 1<<53+1, v)

	forget(s)
	writeFile(t, s.FilePath(), `{"age": 9223372036854775807}`)
	c, err = Open(s)
	require.NoError(t, err)
	v, _ = c.Get("age")
	assert.Equal(t, math.MaxInt64, v)
}

func TestLoad_Strict(t *testing.T) {
	s := castle(t)
	writeFile(t, s.FilePath(), `{"age": "old"}`)

	_, err := Open(s, WithStrict(true))
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCipher(t *testing.T) {
	key := []byte("hunter2")

	t.Run("schema_key", func(t *testing.T) {
		s := castle(t).XORKey(key)

		c, err := Open(s)
		require.NoError(t, err)
		assert.True(t, c.Enciphered())
		require.NoError(t, c.Set("name", "Secret"))
		require.NoError(t, c.Save())

		data, err := os.ReadFile(c.Path())
		require.NoError(t, err)
		assert.NotContains(t, string(data), "Secret")

		plain := obfuscate.XOR(data, key)
		assert.True(t, json.Valid(plain))
		assert.NotContains(t, string(plain), "\n")

		raw, err := c.Raw()
		require.NoError(t, err)
		assert.Equal(t, plain, raw)

		forget(s)
		c2, err := Open(s)
		require.NoError(t, err)
		v, _ := c2.Get("name")
		assert.Equal(t, "Secret", v)
	})

	t.Run("instance_key", func(t *testing.T) {
		s := castle(t)
		writeFile(t, s.FilePath(), string(obfuscate.XOR([]byte(`{"age": 5}`), key)))

		c, err := Open(s, WithKey(key))
		require.NoError(t, err)
		v, _ := c.Get("age")
		assert.Equal(t, 5, v)
	})

	t.Run("wrong_key", func(t *testing.T) {
		s := castle(t)
		writeFile(t, s.FilePath(), string(obfuscate.XOR([]byte(`{"age": 5}`), key)))

		_, err := Open(s, WithKey([]byte("nope")))
		assert.Error(t, err)
	})
}

func TestReset(t *testing.T) {
	s := castle(t)

	c, err := Open(s)
	require.NoError(t, err)
	require.NoError(t, c.Set("age", 50))
	require.NoError(t, c.Set("colors.walls.east", "#000"))
	require.NoError(t, c.Save())

	require.NoError(t, c.Reset())
	assert.NoFileExists(t, c.Path())

	v, _ := c.Get("age")
	assert.Equal(t, 3, v)
	v, _ = c.Get("colors.walls.east")
	assert.Equal(t, fieldtype.RGB{255, 0, 0}, v)

	// Resetting with no file is fine.
	assert.NoError(t, c.Reset())

	defaults, err := c.Defaults()
	require.NoError(t, err)
	assert.Equal(t, defaults, c.Persistable())
}

func TestWith(t *testing.T) {
	t.Run("saves", func(t *testing.T) {
		c, err := Open(castle(t))
		require.NoError(t, err)

		err = c.With(func(c *Config) error {
			return c.Set("age", 21)
		})
		require.NoError(t, err)
		assertSavedAge(t, c, 21)
	})

	t.Run("saves_on_error", func(t *testing.T) {
		c, err := Open(castle(t))
		require.NoError(t, err)

		boom := errors.New("boom")
		err = c.With(func(c *Config) error {
			_ = c.Set("age", 22)
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assertSavedAge(t, c, 22)
	})

	t.Run("saves_on_panic", func(t *testing.T) {
		c, err := Open(castle(t))
		require.NoError(t, err)

		assert.PanicsWithValue(t, "boom", func() {
			_ = c.With(func(c *Config) error {
				_ = c.Set("age", 23)
				panic("boom")
			})
		})
		assertSavedAge(t, c, 23)
	})

	t.Run("joins_save_error", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "sub")

		c, err := Open(castle(t), WithPath(filepath.Join(blocker, "config.json")))
		require.NoError(t, err)
		writeFile(t, blocker, "x")

		boom := errors.New("boom")
		err = c.With(func(*Config) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "creating configuration directory")
	})
}

func TestInfoAt(t *testing.T) {
	c, err := Open(castle(t))
	require.NoError(t, err)

	infos, err := c.InfoAt("colors.walls")
	require.NoError(t, err)
	require.Len(t, infos, 4)
	assert.Equal(t, "east", infos[0].Field.Name)

	root, err := c.InfoAt("")
	require.NoError(t, err)
	assert.Len(t, root, 7)

	_, err = c.InfoAt("age")
	assert.ErrorIs(t, err, ErrNotGroup)
}

func assertSavedAge(t *testing.T, c *Config, want int) {
	t.Helper()
	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, float64(want), doc["age"])
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
