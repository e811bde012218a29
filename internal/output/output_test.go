// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/confkit/internal/config"
	"github.com/tfctl/confkit/internal/fieldtype"
	"github.com/tfctl/confkit/internal/prefs"
)

const testDoc = `{"__version__": 1, "age": 3, "colors": {"light": "#ffff00", "walls": {"east": "#ff0000"}}, "name": "Archibald", "tags": ["a", "b"]}`

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"name": "zebra", "count": 3, "type": "int"},
		{"name": "alpha", "count": 1.0, "type": "color"},
		{"name": "Beta", "count": 2, "type": "bool"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{
			name:      "ascending by name",
			spec:      "name",
			wantOrder: []string{"alpha", "Beta", "zebra"},
		},
		{
			name:      "descending by name",
			spec:      "-name",
			wantOrder: []string{"zebra", "Beta", "alpha"},
		},
		{
			name:      "mixed numbers by count",
			spec:      "count",
			wantOrder: []string{"alpha", "Beta", "zebra"},
		},
		{
			name:      "descending by count",
			spec:      "-count",
			wantOrder: []string{"zebra", "Beta", "alpha"},
		},
		{
			name:      "case sensitive",
			spec:      "!name",
			wantOrder: []string{"Beta", "alpha", "zebra"},
		},
		{
			name:      "multiple fields",
			spec:      "type, name",
			wantOrder: []string{"Beta", "alpha", "zebra"},
		},
		{
			name:      "empty spec",
			spec:      "",
			wantOrder: []string{"zebra", "alpha", "Beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expectedName := range tt.wantOrder {
				assert.Equal(t, expectedName, data[i]["name"], "at index %d", i)
			}
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{name: "string", value: "hello", want: "hello"},
		{name: "int", value: 42, want: "42"},
		{name: "zero int", value: 0, want: "0"},
		{name: "float64", value: 42.5, want: "42.5"},
		{name: "integral float64", value: 2.0, want: "2"},
		{name: "bool false", value: false, want: "false"},
		{name: "nil default", value: nil, want: ""},
		{name: "nil custom", value: nil, emptyVal: "-", want: "-"},
		{name: "empty string custom", value: "", emptyVal: "N/A", want: "N/A"},
		{name: "empty slice", value: []string{}, emptyVal: "-", want: "-"},
		{name: "slice", value: []string{"a", "b"}, want: `["a","b"]`},
		{name: "map", value: map[string]interface{}{"key": "value"}, want: `{"key":"value"}`},
		{name: "stringer", value: fieldtype.RGB{1, 2, 3}, want: "#010203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func testGroup(t *testing.T) *config.Group {
	t.Helper()

	walls := config.NewSchema("WallColors").
		Field("east", fieldtype.RGB{255, 0, 0})
	colors := config.NewSchema("Colors").
		Field("light", fieldtype.RGB{255, 255, 0}, config.Hint("Lamp color")).
		Field("walls", walls)
	root := config.NewSchema("Root").
		Field("age", 3).
		Field("name", "Archibald", config.Hint("Your name")).
		Field("colors", colors)

	g, err := root.New(nil, true)
	require.NoError(t, err)
	return g
}

func TestFieldRows(t *testing.T) {
	rows := FieldRows(testGroup(t).Info(), "")
	require.Len(t, rows, 6)

	var paths, fields []string
	for _, r := range rows {
		paths = append(paths, r["path"].(string))
		fields = append(fields, r[ColField].(string))
	}

	assert.Equal(t, []string{"age", "colors", "colors.light", "colors.walls", "colors.walls.east", "name"}, paths)
	assert.Equal(t, []string{"age", "colors", "  light", "  walls", "    east", "name"}, fields)

	assert.Equal(t, 3, rows[0][ColValue])
	assert.Equal(t, "int", rows[0][ColType])
	assert.Equal(t, "Colors", rows[1][ColType])
	assert.NotContains(t, rows[1], ColValue)
	assert.Equal(t, "#ffff00", rows[2][ColValue])
	assert.Equal(t, "Lamp color", rows[2][ColHint])
	assert.Equal(t, "Your name", rows[5][ColHint])
}

func TestTableWriter(t *testing.T) {
	rows := FieldRows(testGroup(t).Info(), "")

	tests := []struct {
		name      string
		rows      []map[string]interface{}
		titles    bool
		header    string
		checkFunc func(*testing.T, string)
	}{
		{
			name: "empty result set writes nothing",
			rows: nil,
			checkFunc: func(t *testing.T, out string) {
				assert.Empty(t, out)
			},
		},
		{
			name: "rows",
			rows: rows,
			checkFunc: func(t *testing.T, out string) {
				assert.Contains(t, out, "Archibald")
				assert.Contains(t, out, "#ff0000")
				assert.Contains(t, out, "Your name")
				assert.NotContains(t, out, "hint")
			},
		},
		{
			name:   "titles and header",
			rows:   rows,
			titles: true,
			header: "/tmp/config.json",
			checkFunc: func(t *testing.T, out string) {
				lines := strings.Split(out, "\n")
				assert.Contains(t, lines[0], "/tmp/config.json")
				assert.Contains(t, out, "hint")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)

			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "color", Value: false},
					&cli.BoolFlag{Name: "titles", Value: tt.titles},
					&cli.IntFlag{Name: "padding", Value: 2},
				},
			}
			cmd.Metadata = make(map[string]interface{})
			if tt.header != "" {
				cmd.Metadata["header"] = tt.header
			}

			TableWriter(tt.rows, Columns, cmd, buf)

			tt.checkFunc(t, buf.String())
		})
	}
}

func TestTableWriter_Width(t *testing.T) {
	saved := prefs.Prefs
	prefs.Prefs = prefs.Type{Namespace: "list", Data: map[string]interface{}{
		"list": map[string]interface{}{"width": 6},
	}}
	t.Cleanup(func() { prefs.Prefs = saved })

	buf := new(bytes.Buffer)
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "color"},
			&cli.BoolFlag{Name: "titles"},
			&cli.IntFlag{Name: "padding", Value: 2},
		},
	}
	TableWriter(FieldRows(testGroup(t).Info(), ""), Columns, cmd, buf)

	out := buf.String()
	assert.Contains(t, out, "Archi…")
	assert.NotContains(t, out, "Archibald")
	assert.Contains(t, out, "Your …")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 0))
	assert.Equal(t, "hello", truncate("hello", 5))
	assert.Equal(t, "hel…", truncate("hello", 4))
	assert.Equal(t, "héllo", truncate("héllo", 1))
}

func TestGetColors(t *testing.T) {
	header, even, odd := getColors("colors")

	assert.NotNil(t, header)
	assert.NotNil(t, even)
	assert.NotNil(t, odd)
}

func TestShow(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		format  string
		want    string
		wantErr bool
	}{
		{
			name:   "json leaf",
			path:   "colors.walls.east",
			format: "json",
			want:   "\"#ff0000\"\n",
		},
		{
			name:   "json object",
			path:   "colors.walls",
			format: "json",
			want:   "{\n    \"east\": \"#ff0000\"\n}\n",
		},
		{
			name:   "raw",
			path:   "tags",
			format: "raw",
			want:   "[\"a\", \"b\"]\n",
		},
		{
			name:   "yaml",
			path:   "colors",
			format: "yaml",
			want:   "light: '#ffff00'\nwalls:\n  east: '#ff0000'\n",
		},
		{
			name:    "missing",
			path:    "colors.roof",
			format:  "json",
			wantErr: true,
		},
		{
			name:    "bad path",
			path:    "colors..walls",
			format:  "json",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)

			err := Show([]byte(testDoc), tt.path, tt.format, false, buf)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestShow_WholeDocument(t *testing.T) {
	buf := new(bytes.Buffer)

	require.NoError(t, Show([]byte(testDoc), "", "json", false, buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{\n    \"__version__\": 1,"))
	assert.Less(t, strings.Index(out, `"age"`), strings.Index(out, `"colors"`))
}

func TestHeader(t *testing.T) {
	h := Header("/tmp/config.json", 1200, time.Now().Add(-3*time.Minute), false)
	assert.Equal(t, "/tmp/config.json, 1.2 kB, modified 3 minutes ago", h)

	h = Header("/tmp/config.json", 12, time.Now(), true)
	assert.True(t, strings.HasSuffix(h, ", enciphered"))
}

func TestNotice(t *testing.T) {
	buf := new(bytes.Buffer)
	Notice(buf, "confkit")
	assert.Contains(t, buf.String(), `Run "confkit" to review`)
}
