// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRows() []map[string]interface{} {
	return []map[string]interface{}{
		{"path": "age", "field": "age", "type": "int", "value": 3, "hint": ""},
		{"path": "bald", "field": "bald", "type": "bool", "value": true, "hint": "Are you bald?"},
		{"path": "colors", "field": "colors", "type": "Colors", "hint": "The colors around you"},
		{"path": "colors.light", "field": "  light", "type": "color", "value": "#ffffff", "hint": "The color of your lights"},
		{"path": "colors.walls.east", "field": "    east", "type": "color", "value": "#ff0000", "hint": "The color of the east wall"},
		{"path": "height", "field": "height", "type": "float", "value": 1.75, "hint": ""},
		{"path": "nicknames", "field": "nicknames", "type": "list[string]", "value": []interface{}{"Archie", "Baldy"}, "hint": ""},
	}
}

func paths(rows []map[string]interface{}) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r["path"].(string))
	}
	return out
}

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []Filter
	}{
		{
			name: "empty",
			spec: "",
			want: nil,
		},
		{
			name: "single",
			spec: "type=color",
			want: []Filter{{Key: "type", Operand: "=", Value: "color"}},
		},
		{
			name: "negated",
			spec: "type!^list",
			want: []Filter{{Key: "type", Negate: true, Operand: "^", Value: "list"}},
		},
		{
			name: "several with blanks",
			spec: "type=color, ,value>3",
			want: []Filter{
				{Key: "type", Operand: "=", Value: "color"},
				{Key: "value", Operand: ">", Value: "3"},
			},
		},
		{
			name: "empty target",
			spec: "hint=",
			want: []Filter{{Key: "hint", Operand: "="}},
		},
		{
			name: "invalid skipped",
			spec: "type,=color,path^colors",
			want: []Filter{{Key: "path", Operand: "^", Value: "colors"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildFilters(tt.spec))
		})
	}
}

func TestBuildFilters_Delimiter(t *testing.T) {
	t.Setenv("CONFKIT_FILTER_DELIM", ";")

	got := BuildFilters("hint@a, b;type=color")
	require.Len(t, got, 2)
	assert.Equal(t, "a, b", got[0].Value)
	assert.Equal(t, "color", got[1].Value)
}

func TestFilterDataset(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []string
	}{
		{name: "no filter", spec: "", want: []string{"age", "bald", "colors", "colors.light", "colors.walls.east", "height", "nicknames"}},
		{name: "exact", spec: "type=color", want: []string{"colors.light", "colors.walls.east"}},
		{name: "not exact", spec: "type!=color,path!^colors", want: []string{"age", "bald", "height", "nicknames"}},
		{name: "case insensitive", spec: "type~colors", want: []string{"colors"}},
		{name: "prefix", spec: "path^colors.", want: []string{"colors.light", "colors.walls.east"}},
		{name: "regex", spec: "hint/wall$", want: []string{"colors.walls.east"}},
		{name: "substring", spec: "hint@bald", want: []string{"bald"}},
		{name: "numeric range", spec: "value>1,value<4", want: []string{"age", "height"}},
		{name: "numeric less", spec: "value<2,value>0", want: []string{"height"}},
		{name: "numeric equal", spec: "value=3", want: []string{"age"}},
		{name: "bool", spec: "value=true", want: []string{"bald"}},
		{name: "list membership", spec: "value@Baldy", want: []string{"nicknames"}},
		{name: "list not member", spec: "type^list,value!@Baldy", want: nil},
		{name: "groups have no value", spec: "value!=nothing,type~colors", want: nil},
		{name: "unknown key ignored", spec: "shoe=44,type=float", want: []string{"height"}},
		{name: "bad regex", spec: "hint/([", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDataset(testRows(), tt.spec)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, paths(got))
		})
	}
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{3, 3, true},
		{int64(-2), -2, true},
		{uint8(7), 7, true},
		{float32(1.5), 1.5, true},
		{1.75, 1.75, true},
		{"3", 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := toFloat64(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.InDelta(t, tt.want, got, 0.0001, "%v", tt.in)
	}
}
