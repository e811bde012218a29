// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fieldtype

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is the in-memory shape of a Color field: red, green and blue, each in
// [0, 255].
type RGB [3]int

// String renders the color in its persisted "#rrggbb" form.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

func (c RGB) valid() bool {
	for _, v := range c {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

var errColorSyntax = errors.New("want #RRGGBB or #RGB")

type colorType struct{}

// Color stores RGB values as "#rrggbb".
var Color Type = colorType{}

func (colorType) Name() string { return "color" }

func (colorType) Validate(value any) bool {
	c, ok := value.(RGB)
	return ok && c.valid()
}

// Parse reads "#RRGGBB" or the short "#RGB" form, where each digit is
// repeated ("#abc" is "#aabbcc").
func (t colorType) Parse(text string) (any, error) {
	s := strings.TrimSpace(text)
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return nil, parseError(t, text, errColorSyntax)
	}

	size := (len(s) - 1) / 3
	var c RGB
	for i := range c {
		group := s[1+size*i : 1+size*(i+1)]
		v, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			return nil, parseError(t, text, errColorSyntax)
		}
		if size == 1 {
			v *= 17
		}
		c[i] = int(v)
	}
	return c, nil
}

func (t colorType) Decode(raw any) (any, error) {
	var c RGB
	switch v := raw.(type) {
	case string:
		return t.Parse(v)
	case RGB:
		c = v
	case [3]int:
		c = RGB(v)
	case []int:
		if len(v) != 3 {
			return nil, parseError(t, raw, ErrShape)
		}
		copy(c[:], v)
	case []any:
		if len(v) != 3 {
			return nil, parseError(t, raw, ErrShape)
		}
		for i, e := range v {
			n, err := Int.Decode(e)
			if err != nil {
				return nil, parseError(t, raw, err)
			}
			c[i] = n.(int)
		}
	case []float64:
		if len(v) != 3 {
			return nil, parseError(t, raw, ErrShape)
		}
		for i, f := range v {
			if f != math.Trunc(f) {
				return nil, parseError(t, raw, ErrShape)
			}
			c[i] = int(f)
		}
	default:
		return nil, parseError(t, raw, ErrShape)
	}

	if !c.valid() {
		return nil, parseError(t, raw, fmt.Errorf("channel out of range in %v", [3]int(c)))
	}
	return c, nil
}

func (colorType) Encode(value any) any {
	if c, ok := value.(RGB); ok {
		return c.String()
	}
	return value
}
