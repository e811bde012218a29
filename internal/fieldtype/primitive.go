// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fieldtype

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Primitive types. Their JSON form is the value itself.
var (
	Bool   Type = boolType{}
	Int    Type = intType{}
	Float  Type = floatType{}
	String Type = stringType{}
)

type boolType struct{}

func (boolType) Name() string { return "bool" }

func (boolType) Validate(value any) bool {
	_, ok := value.(bool)
	return ok
}

func (t boolType) Parse(text string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	}
	return nil, parseError(t, text, nil)
}

func (t boolType) Decode(raw any) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		return t.Parse(v)
	}
	return nil, parseError(t, raw, ErrShape)
}

func (boolType) Encode(value any) any { return value }

type intType struct{}

func (intType) Name() string { return "int" }

func (intType) Validate(value any) bool {
	_, ok := value.(int)
	return ok
}

func (t intType) Parse(text string) (any, error) {
	i, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return nil, parseError(t, text, err)
	}
	return i, nil
}

func (t intType) Decode(raw any) (any, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case float32:
		return t.Decode(float64(v))
	case float64:
		// JSON numbers arrive as float64; only integral ones are ints.
		// 1<<63 is the first float64 past MaxInt64.
		if v != math.Trunc(v) || math.IsInf(v, 0) || v >= 1<<63 || v < math.MinInt64 {
			return nil, parseError(t, raw, fmt.Errorf("%v is not an integer", v))
		}
		return int(v), nil
	case json.Number:
		return t.Parse(v.String())
	case string:
		return t.Parse(v)
	}
	return nil, parseError(t, raw, ErrShape)
}

func (intType) Encode(value any) any { return value }

type floatType struct{}

func (floatType) Name() string { return "float" }

func (floatType) Validate(value any) bool {
	_, ok := value.(float64)
	return ok
}

func (t floatType) Parse(text string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil, parseError(t, text, err)
	}
	return f, nil
}

func (t floatType) Decode(raw any) (any, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return t.Parse(v.String())
	case string:
		return t.Parse(v)
	}
	return nil, parseError(t, raw, ErrShape)
}

func (floatType) Encode(value any) any { return value }

type stringType struct{}

func (stringType) Name() string { return "string" }

func (stringType) Validate(value any) bool {
	_, ok := value.(string)
	return ok
}

func (stringType) Parse(text string) (any, error) { return text, nil }

// Decode accepts scalars and formats them, so a hand edited file holding
// name: 42 still loads as "42".
func (t stringType) Decode(raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	}
	return nil, parseError(t, raw, ErrShape)
}

func (stringType) Encode(value any) any { return value }
