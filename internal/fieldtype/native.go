// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fieldtype

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

type nativeType struct {
	rt reflect.Type
}

// Native is a field holding a value of exactly the Go type rt, typically a
// slice or a map keyed by strings. Text is read as a literal HCL expression
// (["a", "b"], {width = 3}); decoded JSON is coerced into rt.
func Native(rt reflect.Type) Type {
	return nativeType{rt: rt}
}

// ListOf is Native for []T.
func ListOf[T any]() Type {
	return Native(reflect.TypeFor[[]T]())
}

// MapOf is Native for map[string]V.
func MapOf[V any]() Type {
	return Native(reflect.TypeFor[map[string]V]())
}

func (t nativeType) Name() string { return typeName(t.rt) }

func (t nativeType) Validate(value any) bool {
	return value != nil && reflect.TypeOf(value) == t.rt
}

func (t nativeType) Parse(text string) (any, error) {
	v, err := parseLiteral(text)
	if err != nil {
		return nil, parseError(t, text, err)
	}
	return t.coerce(v, text)
}

func (t nativeType) Decode(raw any) (any, error) {
	if s, ok := raw.(string); ok && t.rt.Kind() != reflect.String {
		return t.Parse(s)
	}
	return t.coerce(raw, raw)
}

func (t nativeType) Encode(value any) any { return value }

func (t nativeType) coerce(raw any, input any) (any, error) {
	if raw == nil {
		return nil, parseError(t, input, ErrShape)
	}
	if reflect.TypeOf(raw) == t.rt {
		return raw, nil
	}

	out := reflect.New(t.rt)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  integralHook,
		ErrorUnused: true,
		Result:      out.Interface(),
	})
	if err != nil {
		return nil, parseError(t, input, err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, parseError(t, input, err)
	}
	return out.Elem().Interface(), nil
}

// integralHook keeps mapstructure from truncating floats into integer
// kinds: only integral values pass, by the same rule as Int.
func integralHook(from, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	return Int.Decode(reflect.ValueOf(data).Float())
}

// tupleType is a fixed length sequence whose elements have their own types.
type tupleType struct {
	elems []Type
}

// TupleOf is a fixed length []any whose i-th element has type elems[i].
func TupleOf(elems ...Type) Type {
	return tupleType{elems: elems}
}

func (t tupleType) Name() string {
	names := make([]string, len(t.elems))
	for i, e := range t.elems {
		names[i] = e.Name()
	}
	return "tuple[" + strings.Join(names, ",") + "]"
}

func (t tupleType) Validate(value any) bool {
	s, ok := value.([]any)
	if !ok || len(s) != len(t.elems) {
		return false
	}
	for i, e := range t.elems {
		if !e.Validate(s[i]) {
			return false
		}
	}
	return true
}

func (t tupleType) Parse(text string) (any, error) {
	v, err := parseLiteral(text)
	if err != nil {
		return nil, parseError(t, text, err)
	}
	return t.coerce(v, text)
}

func (t tupleType) Decode(raw any) (any, error) {
	if s, ok := raw.(string); ok {
		return t.Parse(s)
	}
	return t.coerce(raw, raw)
}

func (t tupleType) Encode(value any) any {
	s, ok := value.([]any)
	if !ok || len(s) != len(t.elems) {
		return value
	}
	out := make([]any, len(s))
	for i, e := range t.elems {
		out[i] = e.Encode(s[i])
	}
	return out
}

func (t tupleType) coerce(raw any, input any) (any, error) {
	rv := reflect.ValueOf(raw)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, parseError(t, input, ErrShape)
	}
	if rv.Len() != len(t.elems) {
		return nil, parseError(t, input, fmt.Errorf("want %d elements, got %d", len(t.elems), rv.Len()))
	}

	out := make([]any, len(t.elems))
	for i, e := range t.elems {
		v, err := Convert(e, rv.Index(i).Interface())
		if err != nil {
			return nil, parseError(t, input, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseLiteral evaluates text as an HCL expression without an evaluation
// context: literals, lists and objects only. Variables and function calls
// fail with a diagnostic.
func parseLiteral(text string) (any, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(text), "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}

	return ctyToGo(val)
}

// ctyToGo converts a known cty value into plain Go values, the same shapes
// encoding/json would produce, except that integral numbers become int.
func ctyToGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return int(i), nil
			}
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := []any{}
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			e, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		return out, nil
	case ty.IsMapType() || ty.IsObjectType():
		out := map[string]any{}
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			e, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = e
		}
		return out, nil
	}

	return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}

// typeName renders a Go type the way it is shown to users.
func typeName(rt reflect.Type) string {
	if rt == nil {
		return "any"
	}
	switch rt.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.String:
		return "string"
	case reflect.Slice:
		return "list[" + typeName(rt.Elem()) + "]"
	case reflect.Array:
		return fmt.Sprintf("array[%d]%s", rt.Len(), typeName(rt.Elem()))
	case reflect.Map:
		return "map[" + typeName(rt.Elem()) + "]"
	case reflect.Interface:
		return "any"
	case reflect.Pointer:
		return typeName(rt.Elem())
	}
	if rt.Name() != "" {
		return rt.Name()
	}
	return rt.String()
}
