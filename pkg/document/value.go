// Package document models arbitrary JSON documents as an explicit tagged
// union with insertion-ordered objects, and provides the path addressing,
// canonical equality, and copy-on-write mutation primitives that the diff,
// review, and merge engines are built on.
//
// A document.Value is immutable by convention: every mutation helper returns
// a new snapshot and leaves its input untouched, so callers can hold on to
// earlier snapshots (for example the original document a declined field
// reverts to) without defensive copying.
package document

import "encoding/json"

// Kind identifies the JSON type a Value holds.
type Kind int

// The six JSON kinds. The zero Value is Null.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// Value is a single JSON value. The zero Value is JSON null.
//
// Numbers keep their source literal (via json.Number) so that decoding and
// re-encoding a document never changes how a price or a GTIN is spelled.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  *Object
}

// Null returns the JSON null value.
func Null() Value {
	return Value{}
}

// Bool returns a JSON boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a JSON number value from its literal form.
func Number(n json.Number) Value {
	return Value{kind: KindNumber, num: n}
}

// String returns a JSON string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array returns a JSON array value holding the given elements.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: elems}
}

// ObjectValue returns a JSON object value backed by obj.
// A nil obj yields an empty object.
func ObjectValue(obj *Object) Value {
	if obj == nil {
		obj = NewObject()
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind returns the JSON kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// BoolValue returns the boolean payload. It is only meaningful for KindBool.
func (v Value) BoolValue() bool {
	return v.b
}

// NumberValue returns the number literal. It is only meaningful for KindNumber.
func (v Value) NumberValue() json.Number {
	return v.num
}

// StringValue returns the string payload. It is only meaningful for KindString.
func (v Value) StringValue() string {
	return v.str
}

// ArrayValue returns the element slice. Callers must not mutate it.
func (v Value) ArrayValue() []Value {
	return v.arr
}

// ObjectRef returns the backing object, or nil if the value is not an object.
// Callers must not mutate the returned object; use SetAt/RemoveAt instead.
func (v Value) ObjectRef() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// IsContainer reports whether the value is an array or an object.
func (v Value) IsContainer() bool {
	return v.kind == KindArray || v.kind == KindObject
}
