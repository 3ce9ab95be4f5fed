package domain

import "fmt"

// Kind enumerates the shapes a configuration value can take once decoded
// from TOML or YAML.
type Kind int

const (
	KindAbsent Kind = iota
	KindBool
	KindInt
	KindString
	KindList
)

// Value is a tagged variant over the types a configuration key may hold.
// The zero value is absent.
type Value struct {
	kind Kind
	b    bool
	i    int64
	s    string
	list []string
}

// Absent returns the absent value.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// List returns a list-of-strings value.
func List(items ...string) Value {
	return Value{kind: KindList, list: items}
}

// ValueOf normalizes raw decoder output into a Value. TOML and YAML decoders
// disagree on integer widths, so every integer type collapses to int64. A
// list is only recognized when every element is a string; anything else
// (floats, maps, mixed lists) is treated as absent rather than an error.
func ValueOf(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Absent()
	case Value:
		return v
	case bool:
		return Bool(v)
	case int:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case uint:
		return Int(int64(v))
	case uint8:
		return Int(int64(v))
	case uint16:
		return Int(int64(v))
	case uint32:
		return Int(int64(v))
	case uint64:
		return Int(int64(v))
	case string:
		return String(v)
	case []string:
		return List(v...)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return Absent()
			}
			items = append(items, s)
		}
		return List(items...)
	default:
		return Absent()
	}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether no value is present.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Bool returns the boolean payload. Only meaningful when Kind is KindBool.
func (v Value) Bool() bool {
	return v.b
}

// Int returns the integer payload. Only meaningful when Kind is KindInt.
func (v Value) Int() int64 {
	return v.i
}

// String returns the string payload. Only meaningful when Kind is KindString.
func (v Value) String() string {
	return v.s
}

// List returns the list payload. Only meaningful when Kind is KindList.
func (v Value) List() []string {
	return v.list
}

// Display renders the value for human-readable output such as tables and
// debug logs. It is not used for flag rendering.
func (v Value) Display() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindString:
		return v.s
	case KindList:
		return fmt.Sprintf("%v", v.list)
	default:
		return ""
	}
}
