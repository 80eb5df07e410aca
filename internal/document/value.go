package document

import (
	"iter"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// IsContainer reports whether values of this kind have children.
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindObject
}

// Value is a decoded JSON value. The set of implementations is closed:
// Null, Bool, Number, String, Array and *Object.
type Value interface {
	Kind() Kind
	MarshalJSON() ([]byte, error)
	value()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number kept in its textual form so no precision is lost.
type Number string

// String is a JSON string.
type String string

// Array is an ordered JSON array. Elements are never nil.
type Array []Value

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

func (Null) value()   {}
func (Bool) value()   {}
func (Number) value() {}
func (String) value() {}
func (Array) value()  {}

// NumberFromInt returns the Number for n.
func NumberFromInt(n int) Number {
	return Number(strconv.Itoa(n))
}

// Int64 parses the number as an integer.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Float64 parses the number as a float.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object that preserves member insertion order.
type Object struct {
	members []Member
	index   map[string]int
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) value()     {}

// NewObject builds an object from members in order. A repeated key keeps the
// position of its first occurrence and the value of its last.
func NewObject(members ...Member) *Object {
	o := &Object{
		members: make([]Member, 0, len(members)),
		index:   make(map[string]int, len(members)),
	}
	for _, m := range members {
		o.set(m.Key, m.Value)
	}
	return o
}

func (o *Object) set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Get returns the member named key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Keys returns member names in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	for _, m := range o.members {
		keys = append(keys, m.Key)
	}
	return keys
}

// Members iterates over key/value pairs in insertion order.
func (o *Object) Members() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, m := range o.members {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold the same JSON value. Object member order
// is not significant; numbers compare by their textual form first and by
// numeric value second.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case String:
		return av == b.(String)
	case Number:
		bv := b.(Number)
		if av == bv {
			return true
		}
		af, aerr := av.Float64()
		bf, berr := bv.Float64()
		return aerr == nil && berr == nil && af == bf
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if av.Len() != bv.Len() {
			return false
		}
		for key, value := range av.Members() {
			other, ok := bv.Get(key)
			if !ok || !Equal(value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ToAny converts v into the map[string]any / []any / float64 form used by
// generic JSON libraries. Object order is lost.
func ToAny(v Value) any {
	switch tv := v.(type) {
	case Bool:
		return bool(tv)
	case Number:
		if f, err := tv.Float64(); err == nil {
			return f
		}
		return string(tv)
	case String:
		return string(tv)
	case Array:
		out := make([]any, len(tv))
		for i, elem := range tv {
			out[i] = ToAny(elem)
		}
		return out
	case *Object:
		out := make(map[string]any, tv.Len())
		for key, value := range tv.Members() {
			out[key] = ToAny(value)
		}
		return out
	default:
		return nil
	}
}
