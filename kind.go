package objpath

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// kind is the closed set of value shapes the resolver distinguishes.
type kind int

const (
	kindAbsent     kind = iota // not reached
	kindMissing                // nil interface or nil pointer
	kindNumber                 // integer, float or complex
	kindText                   // string
	kindStructured             // map, slice, array or struct
	kindOpaque                 // bool, func, chan and the rest: no members
)

func (k kind) String() string {
	switch k {
	case kindAbsent:
		return "absent"
	case kindMissing:
		return "missing"
	case kindNumber:
		return "number"
	case kindText:
		return "text"
	case kindStructured:
		return "structured"
	default:
		return "opaque"
	}
}

// lengthKey is the structural member of strings and sequences.
const lengthKey = "length"

// node is a value met during a walk. raw is the value as stored in its
// container; elem is raw with pointers and interfaces stripped.
type node struct {
	raw  reflect.Value
	elem reflect.Value
	kind kind
}

var absent = node{kind: kindAbsent}

func nodeOf(x interface{}) node {
	return classify(reflect.ValueOf(x))
}

func classify(raw reflect.Value) node {
	n := node{raw: raw, elem: raw, kind: kindMissing}
	if !raw.IsValid() {
		return n
	}
	for n.elem.Kind() == reflect.Pointer || n.elem.Kind() == reflect.Interface {
		if n.elem.IsNil() {
			return n
		}
		n.elem = n.elem.Elem()
	}
	switch n.elem.Kind() {
	case reflect.String:
		n.kind = kindText
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		n.kind = kindNumber
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		n.kind = kindStructured
	default:
		n.kind = kindOpaque
	}
	return n
}

// present reports whether a walk may continue through n.
func (n node) present() bool {
	return n.kind != kindAbsent && n.kind != kindMissing
}

// value returns the Go value held by n. ok is false only for absent nodes.
func (n node) value() (v interface{}, ok bool) {
	if n.kind == kindAbsent {
		return nil, false
	}
	if !n.raw.IsValid() || !n.raw.CanInterface() {
		return nil, true
	}
	return n.raw.Interface(), true
}

// member returns the member of n addressed by s, or absent. Only own
// members count: fields promoted from embedded structs are not members.
func (n node) member(s Step) node {
	if !n.present() {
		return absent
	}
	v := n.elem
	switch v.Kind() {
	case reflect.String:
		return textMember(v.String(), s)
	case reflect.Slice, reflect.Array:
		if s.Kind == PropertyStep && s.Key == lengthKey {
			return classify(reflect.ValueOf(v.Len()))
		}
		i, ok := s.position()
		if !ok || i >= v.Len() {
			return absent
		}
		return classify(v.Index(i))
	case reflect.Map:
		for _, k := range mapKeys(v.Type().Key(), s) {
			if e := v.MapIndex(k); e.IsValid() {
				return classify(e)
			}
		}
		return absent
	case reflect.Struct:
		if s.Kind != PropertyStep {
			return absent
		}
		if f, ok := structField(v, s.Key); ok {
			return classify(f)
		}
	}
	return absent
}

func (n node) has(s Step) bool {
	return n.member(s).kind != kindAbsent
}

// textMember treats a string as a sequence of runes.
func textMember(str string, s Step) node {
	if s.Kind == PropertyStep && s.Key == lengthKey {
		return classify(reflect.ValueOf(utf8.RuneCountInString(str)))
	}
	i, ok := s.position()
	if !ok {
		return absent
	}
	for _, r := range str {
		if i == 0 {
			return classify(reflect.ValueOf(string(r)))
		}
		i--
	}
	return absent
}

// mapKeys returns the keys s may address in a map with key type kt, in
// lookup order. Interface-keyed maps, such as map[interface{}]interface{},
// are tried with the string form of s and with its position as an int.
func mapKeys(kt reflect.Type, s Step) []reflect.Value {
	if kt.Kind() != reflect.Interface {
		if k, ok := mapKey(kt, s); ok {
			return []reflect.Value{k}
		}
		return nil
	}

	name := s.Key
	if s.Kind == IndexStep {
		name = strconv.Itoa(s.Index)
	}
	candidates := []reflect.Value{reflect.ValueOf(name)}
	if i, ok := s.position(); ok {
		pos := reflect.ValueOf(i)
		if s.Kind == IndexStep {
			candidates = []reflect.Value{pos, candidates[0]}
		} else {
			candidates = append(candidates, pos)
		}
	}

	keys := candidates[:0]
	for _, k := range candidates {
		if k.Type().AssignableTo(kt) {
			keys = append(keys, k)
		}
	}
	return keys
}

// mapKey converts s to a key of type kt. Property keys address string-keyed
// maps directly and integer-keyed maps when they are canonical integers;
// index steps address integer-keyed maps directly and string-keyed maps by
// their decimal form.
func mapKey(kt reflect.Type, s Step) (reflect.Value, bool) {
	switch kt.Kind() {
	case reflect.String:
		name := s.Key
		if s.Kind == IndexStep {
			name = strconv.Itoa(s.Index)
		}
		return reflect.ValueOf(name).Convert(kt), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := s.position()
		if !ok {
			return reflect.Value{}, false
		}
		k := reflect.New(kt).Elem()
		if k.OverflowInt(int64(i)) {
			return reflect.Value{}, false
		}
		k.SetInt(int64(i))
		return k, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, ok := s.position()
		if !ok {
			return reflect.Value{}, false
		}
		k := reflect.New(kt).Elem()
		if k.OverflowUint(uint64(i)) {
			return reflect.Value{}, false
		}
		k.SetUint(uint64(i))
		return k, true
	}
	return reflect.Value{}, false
}

// structField finds the exported field of v named key, either by its Go
// name or by the name in its json tag.
func structField(v reflect.Value, key string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Name == key {
			return v.Field(i), true
		}
		if name := jsonName(f); name != "" && name == key {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
