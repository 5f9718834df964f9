// Package objpath resolves dotted and bracketed path expressions such as
// "nested[1].body.deep[0].down" against nested Go values.
//
// Values may be maps with string or integer keys, slices, arrays, structs
// (matched by field name or json tag), strings, numbers and pointers or
// interfaces to any of these. Documents decoded with encoding/json or a YAML
// decoder work as they are.
//
// # Basic Usage
//
//	doc := map[string]interface{}{
//	    "nested": []interface{}{
//	        map[string]interface{}{"body": "foobar"},
//	    },
//	}
//
//	v, ok, err := objpath.GetValue("nested[0].body", doc)
//	// v == "foobar", ok == true, err == nil
//
// # Absent and nil
//
// A path that cannot be reached resolves to "absent", reported by a false ok
// value or Info.Found, never by an error. A member that exists and holds nil
// is reached: its value is nil and ok is true. Errors are only returned for
// path expressions that cannot be parsed.
//
// # Syntax
//
//	a.b.c        property steps
//	a[0].b       index step; same as a.[0].b
//	a\.b         one property named "a.b"
//	a[x]         one property named "a" then one named "[x]"
//
// Parsing is pure, so callers that resolve the same path repeatedly can keep
// the Path returned by Parse and call its Value or Info methods.
package objpath

// GetValue parses path and returns the value it addresses within root.
// ok is false when the path cannot be reached.
func GetValue(path string, root interface{}) (v interface{}, ok bool, err error) {
	p, err := Parse(path)
	if err != nil {
		return nil, false, err
	}
	v, ok = p.Value(root)
	return v, ok, nil
}

// GetInfo parses path and returns the value it addresses within root along
// with its parent, final step, and whether that step names a member of the
// parent.
func GetInfo(path string, root interface{}) (Info, error) {
	p, err := Parse(path)
	if err != nil {
		return Info{}, err
	}
	return p.Info(root), nil
}

// HasProperty reports whether name addresses a member of container.
//
// Strings have a "length" member and one member per rune; slices and arrays
// have "length" and one member per element; maps have their keys; structs
// have their exported fields, excluding fields promoted from embedded
// structs. Numbers, booleans and nil have no members.
func HasProperty(name Step, container interface{}) bool {
	return nodeOf(container).has(name)
}
