package objpath

import "encoding/json"

// Info describes the location addressed by a path within a value.
type Info struct {
	// Parent is the value holding the final member: the root itself for a
	// single-step path, nil when the parent could not be reached.
	Parent interface{}
	// Name is the final step of the path.
	Name Step
	// Value is the value at the full path. It is nil when Found is false.
	Value interface{}
	// Found reports whether the full path was reached. A member holding nil
	// is found; a member that does not exist is not.
	Found bool
	// Exists reports whether Name is a member of Parent.
	Exists bool
}

// MarshalJSON implements json.Marshaler for Info. The value field is
// omitted when the path was not reached.
func (i Info) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{
		"parent": i.Parent,
		"name":   i.Name.Value(),
		"exists": i.Exists,
	}
	if i.Found {
		m["value"] = i.Value
	}
	return json.Marshal(m)
}

// walk applies the first n steps of p to root. It stops at the first value
// that is absent or nil; later steps are not applied.
func (p Path) walk(root interface{}, n int) node {
	cur := nodeOf(root)
	for _, s := range p.steps[:n] {
		if !cur.present() {
			return absent
		}
		cur = cur.member(s)
	}
	return cur
}

// Value returns the value at p within root. ok is false when the path
// cannot be reached; a reached member that holds nil yields (nil, true).
// An empty path addresses root itself.
func (p Path) Value(root interface{}) (v interface{}, ok bool) {
	return p.walk(root, len(p.steps)).value()
}

// Info returns the value at p within root together with its parent, the
// final step, and whether that step names a member of the parent.
func (p Path) Info(root interface{}) Info {
	if len(p.steps) == 0 {
		v, ok := nodeOf(root).value()
		return Info{Value: v, Found: ok}
	}

	last := len(p.steps) - 1
	parent := nodeOf(root)
	if last > 0 {
		parent = p.walk(root, last)
	}

	info := Info{Name: p.steps[last]}
	info.Parent, _ = parent.value()
	info.Value, info.Found = p.walk(root, len(p.steps)).value()
	info.Exists = parent.has(info.Name)
	return info
}
