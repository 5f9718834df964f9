package objpath

import (
	"fmt"
	"strconv"
	"strings"
)

// StepKind distinguishes the two kinds of access step.
type StepKind int

const (
	// PropertyStep looks up a named member.
	PropertyStep StepKind = iota
	// IndexStep looks up a non-negative position.
	IndexStep
)

func (k StepKind) String() string {
	switch k {
	case PropertyStep:
		return "property"
	case IndexStep:
		return "index"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is a single access step of a parsed path.
type Step struct {
	Kind StepKind
	// Key is the unescaped member name of a PropertyStep.
	Key string
	// Index is the position of an IndexStep.
	Index int
}

// Property returns a step that looks up the member named key.
func Property(key string) Step {
	return Step{Kind: PropertyStep, Key: key}
}

// Index returns a step that looks up position i.
func Index(i int) Step {
	return Step{Kind: IndexStep, Index: i}
}

// Value returns the key of a property step as a string or the position of
// an index step as an int.
func (s Step) Value() interface{} {
	if s.Kind == IndexStep {
		return s.Index
	}
	return s.Key
}

// String renders the step in path syntax. Delimiter characters in keys are
// backslash-escaped.
func (s Step) String() string {
	if s.Kind == IndexStep {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return keyEscaper.Replace(s.Key)
}

// position reports the sequence position addressed by s: the index of an
// index step, or a property key written as a canonical decimal integer.
func (s Step) position() (int, bool) {
	if s.Kind == IndexStep {
		return s.Index, s.Index >= 0
	}
	k := s.Key
	if k == "" || (len(k) > 1 && k[0] == '0') || !allDigits(k) {
		return 0, false
	}
	n, err := strconv.Atoi(k)
	if err != nil {
		return 0, false
	}
	return n, true
}

var keyEscaper = strings.NewReplacer(`.`, `\.`, `[`, `\[`, `]`, `\]`)

// Path is a parsed path expression: an ordered sequence of steps. A Path is
// immutable and may be shared between goroutines.
type Path struct {
	steps []Step
}

// NewPath builds a Path directly from steps.
func NewPath(steps ...Step) Path {
	return Path{steps: append([]Step(nil), steps...)}
}

// Steps returns a copy of the steps of p.
func (p Path) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// Len returns the number of steps in p.
func (p Path) Len() int {
	return len(p.steps)
}

// Last returns the final step of p. It returns the zero Step for an empty path.
func (p Path) Last() Step {
	if len(p.steps) == 0 {
		return Step{}
	}
	return p.steps[len(p.steps)-1]
}

// Parent returns p without its final step.
func (p Path) Parent() Path {
	if len(p.steps) == 0 {
		return p
	}
	return Path{steps: p.steps[:len(p.steps)-1:len(p.steps)-1]}
}

// Append returns a new path with steps added after those of p.
func (p Path) Append(steps ...Step) Path {
	res := make([]Step, 0, len(p.steps)+len(steps))
	res = append(res, p.steps...)
	return Path{steps: append(res, steps...)}
}

// String returns the path in canonical syntax. For non-empty keys that
// contain no backslash, Parse(p.String()) yields p again.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p.steps {
		if s.Kind == PropertyStep && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// MustParse is like Parse but panics if the path is malformed.
// Use only for compile-time constant paths.
func MustParse(path string) Path {
	p, err := Parse(path)
	if err != nil {
		panic(fmt.Sprintf("objpath.MustParse: %v", err))
	}
	return p
}

// Parse splits a path expression into access steps.
//
// Segments are separated by '.', and "[n]" addresses position n. A bracket
// group directly after a segment starts a new step, so "a[0]" and "a.[0]"
// are the same path. Bracket content that is not all digits is kept as a
// literal property key, brackets included. A backslash before '.', '[' or
// ']' makes that character part of the key, so "a[x\.y]" is the key "[x.y]".
//
// Parse reports an ErrMalformedPath error for an empty path, an empty
// segment, an unbalanced bracket, an unescaped '.' inside brackets, or text
// directly after a closing bracket.
func Parse(path string) (Path, error) {
	if path == "" {
		return Path{}, &Error{Code: ErrMalformedPath, Message: "path must not be empty"}
	}

	var (
		steps   []Step
		key     strings.Builder
		pending bool
	)
	flush := func() {
		steps = append(steps, Property(key.String()))
		key.Reset()
		pending = false
	}

	i := 0
	for i < len(path) {
		c := path[i]
		switch {
		case c == '\\' && i+1 < len(path) && isDelim(path[i+1]):
			key.WriteByte(path[i+1])
			pending = true
			i += 2
		case c == '.':
			if !pending {
				return Path{}, malformed(path, i, "empty segment")
			}
			flush()
			i++
			if i == len(path) {
				return Path{}, malformed(path, i, "trailing '.'")
			}
		case c == '[':
			if pending {
				flush()
			}
			step, next, err := parseBracket(path, i)
			if err != nil {
				return Path{}, err
			}
			steps = append(steps, step)
			i = next
			if i == len(path) {
				break
			}
			switch path[i] {
			case '.':
				i++
				if i == len(path) {
					return Path{}, malformed(path, i, "trailing '.'")
				}
			case '[':
			default:
				return Path{}, malformed(path, i, "unexpected %q after ']'", path[i])
			}
		case c == ']':
			return Path{}, malformed(path, i, "unexpected ']'")
		default:
			key.WriteByte(c)
			pending = true
			i++
		}
	}
	if pending {
		flush()
	}
	return Path{steps: steps}, nil
}

// parseBracket reads the bracket group opening at path[open] and returns
// its step and the offset just past the closing ']'.
func parseBracket(path string, open int) (Step, int, error) {
	var content strings.Builder
	for i := open + 1; i < len(path); i++ {
		c := path[i]
		switch {
		case c == '\\' && i+1 < len(path) && isDelim(path[i+1]):
			content.WriteByte(path[i+1])
			i++
		case c == '[':
			return Step{}, 0, malformed(path, i, "nested '['")
		case c == '.':
			return Step{}, 0, malformed(path, i, "unescaped '.' inside brackets")
		case c == ']':
			inner := content.String()
			if inner != "" && allDigits(inner) {
				n, err := strconv.Atoi(inner)
				if err != nil {
					return Step{}, 0, malformed(path, open, "index %s out of range", inner)
				}
				return Index(n), i + 1, nil
			}
			return Property("[" + inner + "]"), i + 1, nil
		default:
			content.WriteByte(c)
		}
	}
	return Step{}, 0, malformed(path, open, "unterminated '['")
}

func isDelim(c byte) bool {
	return c == '.' || c == '[' || c == ']'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
