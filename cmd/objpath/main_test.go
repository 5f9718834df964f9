package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

const nestedJSON = `{"nested":[{"body":"foobar"},{"body":{"deep":[{"down":"inside"}]}}]}`

type result struct {
	code   int
	stdout string
	stderr string
}

func runWith(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetCmd(t *testing.T) {
	t.Run("JSONFromStdin", func(t *testing.T) {
		res := runWith(t, nestedJSON, "get", "nested[1].body.deep[0].down")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "\"inside\"\n", res.stdout)
	})

	t.Run("TextFormat", func(t *testing.T) {
		res := runWith(t, nestedJSON, "--format", "text", "get", "nested[0].body")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "foobar\n", res.stdout)
	})

	t.Run("CompositeAsText", func(t *testing.T) {
		res := runWith(t, nestedJSON, "-f", "text", "get", "nested[0]")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "{\"body\":\"foobar\"}\n", res.stdout)
	})

	t.Run("YAMLFile", func(t *testing.T) {
		file := writeFile(t, "doc.yaml", "items:\n  - name: first\n  - name: second\n")
		res := runWith(t, "", "-f", "yaml", "get", "items[1]", file)
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "name: second\n", res.stdout)
	})

	t.Run("NotFound", func(t *testing.T) {
		res := runWith(t, nestedJSON, "get", "nested[5].body")
		assert.Equal(t, 2, res.code)
		assert.Equal(t, "", res.stdout)
		assert.Contains(t, res.stderr, "path not found: nested[5].body")
	})

	t.Run("MalformedPath", func(t *testing.T) {
		res := runWith(t, nestedJSON, "get", "nested[0")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "unterminated '['")
	})

	t.Run("InvalidDocument", func(t *testing.T) {
		res := runWith(t, `{"a": [1, 2`, "get", "a")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "failed to decode document")
	})

	t.Run("EmptyStdin", func(t *testing.T) {
		res := runWith(t, "", "get", "a")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "document is empty")
	})

	t.Run("MissingFile", func(t *testing.T) {
		res := runWith(t, "", "get", "a", filepath.Join(t.TempDir(), "nope.json"))
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "failed to read")
	})

	t.Run("MissingArgument", func(t *testing.T) {
		res := runWith(t, "", "get")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "Error:")
	})
}

func TestInfoCmd(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		res := runWith(t, nestedJSON, "info", "nested[0].body")
		assert.Equal(t, 0, res.code, res.stderr)

		var got map[string]interface{}
		assert.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
		assert.Equal(t, map[string]interface{}{
			"parent": map[string]interface{}{"body": "foobar"},
			"name":   "body",
			"value":  "foobar",
			"exists": true,
		}, got)
	})

	t.Run("AbsentValueOmitted", func(t *testing.T) {
		res := runWith(t, nestedJSON, "info", "nested[0].nope")
		assert.Equal(t, 0, res.code, res.stderr)

		var got map[string]interface{}
		assert.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
		_, hasValue := got["value"]
		assert.False(t, hasValue)
		assert.Equal(t, false, got["exists"])
	})

	t.Run("Text", func(t *testing.T) {
		res := runWith(t, nestedJSON, "--format", "text", "--color", "never", "info", "nested[1]")
		assert.Equal(t, 0, res.code, res.stderr)
		want := strings.Join([]string{
			`parent: [{"body":"foobar"},{"body":{"deep":[{"down":"inside"}]}}]`,
			`name:   1`,
			`value:  {"body":{"deep":[{"down":"inside"}]}}`,
			`exists: true`,
			``,
		}, "\n")
		assert.Equal(t, want, res.stdout)
	})

	t.Run("TextAbsent", func(t *testing.T) {
		res := runWith(t, nestedJSON, "-f", "text", "--color", "never", "info", "nested[4]")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "value:  <absent>\n")
		assert.Contains(t, res.stdout, "exists: false\n")
	})

	t.Run("YAML", func(t *testing.T) {
		res := runWith(t, "a: null\n", "-f", "yaml", "info", "a")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "exists: true")
		assert.Contains(t, res.stdout, "name: a")
	})
}

func TestParseCmd(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		res := runWith(t, "", "-f", "text", "--color", "never", "parse", `nested[1].a\.b`)
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "property nested\nindex    1\nproperty a.b\n", res.stdout)
	})

	t.Run("JSON", func(t *testing.T) {
		res := runWith(t, "", "parse", "a[2]")
		assert.Equal(t, 0, res.code, res.stderr)

		var got []map[string]interface{}
		assert.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
		assert.Equal(t, []map[string]interface{}{
			{"kind": "property", "key": "a"},
			{"kind": "index", "index": float64(2)},
		}, got)
	})

	t.Run("Malformed", func(t *testing.T) {
		res := runWith(t, "", "parse", "a..b")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "empty segment at offset 2")
	})
}

func TestConfigFile(t *testing.T) {
	config := writeFile(t, "objpath.toml", "[output]\nformat = \"text\"\ncolor = \"never\"\n")

	res := runWith(t, nestedJSON, "--config", config, "get", "nested[0].body")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "foobar\n", res.stdout)

	res = runWith(t, nestedJSON, "--config", config, "--format", "json", "get", "nested[0].body")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "\"foobar\"\n", res.stdout, "flags override the config file")
}

func TestVerboseLogging(t *testing.T) {
	res := runWith(t, nestedJSON, "-v", "get", "nested[0].body")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, "level=DEBUG")
	assert.Contains(t, res.stderr, "msg=resolved")
	assert.Contains(t, res.stderr, "found=true")
	assert.False(t, strings.Contains(res.stderr, "time="))
}

func TestLoadSettings(t *testing.T) {
	s, err := loadSettings("", "", "")
	assert.NoError(t, err)
	assert.Equal(t, Settings{Format: "json", Color: "auto"}, s)

	s, err = loadSettings("", "yaml", "always")
	assert.NoError(t, err)
	assert.Equal(t, Settings{Format: "yaml", Color: "always"}, s)

	config := writeFile(t, "objpath.toml", "[output]\nformat = \"yaml\"\n")
	s, err = loadSettings(config, "", "")
	assert.NoError(t, err)
	assert.Equal(t, Settings{Format: "yaml", Color: "auto"}, s)

	_, err = loadSettings("", "xml", "")
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = loadSettings("", "", "sometimes")
	assert.True(t, errors.Is(err, ErrUnknownColorMode))

	_, err = loadSettings(filepath.Join(t.TempDir(), "missing.toml"), "", "")
	assert.Error(t, err)
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor(&buf, "always"))
	assert.False(t, useColor(&buf, "never"))
	assert.False(t, useColor(&buf, "auto"), "buffers are not terminals")
}

func TestTextOf(t *testing.T) {
	for _, tt := range []struct {
		in   interface{}
		want string
	}{
		{nil, "null"},
		{"plain", "plain"},
		{3, "3"},
		{true, "true"},
		{[]interface{}{"a", 1}, `["a",1]`},
	} {
		got, err := textOf(tt.in)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
