// Package document decodes serialized JSON or YAML documents into the
// generic maps and slices that objpath resolves paths against.
package document

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/FronterAS/objpath"
)

// Decode decodes a JSON or YAML document. Mappings become
// map[string]interface{} and sequences []interface{}.
func Decode(data []byte) (interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &objpath.Error{Code: objpath.ErrInvalidInput, Message: "document is empty"}
	}
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &objpath.Error{Code: objpath.ErrInvalidDocument, Message: "failed to decode document", Cause: err}
	}
	return doc, nil
}

// Read decodes the whole of r.
func Read(r io.Reader) (interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Decode(data)
}

// Load decodes the file at path.
func Load(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(data)
}
