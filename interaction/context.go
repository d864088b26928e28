// SPDX-License-Identifier: MIT
// Package: intergen/interaction
//
// context.go: the generation context (signature) and its YAML parser.
//
// Document shape:
//
//	lifelines: [client, server]
//	messages:  [req, resp]
//
// Parsing is two-staged: the YAML is decoded generically and checked against
// an embedded JSON schema (unique identifiers, at least one of each), then
// decoded into Context. Every failure wraps ErrInvalidContext.

package interaction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Context is the signature interactions are generated over. Interactions
// refer to lifelines and messages by index into these slices.
type Context struct {
	Lifelines []string `yaml:"lifelines"`
	Messages  []string `yaml:"messages"`
}

// LifelineName returns the name of lifeline l, or "?" when out of range.
func (c *Context) LifelineName(l int) string {
	if l < 0 || l >= len(c.Lifelines) {
		return "?"
	}
	return c.Lifelines[l]
}

// MessageName returns the name of message m, or "?" when out of range.
func (c *Context) MessageName(m int) string {
	if m < 0 || m >= len(c.Messages) {
		return "?"
	}
	return c.Messages[m]
}

const contextSchemaURL = "intergen://schemas/signature.json"

const contextSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "required": ["lifelines", "messages"],
  "properties": {
    "lifelines": {"$ref": "#/definitions/identifiers"},
    "messages":  {"$ref": "#/definitions/identifiers"}
  },
  "definitions": {
    "identifiers": {
      "type": "array",
      "minItems": 1,
      "uniqueItems": true,
      "items": {"type": "string", "pattern": "^[A-Za-z_][A-Za-z0-9_]*$"}
    }
  }
}`

// compiledContextSchema compiles the embedded schema once.
var compiledContextSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString(contextSchemaURL, contextSchema)
})

// ParseContext decodes and validates a YAML signature document.
func ParseContext(data []byte) (*Context, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode signature: %v: %w", err, ErrInvalidContext)
	}

	// The schema validator expects encoding/json shaped values.
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("normalise signature: %v: %w", err, ErrInvalidContext)
	}
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(asJSON))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("normalise signature: %v: %w", err, ErrInvalidContext)
	}

	schema, err := compiledContextSchema()
	if err != nil {
		return nil, fmt.Errorf("compile signature schema: %v: %w", err, ErrInvalidContext)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate signature: %v: %w", err, ErrInvalidContext)
	}

	var ctx Context
	if err := yaml.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("decode signature: %v: %w", err, ErrInvalidContext)
	}
	return &ctx, nil
}

// LoadContext reads and parses the signature file at path.
func LoadContext(path string) (*Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signature %s: %v: %w", path, err, ErrInvalidContext)
	}
	ctx, err := ParseContext(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ctx, nil
}
