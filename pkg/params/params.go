// Package params validates tool arguments against their declared JSON schemas
// before any handler logic runs.
package params

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/xeipuuv/gojsonschema"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/mcperr"
)

// Schema is a tool input schema compiled once at registration time and reused
// for every call.
type Schema struct {
	compiled *gojsonschema.Schema
}

// Compile compiles a tool input schema for reuse.
func Compile(schema mcp.ToolInputSchema) (*Schema, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, err
	}

	return &Schema{compiled: compiled}, nil
}

// MustCompile is Compile but panics on error. Tool schemas are static
// declarations, so a failure here is a programming error caught at startup.
func MustCompile(schema mcp.ToolInputSchema) *Schema {
	s, err := Compile(schema)
	if err != nil {
		panic("params: invalid tool schema: " + err.Error())
	}

	return s
}

// Validate checks arguments against the compiled schema and returns them
// unchanged on success. A nil map validates as an empty object.
func (s *Schema) Validate(args map[string]any) (map[string]any, error) {
	if args == nil {
		args = map[string]any{}
	}

	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return nil, mcperr.Validation("validating arguments: %s", err.Error())
	}

	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}

		return nil, mcperr.Validation("invalid arguments: %s", strings.Join(messages, "; "))
	}

	return args, nil
}

// ID coerces a raw argument into a positive integer identifier. JSON numbers
// arrive as float64; string forms are accepted for convenience.
func ID(raw any) (int, error) {
	switch v := raw.(type) {
	case float64:
		if v <= 0 || v != math.Trunc(v) {
			return 0, mcperr.Validation("id must be a positive integer, got %v", v)
		}

		return int(v), nil
	case int:
		if v <= 0 {
			return 0, mcperr.Validation("id must be a positive integer, got %d", v)
		}

		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil || n <= 0 {
			return 0, mcperr.Validation("id must be a positive integer, got %s", v.String())
		}

		return int(n), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n <= 0 {
			return 0, mcperr.Validation("id must be a positive integer, got %q", v)
		}

		return n, nil
	default:
		return 0, mcperr.Validation("id must be a positive integer, got %T", raw)
	}
}
