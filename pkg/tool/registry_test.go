package tool

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
)

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return log
}

func testDefinition(name, desc string, result any) Definition {
	return Definition{
		Tool: mcp.Tool{
			Name:        name,
			Description: desc,
			InputSchema: mcp.ToolInputSchema{Type: "object"},
		},
		Handler: func(_ context.Context, _ map[string]any) (any, error) {
			return result, nil
		},
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry(testLogger())

	reg.Register(testDefinition("books_list", "list books", "books"))

	def, ok := reg.Get("books_list")
	if !ok {
		t.Fatal("expected books_list to be registered")
	}

	if def.Tool.Description != "list books" {
		t.Errorf("unexpected description: %q", def.Tool.Description)
	}

	if _, ok := reg.Get("missing"); ok {
		t.Error("expected lookup of unregistered name to fail")
	}
}

func TestRegistryOverwriteKeepsUniqueCount(t *testing.T) {
	reg := NewRegistry(testLogger())

	reg.Register(testDefinition("a", "first a", 1))
	reg.Register(testDefinition("b", "only b", 2))
	reg.Register(testDefinition("a", "second a", 3))

	if reg.Len() != 2 {
		t.Fatalf("expected 2 unique tools, got %d", reg.Len())
	}

	def, ok := reg.Get("a")
	if !ok {
		t.Fatal("expected a to be registered")
	}

	if def.Tool.Description != "second a" {
		t.Errorf("expected last registration to win, got %q", def.Tool.Description)
	}

	result, err := def.Handler(context.Background(), nil)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	if result != 3 {
		t.Errorf("expected overwritten handler result 3, got %v", result)
	}
}

func TestRegistryListInsertionOrder(t *testing.T) {
	reg := NewRegistry(testLogger())

	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		reg.Register(testDefinition(name, name, nil))
	}

	// Overwriting must not reorder.
	reg.Register(testDefinition("alpha", "alpha again", nil))

	tools := reg.List()
	if len(tools) != len(names) {
		t.Fatalf("expected %d tools, got %d", len(names), len(tools))
	}

	for i, name := range names {
		if tools[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, tools[i].Name)
		}
	}
}

func TestRegistryListExposesDeclaredMetadata(t *testing.T) {
	reg := NewRegistry(testLogger())

	def := testDefinition("books_get", "get a book", nil)
	def.Tool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]any{
			"id": map[string]any{"type": "integer", "minimum": 1},
		},
		Required: []string{"id"},
	}
	reg.Register(def)

	tools := reg.List()
	if len(tools) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(tools))
	}

	listed := tools[0]
	if listed.Name != "books_get" || listed.Description != "get a book" {
		t.Errorf("unexpected metadata: %+v", listed)
	}

	if len(listed.InputSchema.Required) != 1 || listed.InputSchema.Required[0] != "id" {
		t.Errorf("expected declared schema to be exposed, got %+v", listed.InputSchema)
	}
}
