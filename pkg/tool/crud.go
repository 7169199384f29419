package tool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/mcperr"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/params"
)

// The per-entity tool catalogs are near-identical shapes over the BookStack
// CRUD surface. These constructors build one catalog entry each: schema
// declared as data, compiled once, validated before the client call.

// listTool builds a listing tool over the shared pagination grammar.
func listTool(name, desc string, fn func(context.Context, bookstack.ListParams) (any, error)) Definition {
	t := mcp.Tool{
		Name:        name,
		Description: desc,
		InputSchema: objectSchema(listProperties()),
	}
	schema := params.MustCompile(t.InputSchema)

	return Definition{
		Tool: t,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			args, err := schema.Validate(args)
			if err != nil {
				return nil, err
			}

			return fn(ctx, listParamsFrom(args))
		},
	}
}

// getTool builds a fetch-by-id tool.
func getTool(name, desc string, fn func(context.Context, int) (any, error)) Definition {
	t := mcp.Tool{
		Name:        name,
		Description: desc,
		InputSchema: objectSchema(map[string]any{
			"id": idProperty("The ID of the item to fetch"),
		}, "id"),
	}
	schema := params.MustCompile(t.InputSchema)

	return Definition{
		Tool: t,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			args, err := schema.Validate(args)
			if err != nil {
				return nil, err
			}

			id, err := params.ID(args["id"])
			if err != nil {
				return nil, err
			}

			return fn(ctx, id)
		},
	}
}

// createTool builds a creation tool from entity-specific properties.
func createTool(name, desc string, props map[string]any, required []string, fn func(context.Context, map[string]any) (any, error)) Definition {
	t := mcp.Tool{
		Name:        name,
		Description: desc,
		InputSchema: objectSchema(props, required...),
	}
	schema := params.MustCompile(t.InputSchema)

	return Definition{
		Tool: t,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			args, err := schema.Validate(args)
			if err != nil {
				return nil, err
			}

			return fn(ctx, bodyFrom(args))
		},
	}
}

// updateTool builds an update-by-id tool from entity-specific properties.
func updateTool(name, desc string, props map[string]any, fn func(context.Context, int, map[string]any) (any, error)) Definition {
	merged := make(map[string]any, len(props)+1)
	for key, value := range props {
		merged[key] = value
	}

	merged["id"] = idProperty("The ID of the item to update")

	t := mcp.Tool{
		Name:        name,
		Description: desc,
		InputSchema: objectSchema(merged, "id"),
	}
	schema := params.MustCompile(t.InputSchema)

	return Definition{
		Tool: t,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			args, err := schema.Validate(args)
			if err != nil {
				return nil, err
			}

			id, err := params.ID(args["id"])
			if err != nil {
				return nil, err
			}

			return fn(ctx, id, bodyFrom(args, "id"))
		},
	}
}

// deleteTool builds a delete-by-id tool. Deletes move content to the recycle
// bin upstream, so the result reports the deletion rather than entity data.
func deleteTool(name, desc string, fn func(context.Context, int) error) Definition {
	t := mcp.Tool{
		Name:        name,
		Description: desc,
		InputSchema: objectSchema(map[string]any{
			"id": idProperty("The ID of the item to delete"),
		}, "id"),
	}
	schema := params.MustCompile(t.InputSchema)

	return Definition{
		Tool: t,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			args, err := schema.Validate(args)
			if err != nil {
				return nil, err
			}

			id, err := params.ID(args["id"])
			if err != nil {
				return nil, err
			}

			if err := fn(ctx, id); err != nil {
				return nil, err
			}

			return map[string]any{"deleted": true, "id": id}, nil
		},
	}
}

// exportTool builds an export-by-id tool returning rendered content.
func exportTool(name, desc string, fn func(context.Context, int, bookstack.ExportFormat) (string, error)) Definition {
	t := mcp.Tool{
		Name:        name,
		Description: desc,
		InputSchema: objectSchema(map[string]any{
			"id":     idProperty("The ID of the item to export"),
			"format": formatProperty(),
		}, "id", "format"),
	}
	schema := params.MustCompile(t.InputSchema)

	return Definition{
		Tool: t,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			args, err := schema.Validate(args)
			if err != nil {
				return nil, err
			}

			id, err := params.ID(args["id"])
			if err != nil {
				return nil, err
			}

			format, ok := args["format"].(string)
			if !ok {
				return nil, mcperr.Validation("format must be a string")
			}

			return fn(ctx, id, bookstack.ExportFormat(format))
		},
	}
}
