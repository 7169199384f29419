package tool

import (
	"context"
	"testing"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// catalogClient stubs the client methods the catalog tests exercise.
type catalogClient struct {
	bookstack.Client

	searchQuery string
	searchPage  int
	searchCount int

	deletedUser int
	migratedTo  int

	restoredID int

	permType string
	permID   int
	permBody map[string]any
}

func (c *catalogClient) Search(_ context.Context, query string, page, count int) (any, error) {
	c.searchQuery = query
	c.searchPage = page
	c.searchCount = count

	return map[string]any{"total": 1}, nil
}

func (c *catalogClient) DeleteUser(_ context.Context, id, migrateOwnershipID int) error {
	c.deletedUser = id
	c.migratedTo = migrateOwnershipID

	return nil
}

func (c *catalogClient) RestoreRecycleBinItem(_ context.Context, deletionID int) (any, error) {
	c.restoredID = deletionID

	return map[string]any{"restore_count": 1}, nil
}

func (c *catalogClient) UpdateContentPermissions(_ context.Context, contentType string, contentID int, data map[string]any) (any, error) {
	c.permType = contentType
	c.permID = contentID
	c.permBody = data

	return nil, nil
}

func findDefinition(t *testing.T, defs []Definition, name string) Definition {
	t.Helper()

	for _, def := range defs {
		if def.Tool.Name == name {
			return def
		}
	}

	t.Fatalf("tool %s not found", name)

	return Definition{}
}

func TestSearchAllTool(t *testing.T) {
	client := &catalogClient{}
	def := findDefinition(t, NewSearchTools(testLogger(), client), "search_all")

	if _, err := def.Handler(context.Background(), nil); !isValidationError(err) {
		t.Errorf("expected validation error without query, got %v", err)
	}

	args := map[string]any{
		"query": "cats {type:page}",
		"page":  float64(2),
		"count": float64(25),
	}

	if _, err := def.Handler(context.Background(), args); err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	if client.searchQuery != "cats {type:page}" || client.searchPage != 2 || client.searchCount != 25 {
		t.Errorf("unexpected search call: %+v", client)
	}

	if _, err := def.Handler(context.Background(), map[string]any{"query": "x", "count": float64(101)}); !isValidationError(err) {
		t.Errorf("expected validation error for count above max, got %v", err)
	}
}

func TestUsersDeleteTool(t *testing.T) {
	client := &catalogClient{}
	def := findDefinition(t, NewUserTools(testLogger(), client), "users_delete")

	if _, err := def.Handler(context.Background(), map[string]any{"id": float64(5)}); err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	if client.deletedUser != 5 || client.migratedTo != 0 {
		t.Errorf("unexpected delete call: user=%d migrate=%d", client.deletedUser, client.migratedTo)
	}

	args := map[string]any{"id": float64(5), "migrate_ownership_id": float64(8)}
	if _, err := def.Handler(context.Background(), args); err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	if client.migratedTo != 8 {
		t.Errorf("expected ownership migration to 8, got %d", client.migratedTo)
	}
}

func TestRecycleBinRestoreTool(t *testing.T) {
	client := &catalogClient{}
	def := findDefinition(t, NewRecycleBinTools(testLogger(), client), "recycle_bin_restore")

	if _, err := def.Handler(context.Background(), map[string]any{"id": float64(3)}); !isValidationError(err) {
		t.Errorf("expected validation error, restore takes deletion_id not id, got %v", err)
	}

	if _, err := def.Handler(context.Background(), map[string]any{"deletion_id": float64(3)}); err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	if client.restoredID != 3 {
		t.Errorf("expected deletion 3 restored, got %d", client.restoredID)
	}
}

func TestPermissionsUpdateTool(t *testing.T) {
	client := &catalogClient{}
	def := findDefinition(t, NewPermissionTools(testLogger(), client), "permissions_update")

	if _, err := def.Handler(context.Background(), map[string]any{"content_type": "spaceship", "content_id": float64(1)}); !isValidationError(err) {
		t.Errorf("expected validation error for unknown content type, got %v", err)
	}

	args := map[string]any{
		"content_type": "book",
		"content_id":   float64(11),
		"owner_id":     float64(2),
		"role_permissions": []any{
			map[string]any{"role_id": float64(4), "view": true},
		},
	}

	if _, err := def.Handler(context.Background(), args); err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	if client.permType != "book" || client.permID != 11 {
		t.Errorf("unexpected permission target: %s/%d", client.permType, client.permID)
	}

	if _, present := client.permBody["content_type"]; present {
		t.Error("content_type must not appear in the request body")
	}

	if client.permBody["owner_id"] != float64(2) {
		t.Errorf("unexpected body: %v", client.permBody)
	}
}
