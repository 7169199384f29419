// Package bookstack provides an HTTP client for the BookStack REST API.
package bookstack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ExportFormat is a content export format supported by BookStack.
type ExportFormat string

const (
	ExportHTML      ExportFormat = "html"
	ExportPDF       ExportFormat = "pdf"
	ExportPlainText ExportFormat = "plaintext"
	ExportMarkdown  ExportFormat = "markdown"
)

// ExportFormats lists all supported export formats.
var ExportFormats = []string{
	string(ExportHTML),
	string(ExportPDF),
	string(ExportPlainText),
	string(ExportMarkdown),
}

// PermissionContentTypes lists the entity types that carry content permissions.
var PermissionContentTypes = []string{"page", "book", "chapter", "bookshelf"}

// ListParams holds common listing controls mapped onto BookStack's
// offset/count/sort/filter query grammar.
type ListParams struct {
	Offset int
	Count  int
	Sort   string
	Filter map[string]string
}

// query converts the params to URL query values.
func (p ListParams) query() url.Values {
	values := url.Values{}

	if p.Offset > 0 {
		values.Set("offset", strconv.Itoa(p.Offset))
	}

	if p.Count > 0 {
		values.Set("count", strconv.Itoa(p.Count))
	}

	if p.Sort != "" {
		values.Set("sort", p.Sort)
	}

	for key, value := range p.Filter {
		values.Set(fmt.Sprintf("filter[%s]", key), value)
	}

	return values
}

// Client defines the interface for interacting with a BookStack instance.
// Every method is a thin pass-through to one REST endpoint; responses are
// returned decoded but otherwise unshaped so callers control serialization.
type Client interface {
	// Books.
	ListBooks(ctx context.Context, params ListParams) (any, error)
	GetBook(ctx context.Context, id int) (any, error)
	CreateBook(ctx context.Context, data map[string]any) (any, error)
	UpdateBook(ctx context.Context, id int, data map[string]any) (any, error)
	DeleteBook(ctx context.Context, id int) error
	ExportBook(ctx context.Context, id int, format ExportFormat) (string, error)

	// Pages.
	ListPages(ctx context.Context, params ListParams) (any, error)
	GetPage(ctx context.Context, id int) (any, error)
	CreatePage(ctx context.Context, data map[string]any) (any, error)
	UpdatePage(ctx context.Context, id int, data map[string]any) (any, error)
	DeletePage(ctx context.Context, id int) error
	ExportPage(ctx context.Context, id int, format ExportFormat) (string, error)

	// Chapters.
	ListChapters(ctx context.Context, params ListParams) (any, error)
	GetChapter(ctx context.Context, id int) (any, error)
	CreateChapter(ctx context.Context, data map[string]any) (any, error)
	UpdateChapter(ctx context.Context, id int, data map[string]any) (any, error)
	DeleteChapter(ctx context.Context, id int) error
	ExportChapter(ctx context.Context, id int, format ExportFormat) (string, error)

	// Shelves.
	ListShelves(ctx context.Context, params ListParams) (any, error)
	GetShelf(ctx context.Context, id int) (any, error)
	CreateShelf(ctx context.Context, data map[string]any) (any, error)
	UpdateShelf(ctx context.Context, id int, data map[string]any) (any, error)
	DeleteShelf(ctx context.Context, id int) error

	// Users.
	ListUsers(ctx context.Context, params ListParams) (any, error)
	GetUser(ctx context.Context, id int) (any, error)
	CreateUser(ctx context.Context, data map[string]any) (any, error)
	UpdateUser(ctx context.Context, id int, data map[string]any) (any, error)
	DeleteUser(ctx context.Context, id, migrateOwnershipID int) error

	// Roles.
	ListRoles(ctx context.Context, params ListParams) (any, error)
	GetRole(ctx context.Context, id int) (any, error)
	CreateRole(ctx context.Context, data map[string]any) (any, error)
	UpdateRole(ctx context.Context, id int, data map[string]any) (any, error)
	DeleteRole(ctx context.Context, id int) error

	// Attachments.
	ListAttachments(ctx context.Context, params ListParams) (any, error)
	GetAttachment(ctx context.Context, id int) (any, error)
	CreateAttachment(ctx context.Context, data map[string]any) (any, error)
	UpdateAttachment(ctx context.Context, id int, data map[string]any) (any, error)
	DeleteAttachment(ctx context.Context, id int) error

	// Image gallery.
	ListImages(ctx context.Context, params ListParams) (any, error)
	GetImage(ctx context.Context, id int) (any, error)
	CreateImage(ctx context.Context, data map[string]any) (any, error)
	UpdateImage(ctx context.Context, id int, data map[string]any) (any, error)
	DeleteImage(ctx context.Context, id int) error

	// Search across all content types.
	Search(ctx context.Context, query string, page, count int) (any, error)

	// Recycle bin.
	ListRecycleBin(ctx context.Context, params ListParams) (any, error)
	RestoreRecycleBinItem(ctx context.Context, deletionID int) (any, error)
	DestroyRecycleBinItem(ctx context.Context, deletionID int) (any, error)

	// Content permissions.
	GetContentPermissions(ctx context.Context, contentType string, contentID int) (any, error)
	UpdateContentPermissions(ctx context.Context, contentType string, contentID int, data map[string]any) (any, error)

	// Audit log.
	ListAuditLog(ctx context.Context, params ListParams) (any, error)

	// System information.
	GetSystemInfo(ctx context.Context) (any, error)

	// HealthCheck verifies connectivity and credentials against the instance.
	HealthCheck(ctx context.Context) error
}

// Ensure client implements Client interface.
var _ Client = (*client)(nil)

// client is the HTTP-based implementation of the Client interface.
type client struct {
	log        logrus.FieldLogger
	cfg        *Config
	httpClient *http.Client
}

// NewClient creates a new BookStack API client.
func NewClient(log logrus.FieldLogger, cfg *Config) Client {
	return &client{
		log: log.WithField("component", "bookstack"),
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Books.

func (c *client) ListBooks(ctx context.Context, params ListParams) (any, error) {
	return c.getJSON(ctx, "/api/books", params.query())
}

func (c *client) GetBook(ctx context.Context, id int) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/api/books/%d", id), nil)
}

func (c *client) CreateBook(ctx context.Context, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPost, "/api/books", data)
}

func (c *client) UpdateBook(ctx context.Context, id int, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/books/%d", id), data)
}

func (c *client) DeleteBook(ctx context.Context, id int) error {
	return c.deleteResource(ctx, fmt.Sprintf("/api/books/%d", id))
}

func (c *client) ExportBook(ctx context.Context, id int, format ExportFormat) (string, error) {
	return c.getText(ctx, fmt.Sprintf("/api/books/%d/export/%s", id, format))
}

// Pages.

func (c *client) ListPages(ctx context.Context, params ListParams) (any, error) {
	return c.getJSON(ctx, "/api/pages", params.query())
}

func (c *client) GetPage(ctx context.Context, id int) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/api/pages/%d", id), nil)
}

func (c *client) CreatePage(ctx context.Context, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPost, "/api/pages", data)
}

func (c *client) UpdatePage(ctx context.Context, id int, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/pages/%d", id), data)
}

func (c *client) DeletePage(ctx context.Context, id int) error {
	return c.deleteResource(ctx, fmt.Sprintf("/api/pages/%d", id))
}

func (c *client) ExportPage(ctx context.Context, id int, format ExportFormat) (string, error) {
	return c.getText(ctx, fmt.Sprintf("/api/pages/%d/export/%s", id, format))
}

// Chapters.

func (c *client) ListChapters(ctx context.Context, params ListParams) (any, error) {
	return c.getJSON(ctx, "/api/chapters", params.query())
}

func (c *client) GetChapter(ctx context.Context, id int) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/api/chapters/%d", id), nil)
}

func (c *client) CreateChapter(ctx context.Context, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPost, "/api/chapters", data)
}

func (c *client) UpdateChapter(ctx context.Context, id int, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/chapters/%d", id), data)
}

func (c *client) DeleteChapter(ctx context.Context, id int) error {
	return c.deleteResource(ctx, fmt.Sprintf("/api/chapters/%d", id))
}

func (c *client) ExportChapter(ctx context.Context, id int, format ExportFormat) (string, error) {
	return c.getText(ctx, fmt.Sprintf("/api/chapters/%d/export/%s", id, format))
}

// Shelves.

func (c *client) ListShelves(ctx context.Context, params ListParams) (any, error) {
	return c.getJSON(ctx, "/api/shelves", params.query())
}

func (c *client) GetShelf(ctx context.Context, id int) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/api/shelves/%d", id), nil)
}

func (c *client) CreateShelf(ctx context.Context, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPost, "/api/shelves", data)
}

func (c *client) UpdateShelf(ctx context.Context, id int, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/shelves/%d", id), data)
}

func (c *client) DeleteShelf(ctx context.Context, id int) error {
	return c.deleteResource(ctx, fmt.Sprintf("/api/shelves/%d", id))
}

// Users.

func (c *client) ListUsers(ctx context.Context, params ListParams) (any, error) {
	return c.getJSON(ctx, "/api/users", params.query())
}

func (c *client) GetUser(ctx context.Context, id int) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/api/users/%d", id), nil)
}

func (c *client) CreateUser(ctx context.Context, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPost, "/api/users", data)
}

func (c *client) UpdateUser(ctx context.Context, id int, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), data)
}

func (c *client) DeleteUser(ctx context.Context, id, migrateOwnershipID int) error {
	path := fmt.Sprintf("/api/users/%d", id)

	if migrateOwnershipID > 0 {
		_, err := c.sendJSON(ctx, http.MethodDelete, path, map[string]any{
			"migrate_ownership_id": migrateOwnershipID,
		})

		return err
	}

	return c.deleteResource(ctx, path)
}

// Roles.

func (c *client) ListRoles(ctx context.Context, params ListParams) (any, error) {
	return c.getJSON(ctx, "/api/roles", params.query())
}

func (c *client) GetRole(ctx context.Context, id int) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/api/roles/%d", id), nil)
}

func (c *client) CreateRole(ctx context.Context, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPost, "/api/roles", data)
}

func (c *client) UpdateRole(ctx context.Context, id int, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/roles/%d", id), data)
}

func (c *client) DeleteRole(ctx context.Context, id int) error {
	return c.deleteResource(ctx, fmt.Sprintf("/api/roles/%d", id))
}

// Attachments.

func (c *client) ListAttachments(ctx context.Context, params ListParams) (any, error) {
	return c.getJSON(ctx, "/api/attachments", params.query())
}

func (c *client) GetAttachment(ctx context.Context, id int) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/api/attachments/%d", id), nil)
}

func (c *client) CreateAttachment(ctx context.Context, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPost, "/api/attachments", data)
}

func (c *client) UpdateAttachment(ctx context.Context, id int, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/attachments/%d", id), data)
}

func (c *client) DeleteAttachment(ctx context.Context, id int) error {
	return c.deleteResource(ctx, fmt.Sprintf("/api/attachments/%d", id))
}

// Image gallery.

func (c *client) ListImages(ctx context.Context, params ListParams) (any, error) {
	return c.getJSON(ctx, "/api/image-gallery", params.query())
}

func (c *client) GetImage(ctx context.Context, id int) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/api/image-gallery/%d", id), nil)
}

func (c *client) CreateImage(ctx context.Context, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPost, "/api/image-gallery", data)
}

func (c *client) UpdateImage(ctx context.Context, id int, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/image-gallery/%d", id), data)
}

func (c *client) DeleteImage(ctx context.Context, id int) error {
	return c.deleteResource(ctx, fmt.Sprintf("/api/image-gallery/%d", id))
}

// Search executes a unified search across all content types.
func (c *client) Search(ctx context.Context, query string, page, count int) (any, error) {
	values := url.Values{"query": {query}}

	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}

	if count > 0 {
		values.Set("count", strconv.Itoa(count))
	}

	return c.getJSON(ctx, "/api/search", values)
}

// Recycle bin.

func (c *client) ListRecycleBin(ctx context.Context, params ListParams) (any, error) {
	return c.getJSON(ctx, "/api/recycle-bin", params.query())
}

func (c *client) RestoreRecycleBinItem(ctx context.Context, deletionID int) (any, error) {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/recycle-bin/%d", deletionID), nil)
}

func (c *client) DestroyRecycleBinItem(ctx context.Context, deletionID int) (any, error) {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/recycle-bin/%d", deletionID), nil)
}

// Content permissions.

func (c *client) GetContentPermissions(ctx context.Context, contentType string, contentID int) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/api/content-permissions/%s/%d", contentType, contentID), nil)
}

func (c *client) UpdateContentPermissions(ctx context.Context, contentType string, contentID int, data map[string]any) (any, error) {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/content-permissions/%s/%d", contentType, contentID), data)
}

// ListAuditLog returns audit log entries. Requires admin permissions upstream.
func (c *client) ListAuditLog(ctx context.Context, params ListParams) (any, error) {
	return c.getJSON(ctx, "/api/audit-log", params.query())
}

// GetSystemInfo returns instance details such as version and instance ID.
func (c *client) GetSystemInfo(ctx context.Context) (any, error) {
	return c.getJSON(ctx, "/api/system", nil)
}

// HealthCheck verifies connectivity and credentials against the instance.
func (c *client) HealthCheck(ctx context.Context) error {
	values := url.Values{"count": {"1"}}

	if _, err := c.getJSON(ctx, "/api/books", values); err != nil {
		return fmt.Errorf("bookstack health check: %w", err)
	}

	return nil
}

// getJSON executes a GET request and decodes the JSON response.
func (c *client) getJSON(ctx context.Context, path string, query url.Values) (any, error) {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}

	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	return decodeJSON(body)
}

// sendJSON executes a request with a JSON body and decodes the JSON response.
func (c *client) sendJSON(ctx context.Context, method, path string, data map[string]any) (any, error) {
	var reqBody io.Reader

	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reqBody = bytes.NewReader(encoded)
	}

	body, err := c.do(ctx, method, path, reqBody)
	if err != nil {
		return nil, err
	}

	return decodeJSON(body)
}

// deleteResource executes a DELETE request and discards the (empty) response.
func (c *client) deleteResource(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)

	return err
}

// getText executes a GET request and returns the raw response body as text.
// Used for export endpoints, which return rendered content, not JSON.
func (c *client) getText(ctx context.Context, path string) (string, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// do executes an HTTP request against the BookStack API and returns the raw
// response body. Non-2xx responses are converted to APIError.
func (c *client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	}).Debug("Executing BookStack API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// newRequest creates a new HTTP request with BookStack token authentication.
func (c *client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	fullURL := strings.TrimSuffix(c.cfg.URL, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Token %s:%s", c.cfg.TokenID, c.cfg.TokenSecret))
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// decodeJSON decodes a response body into a generic value. Empty bodies decode
// to nil, which some delete and restore endpoints return.
func decodeJSON(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var out any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return out, nil
}
