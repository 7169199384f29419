package resource

import (
	"net/url"
	"strings"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/mcperr"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/params"
)

// trailingSegment returns the final path segment of a request URI, unescaped.
// Handlers receive the raw concrete URI and parse their own variables.
func trailingSegment(uri string) string {
	segment := uri
	if idx := strings.LastIndex(uri, "/"); idx >= 0 {
		segment = uri[idx+1:]
	}

	if unescaped, err := url.PathUnescape(segment); err == nil {
		return unescaped
	}

	return segment
}

// trailingID parses the final path segment as a positive integer ID.
func trailingID(uri string) (int, error) {
	id, err := params.ID(trailingSegment(uri))
	if err != nil {
		return 0, mcperr.Validation("resource URI %q does not end in a valid id", uri)
	}

	return id, nil
}
