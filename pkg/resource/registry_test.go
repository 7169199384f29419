package resource

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

func staticEntry(uri string, result any) Entry {
	return Entry{
		Resource: mcp.Resource{
			URI:      uri,
			Name:     uri,
			MIMEType: "application/json",
		},
		Handler: func(_ context.Context, _ string) (any, error) {
			return result, nil
		},
	}
}

func TestMatchExactURI(t *testing.T) {
	reg := NewRegistry(testLogger())
	reg.Register(staticEntry("bookstack://books", "all books"))

	entry, ok := reg.Match("bookstack://books")
	if !ok {
		t.Fatal("expected exact URI to match")
	}

	result, err := entry.Handler(context.Background(), "bookstack://books")
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	if result != "all books" {
		t.Errorf("unexpected handler result: %v", result)
	}

	if _, ok := reg.Match("bookstack://books/"); ok {
		t.Error("trailing slash must not match an exact pattern")
	}
}

func TestMatchTemplatedURI(t *testing.T) {
	reg := NewRegistry(testLogger())
	reg.Register(staticEntry("bookstack://books/{id}", nil))

	cases := []struct {
		uri   string
		match bool
	}{
		{"bookstack://books/5", true},
		{"bookstack://books/abc", true},
		{"bookstack://books/", false},
		{"bookstack://books/5/pages", false},
		{"bookstack://books", false},
		{"bookstack://shelves/5", false},
	}

	for _, tc := range cases {
		_, ok := reg.Match(tc.uri)
		if ok != tc.match {
			t.Errorf("Match(%q) = %v, expected %v", tc.uri, ok, tc.match)
		}
	}
}

func TestMatchMultiVariableTemplate(t *testing.T) {
	reg := NewRegistry(testLogger())
	reg.Register(staticEntry("bookstack://books/{id}/chapters/{chapterId}", nil))

	if _, ok := reg.Match("bookstack://books/3/chapters/9"); !ok {
		t.Error("expected two-variable URI to match")
	}

	for _, uri := range []string{
		"bookstack://books/3/chapters",
		"bookstack://books/3/chapters/",
		"bookstack://books//chapters/9",
		"bookstack://books/3/chapters/9/extra",
	} {
		if _, ok := reg.Match(uri); ok {
			t.Errorf("expected %q not to match", uri)
		}
	}
}

func TestMatchFirstRegisteredWins(t *testing.T) {
	reg := NewRegistry(testLogger())
	reg.Register(staticEntry("bookstack://books/{id}", "template"))
	reg.Register(staticEntry("bookstack://books/5", "exact"))

	// The template was registered first, so it shadows the later exact
	// pattern. Precedence follows registration order alone.
	entry, ok := reg.Match("bookstack://books/5")
	if !ok {
		t.Fatal("expected a match")
	}

	result, _ := entry.Handler(context.Background(), "bookstack://books/5")
	if result != "template" {
		t.Errorf("expected earlier template to win, handler returned %v", result)
	}

	if entry.Resource.URI != "bookstack://books/{id}" {
		t.Errorf("expected matched pattern bookstack://books/{id}, got %q", entry.Resource.URI)
	}
}

func TestMatchExactBeforeTemplate(t *testing.T) {
	reg := NewRegistry(testLogger())
	reg.Register(staticEntry("bookstack://books/5", "exact"))
	reg.Register(staticEntry("bookstack://books/{id}", "template"))

	entry, ok := reg.Match("bookstack://books/5")
	if !ok {
		t.Fatal("expected a match")
	}

	result, _ := entry.Handler(context.Background(), "bookstack://books/5")
	if result != "exact" {
		t.Errorf("expected earlier exact pattern to win, handler returned %v", result)
	}

	entry, ok = reg.Match("bookstack://books/7")
	if !ok {
		t.Fatal("expected template to catch other ids")
	}

	if entry.Resource.URI != "bookstack://books/{id}" {
		t.Errorf("unexpected pattern %q", entry.Resource.URI)
	}
}

func TestRegisterOverwritesSamePattern(t *testing.T) {
	reg := NewRegistry(testLogger())
	reg.Register(staticEntry("bookstack://system", "old"))
	reg.Register(staticEntry("bookstack://system", "new"))

	if reg.Len() != 1 {
		t.Fatalf("expected 1 entry after overwrite, got %d", reg.Len())
	}

	entry, ok := reg.Match("bookstack://system")
	if !ok {
		t.Fatal("expected a match")
	}

	result, _ := entry.Handler(context.Background(), "bookstack://system")
	if result != "new" {
		t.Errorf("expected last registration to win, got %v", result)
	}
}

func TestListSplitsStaticAndTemplates(t *testing.T) {
	reg := NewRegistry(testLogger())
	reg.Register(staticEntry("bookstack://books", nil))
	reg.Register(staticEntry("bookstack://books/{id}", nil))
	reg.Register(staticEntry("bookstack://system", nil))

	static := reg.ListStatic()
	if len(static) != 2 {
		t.Fatalf("expected 2 static resources, got %d", len(static))
	}

	if static[0].URI != "bookstack://books" || static[1].URI != "bookstack://system" {
		t.Errorf("unexpected static order: %q, %q", static[0].URI, static[1].URI)
	}

	templates := reg.ListTemplates()
	if len(templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(templates))
	}

	all := reg.List()
	if len(all) != 3 {
		t.Fatalf("expected 3 resources overall, got %d", len(all))
	}
}

func TestCompilePatternQuotesLiterals(t *testing.T) {
	// Regex metacharacters in the literal part must not gain meaning.
	reg := NewRegistry(testLogger())
	reg.Register(staticEntry("bookstack://search/{query}", nil))

	if _, ok := reg.Match("bookstack://search/cats"); !ok {
		t.Error("expected search template to match")
	}

	if _, ok := reg.Match("bookstackX//search/cats"); ok {
		t.Error("expected literal dots and slashes to be quoted")
	}
}
