package mcperr

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type statusError struct {
	status int
}

func (e *statusError) Error() string   { return fmt.Sprintf("upstream status %d", e.status) }
func (e *statusError) HTTPStatus() int { return e.status }

func TestTranslateNil(t *testing.T) {
	if Translate(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestTranslatePassesThroughClassified(t *testing.T) {
	original := UnknownTool("books_list")

	translated := Translate(original)
	if translated != original {
		t.Error("expected classified errors to pass through unchanged")
	}

	wrapped := fmt.Errorf("dispatch: %w", original)

	translated = Translate(wrapped)
	if translated.Code != CodeUnknownTool {
		t.Errorf("expected wrapped classified error to keep its code, got %s", translated.Code)
	}
}

func TestTranslateHTTPStatus(t *testing.T) {
	cases := []struct {
		status int
		code   Code
	}{
		{404, CodeNotFound},
		{401, CodeUnauthorized},
		{403, CodeUnauthorized},
		{500, CodeUpstream},
		{422, CodeUpstream},
	}

	for _, tc := range cases {
		translated := Translate(&statusError{status: tc.status})
		if translated.Code != tc.code {
			t.Errorf("status %d: expected code %s, got %s", tc.status, tc.code, translated.Code)
		}
	}
}

func TestTranslateWrappedStatusError(t *testing.T) {
	err := fmt.Errorf("fetching book: %w", &statusError{status: 404})

	translated := Translate(err)
	if translated.Code != CodeNotFound {
		t.Errorf("expected wrapped status error to classify, got %s", translated.Code)
	}

	if !errors.Is(translated, err) {
		t.Error("expected translated error to keep the cause chain")
	}
}

func TestTranslateDeadline(t *testing.T) {
	err := fmt.Errorf("request: %w", context.DeadlineExceeded)

	translated := Translate(err)
	if translated.Code != CodeUpstream {
		t.Errorf("expected upstream code for timeouts, got %s", translated.Code)
	}

	if translated.Message != "upstream request timed out" {
		t.Errorf("unexpected timeout message %q", translated.Message)
	}
}

func TestTranslateGenericError(t *testing.T) {
	translated := Translate(errors.New("boom"))

	if translated.Code != CodeUpstream {
		t.Errorf("expected upstream code, got %s", translated.Code)
	}

	if translated.Message != "boom" {
		t.Errorf("expected original message, got %q", translated.Message)
	}
}

func TestConstructorsNameTheSubject(t *testing.T) {
	if got := UnknownTool("x").Error(); got != "unknown_tool: unknown tool: x" {
		t.Errorf("unexpected message %q", got)
	}

	if got := UnknownResource("bookstack://y").Error(); got != "unknown_resource: unknown resource: bookstack://y" {
		t.Errorf("unexpected message %q", got)
	}

	if got := Validation("field %s is required", "id"); got.Code != CodeValidation || got.Message != "field id is required" {
		t.Errorf("unexpected validation error %+v", got)
	}
}
