package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOverrideConfigAppliesHeaders(t *testing.T) {
	svc := NewService(testLogger(), testConfig(), nil).(*service)

	req := httptest.NewRequest(http.MethodPost, "/message", nil)
	req.Header.Set(HeaderBookStackURL, "https://other.example.com")
	req.Header.Set(HeaderBookStackTokenID, "other-id")
	req.Header.Set(HeaderBookStackTokenSecret, "other-secret")

	cfg := svc.overrideConfig(req)

	if cfg.BookStack.URL != "https://other.example.com" {
		t.Errorf("expected URL override, got %q", cfg.BookStack.URL)
	}

	if cfg.BookStack.TokenID != "other-id" || cfg.BookStack.TokenSecret != "other-secret" {
		t.Errorf("expected credential overrides, got %+v", cfg.BookStack)
	}

	// The process configuration must stay untouched.
	if svc.cfg.BookStack.URL != "https://docs.example.com" {
		t.Errorf("process config mutated: %q", svc.cfg.BookStack.URL)
	}
}

func TestOverrideConfigWithoutHeaders(t *testing.T) {
	svc := NewService(testLogger(), testConfig(), nil).(*service)

	req := httptest.NewRequest(http.MethodPost, "/message", nil)

	cfg := svc.overrideConfig(req)

	if cfg.BookStack.URL != svc.cfg.BookStack.URL {
		t.Errorf("expected process URL retained, got %q", cfg.BookStack.URL)
	}

	if cfg.BookStack.TokenID != "id" || cfg.BookStack.TokenSecret != "secret" {
		t.Errorf("expected process credentials retained, got %+v", cfg.BookStack)
	}
}

func TestHandleMessageToolsList(t *testing.T) {
	svc := NewService(testLogger(), testConfig(), nil).(*service)

	body := `{"jsonrpc": "2.0", "id": 1, "method": "tools/list"}`
	req := httptest.NewRequest(http.MethodPost, "/message", strings.NewReader(body))
	rec := httptest.NewRecorder()

	svc.handleMessage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}

	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if len(response.Result.Tools) == 0 {
		t.Fatal("expected a populated tool listing")
	}

	names := make(map[string]bool)
	for _, tl := range response.Result.Tools {
		names[tl.Name] = true
	}

	if !names["books_list"] || !names["server_info"] {
		t.Errorf("expected catalog tools in listing, got %v", names)
	}
}

func TestHandleMessageNotificationReturnsAccepted(t *testing.T) {
	svc := NewService(testLogger(), testConfig(), nil).(*service)

	body := `{"jsonrpc": "2.0", "method": "notifications/initialized"}`
	req := httptest.NewRequest(http.MethodPost, "/message", strings.NewReader(body))
	rec := httptest.NewRecorder()

	svc.handleMessage(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Errorf("expected 202 for a notification, got %d", rec.Code)
	}
}

func TestHandleMessageMalformedJSON(t *testing.T) {
	svc := NewService(testLogger(), testConfig(), nil).(*service)

	req := httptest.NewRequest(http.MethodPost, "/message", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	svc.handleMessage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected a JSON-RPC error envelope, got status %d", rec.Code)
	}

	var response struct {
		Error *struct {
			Code int `json:"code"`
		} `json:"error"`
	}

	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if response.Error == nil {
		t.Fatal("expected a JSON-RPC error for malformed input")
	}
}

func TestHandleHealthAgainstStubUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	t.Cleanup(upstream.Close)

	cfg := testConfig()
	cfg.BookStack.URL = upstream.URL

	svc := NewService(testLogger(), cfg, nil).(*service)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	svc.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var report HealthReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decoding report: %v", err)
	}

	if !report.Healthy() {
		t.Errorf("expected healthy report, got %+v", report)
	}
}

func TestHandleHealthUnreachableUpstream(t *testing.T) {
	cfg := testConfig()
	cfg.BookStack.URL = "http://127.0.0.1:1"

	svc := NewService(testLogger(), cfg, nil).(*service)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	svc.handleHealth(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 for unreachable upstream, got %d", rec.Code)
	}

	var report HealthReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decoding report: %v", err)
	}

	if report.Checks["bookstack_api"] {
		t.Error("expected bookstack_api check to fail")
	}
}
