package core

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"glitchmart/models"
)

func testRecord() models.LogRecord {
	return NewIncidentBuilder().BuildIncidentLog(models.FaultJamPagination, "api-products", "product-list-handler")
}

func TestEmitterSkipsWhenUnconfigured(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	// Missing API key: must be a no-op, not a request.
	NewEmitter(srv.URL, "", "search-test", time.Second).Emit(testRecord())
	// Missing URL: same.
	NewEmitter("", "secret", "search-test", time.Second).Emit(testRecord())

	if n := atomic.LoadInt32(&hits); n != 0 {
		t.Fatalf("expected no sink requests from an unconfigured emitter, got %d", n)
	}
}

func TestEmitterPostsSingleDocument(t *testing.T) {
	var (
		gotPath   string
		gotAuth   string
		gotCType  string
		gotMethod string
		gotBody   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	NewEmitter(srv.URL, "secret", "search-test", time.Second).Emit(testRecord())

	if gotMethod != http.MethodPost {
		t.Fatalf("method = %q, want POST", gotMethod)
	}
	if gotPath != "/search-test/_doc" {
		t.Fatalf("path = %q, want /search-test/_doc", gotPath)
	}
	if gotAuth != "ApiKey secret" {
		t.Fatalf("authorization = %q, want ApiKey secret", gotAuth)
	}
	if gotCType != "application/json" {
		t.Fatalf("content type = %q", gotCType)
	}

	var doc map[string]any
	if err := json.Unmarshal(gotBody, &doc); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	for _, key := range []string{"@timestamp", "log.level", "service", "host", "event", "message"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("document missing %q key: %s", key, gotBody)
		}
	}
}

func TestEmitterSwallowsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "mapping rejected", http.StatusBadRequest)
	}))
	defer srv.Close()

	// Must return normally.
	NewEmitter(srv.URL, "secret", "search-test", time.Second).Emit(testRecord())
}

func TestEmitterSwallowsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	// Sink is gone; must return normally.
	NewEmitter(url, "secret", "search-test", time.Second).Emit(testRecord())
}

func TestEmitGroupDispatchesAll(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	e := NewEmitter(srv.URL, "secret", "search-test", time.Second)
	e.EmitGroup([]models.LogRecord{testRecord(), testRecord(), testRecord()})

	if n := atomic.LoadInt32(&hits); n != 3 {
		t.Fatalf("expected 3 sink requests, got %d", n)
	}
}
