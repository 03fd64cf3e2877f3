package core

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"glitchmart/models"
)

func TestBuildIncidentLogTemplates(t *testing.T) {
	builder := NewIncidentBuilder()

	tests := []struct {
		fault     string
		wantLevel string
		wantType  string
	}{
		{models.FaultDisableAddToCart, models.LevelFatal, "OutOfMemoryError"},
		{models.FaultJamPagination, models.LevelError, "ApiTimeoutError"},
		{models.FaultFakeOutOfStock, models.LevelError, "DatabaseConnectionError"},
	}

	for _, tt := range tests {
		rec := builder.BuildIncidentLog(tt.fault, "api-test", "test-handler")

		if rec.Level != tt.wantLevel {
			t.Fatalf("%s: level = %q, want %q", tt.fault, rec.Level, tt.wantLevel)
		}
		if rec.Error == nil || rec.Error.Type != tt.wantType {
			t.Fatalf("%s: error type = %+v, want %q", tt.fault, rec.Error, tt.wantType)
		}
		if rec.Error.Message == "" || rec.Error.StackTrace == "" {
			t.Fatalf("%s: error message and stack trace must be populated", tt.fault)
		}
		if rec.Message != rec.Error.Message {
			t.Fatalf("%s: message must copy error.message", tt.fault)
		}
		if rec.Fault == nil || rec.Fault.Name != tt.fault {
			t.Fatalf("%s: fault linkage missing, got %+v", tt.fault, rec.Fault)
		}
		if rec.Service.Name != "api-test" || rec.Service.Version != ServiceVersion {
			t.Fatalf("%s: unexpected service identity %+v", tt.fault, rec.Service)
		}
		if !strings.HasPrefix(rec.Host.Name, "api-test-pod-") {
			t.Fatalf("%s: host name = %q, want api-test-pod- prefix", tt.fault, rec.Host.Name)
		}
		if rec.Event.Dataset != incidentDataset || rec.Event.Module != "test-handler" {
			t.Fatalf("%s: unexpected event info %+v", tt.fault, rec.Event)
		}
		if rec.Timestamp == "" {
			t.Fatalf("%s: timestamp must be set", tt.fault)
		}
	}
}

func TestBuildIncidentLogStableAcrossCalls(t *testing.T) {
	builder := NewIncidentBuilder()

	first := builder.BuildIncidentLog(models.FaultJamPagination, "api-products", "product-list-handler")
	second := builder.BuildIncidentLog(models.FaultJamPagination, "api-products", "product-list-handler")

	if first.Level != second.Level || first.Error.Type != second.Error.Type {
		t.Fatalf("level and error type must be stable for a fixed fault")
	}
	if first.Error.Message != second.Error.Message || first.Error.StackTrace != second.Error.StackTrace {
		t.Fatalf("error payload must be stable for a fixed fault")
	}
	if first.Host.Name == second.Host.Name {
		t.Fatalf("host name suffix must differ between emissions")
	}
}

func TestBuildIncidentLogInjectedIdentity(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	builder := &IncidentBuilder{
		Now:        func() time.Time { return at },
		InstanceID: func() string { return "abc123" },
	}

	first := builder.BuildIncidentLog(models.FaultFakeOutOfStock, "api-products-detail", "product-detail-handler")
	second := builder.BuildIncidentLog(models.FaultFakeOutOfStock, "api-products-detail", "product-detail-handler")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("records with pinned clock and instance id must be identical")
	}
	if first.Timestamp != "2026-08-29T12:00:00.000Z" {
		t.Fatalf("timestamp = %q, want pinned ISO-8601 value", first.Timestamp)
	}
	if first.Host.Name != "api-products-detail-pod-abc123" {
		t.Fatalf("host name = %q", first.Host.Name)
	}
}

func TestBuildIncidentLogUnknownFaultIsComplete(t *testing.T) {
	rec := NewIncidentBuilder().BuildIncidentLog("mystery", "api-test", "test-handler")
	if rec.Error == nil || rec.Message == "" || rec.Level == "" {
		t.Fatalf("unknown fault must still yield a fully populated record: %+v", rec)
	}
}

func TestBuildEventLog(t *testing.T) {
	builder := &IncidentBuilder{InstanceID: func() string { return "xyz" }}

	rec := builder.BuildEventLog(models.LevelInfo, "api-health", "health", "health-handler", "Health check passed.")
	if rec.Level != models.LevelInfo || rec.Message != "Health check passed." {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Host.Name != "glitchmart-instance-xyz" {
		t.Fatalf("host name = %q", rec.Host.Name)
	}
	if rec.Event.Dataset != "health" || rec.Event.Module != "health-handler" {
		t.Fatalf("unexpected event info %+v", rec.Event)
	}
	if rec.Error != nil || rec.Fault != nil {
		t.Fatalf("event logs must not carry error or fault payloads by default")
	}
}
