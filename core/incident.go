package core

import (
	"strings"
	"time"

	"glitchmart/models"

	"github.com/google/uuid"
)

// ServiceVersion is the fixed service.version stamped on every record
// shipped to the ingestion pipeline.
const ServiceVersion = "1.3.0"

// incidentDataset marks records as belonging to the simulated-error stream.
const incidentDataset = "ecommerce-demo.simulated-errors"

// timestampLayout is ISO-8601 with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// IncidentBuilder fabricates structured log records. Building is pure:
// no I/O happens here, and the only varying outputs are the timestamp and
// the per-emission host suffix, both of which can be pinned for tests via
// Now and InstanceID.
type IncidentBuilder struct {
	// Now supplies the record timestamp. Defaults to time.Now.
	Now func() time.Time
	// InstanceID supplies the opaque per-emission host-name suffix.
	// Defaults to a short random identifier, never reused.
	InstanceID func() string
}

// NewIncidentBuilder constructs a builder with the default clock and
// instance-id source.
func NewIncidentBuilder() *IncidentBuilder {
	return &IncidentBuilder{}
}

func (b *IncidentBuilder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *IncidentBuilder) instanceID() string {
	if b.InstanceID != nil {
		return b.InstanceID()
	}
	return defaultInstanceID()
}

// defaultInstanceID returns a short opaque suffix simulating a unique
// instance name per emission.
func defaultInstanceID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// BuildIncidentLog produces the synthetic incident record for a fault.
// For a given fault name the level, error type and message are stable
// across calls; only the timestamp and host suffix vary. Unknown fault
// names yield a generic error record so the output is never partial.
func (b *IncidentBuilder) BuildIncidentLog(faultName, serviceName, moduleName string) models.LogRecord {
	record := models.LogRecord{
		Timestamp: b.now().UTC().Format(timestampLayout),
		Level:     models.LevelError,
		Service:   models.ServiceIdentity{Name: serviceName, Version: ServiceVersion},
		Host:      models.HostIdentity{Name: serviceName + "-pod-" + b.instanceID()},
		Event:     models.EventInfo{Dataset: incidentDataset, Module: moduleName},
		Fault:     &models.FaultRef{Name: faultName},
	}

	switch faultName {
	case models.FaultDisableAddToCart:
		record.Level = models.LevelFatal
		record.Error = &models.ErrorDetail{
			Type:    "OutOfMemoryError",
			Message: "FATAL ERROR: out of memory allocating heap arena - cannot allocate 1073741824-byte block near heap limit",
			StackTrace: "fatal error: runtime: out of memory\n" +
				"runtime.sysMapOS(0xc000400000, 0x40000000)\n" +
				"\truntime/mem_linux.go:167 +0x11c\n" +
				"runtime.(*mheap).grow(0x267f4a0, 0x200000)\n" +
				"\truntime/mheap.go:1494 +0x248",
		}
	case models.FaultJamPagination:
		record.Error = &models.ErrorDetail{
			Type:    "ApiTimeoutError",
			Message: "Upstream service timeout. The request to the inventory service took too long to respond.",
			StackTrace: "net/http: request to https://inventory-service/api/products timed out after 3000ms (Client.Timeout exceeded while awaiting headers)\n" +
				"net/http.(*Client).do(0xc0003ba000)\n" +
				"\tnet/http/client.go:725 +0x8bc\n" +
				"glitchmart/service.(*ProductService).List(0xc0001d62a0, 0x1)\n" +
				"\tglitchmart/service/product_service.go:38 +0xe4",
		}
	case models.FaultFakeOutOfStock:
		record.Error = &models.ErrorDetail{
			Type:    "DatabaseConnectionError",
			Message: "Error: dial tcp 52.37.141.153:5432: connect: connection timed out. Could not connect to the inventory database.",
			StackTrace: "dial tcp 52.37.141.153:5432: i/o timeout\n" +
				"database/sql.(*DB).conn(0xc0000f2680, {0x1a2b3c0, 0xc000028060}, 0x1)\n" +
				"\tdatabase/sql/sql.go:1413 +0x74c\n" +
				"gorm.io/gorm.(*DB).First(0xc0002a4000, {0x17e9140, 0xc0003c8120})\n" +
				"\tgorm.io/gorm@v1.25.5/finisher_api.go:129 +0x9d",
		}
	default:
		record.Error = &models.ErrorDetail{
			Type:    "SimulatedError",
			Message: "Simulated failure triggered by fault " + faultName,
		}
	}

	record.Message = record.Error.Message
	return record
}

// BuildEventLog produces a regular (non-incident) record for handler
// traffic: successful operations, not-found warnings and unhandled errors.
func (b *IncidentBuilder) BuildEventLog(level, serviceName, dataset, moduleName, message string) models.LogRecord {
	return models.LogRecord{
		Timestamp: b.now().UTC().Format(timestampLayout),
		Level:     level,
		Service:   models.ServiceIdentity{Name: serviceName, Version: ServiceVersion},
		Host:      models.HostIdentity{Name: "glitchmart-instance-" + b.instanceID()},
		Event:     models.EventInfo{Dataset: dataset, Module: moduleName},
		Message:   message,
	}
}
