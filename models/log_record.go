package models

// LogRecord is the wire shape shipped to the log-ingestion endpoint.
// Field naming follows the ECS-style schema the ingestion pipeline expects:
// a flat JSON document with "@timestamp" and "log.level" keys plus nested
// service/host/event objects. Only level, message, service, host, event and
// the timestamp are always present; everything else is handler-specific.
type LogRecord struct {
	Timestamp string          `json:"@timestamp"`
	Level     string          `json:"log.level"`
	Service   ServiceIdentity `json:"service"`
	Host      HostIdentity    `json:"host"`
	Event     EventInfo       `json:"event"`
	Message   string          `json:"message"`
	Error     *ErrorDetail    `json:"error,omitempty"`
	Fault     *FaultRef       `json:"fault,omitempty"`
	HTTP      *HTTPContext    `json:"http,omitempty"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
}

// Log levels accepted by the ingestion pipeline.
const (
	LevelFatal = "fatal"
	LevelError = "error"
	LevelWarn  = "warn"
	LevelInfo  = "info"
	LevelDebug = "debug"
)

// ServiceIdentity identifies the emitting service.
type ServiceIdentity struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// HostIdentity carries the synthetic per-instance host name.
type HostIdentity struct {
	Name string `json:"name"`
}

// EventInfo classifies the event stream and originating module.
type EventInfo struct {
	Dataset string `json:"dataset"`
	Module  string `json:"module"`
}

// ErrorDetail describes an error, real or fabricated.
type ErrorDetail struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	StackTrace string `json:"stack_trace,omitempty"`
}

// FaultRef links a record to the fault that produced it.
type FaultRef struct {
	Name string `json:"name"`
}

// HTTPContext records the request/response pair an event belongs to.
type HTTPContext struct {
	Request  HTTPRequestInfo  `json:"request"`
	Response HTTPResponseInfo `json:"response"`
}

type HTTPRequestInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type HTTPResponseInfo struct {
	StatusCode int   `json:"status_code"`
	DurationMS int64 `json:"duration_ms"`
}
