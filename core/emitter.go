package core

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"glitchmart/models"

	"github.com/prometheus/client_golang/prometheus"
)

// Emitter ships log records to the external ingestion endpoint.
// Delivery is at-most-once, best-effort: Emit never fails the caller,
// it only records diagnostics locally. There is no retry, batching or
// backpressure.
type Emitter struct {
	url    string
	apiKey string
	index  string
	client *http.Client
}

// NewEmitter constructs an emitter for the given sink. An empty url or
// apiKey puts the emitter in skip mode: Emit becomes a logged no-op.
func NewEmitter(url, apiKey, index string, timeout time.Duration) *Emitter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Emitter{
		url:    strings.TrimRight(url, "/"),
		apiKey: apiKey,
		index:  index,
		client: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether the sink endpoint and credential are set.
func (e *Emitter) Configured() bool {
	return e.url != "" && e.apiKey != ""
}

// Emit serializes the record and POSTs it to the ingestion endpoint as a
// single document. Failures of any kind are logged locally and swallowed;
// the request path that produced the record must never be affected.
func (e *Emitter) Emit(record models.LogRecord) {
	if !e.Configured() {
		logEmitSkipped.Inc()
		log.Println("Log sink URL or API key is not configured. Skipping log.")
		return
	}

	body, err := json.Marshal(record)
	if err != nil {
		logEmitFailures.Inc()
		log.Printf("Failed to serialize log entry: %v", err)
		return
	}

	timer := prometheus.NewTimer(logEmitDuration)
	defer timer.ObserveDuration()

	req, err := http.NewRequest(http.MethodPost, e.url+"/"+e.index+"/_doc", bytes.NewReader(body))
	if err != nil {
		logEmitFailures.Inc()
		log.Printf("Failed to build log sink request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ApiKey "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		logEmitFailures.Inc()
		log.Printf("Error sending log entry to sink: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logEmitFailures.Inc()
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("Failed to send log entry to sink. Status: %d Body: %s", resp.StatusCode, string(respBody))
		return
	}

	logsEmitted.Inc()
}

// EmitGroup dispatches several records concurrently and waits for all of
// them. Arrival order at the sink is not guaranteed.
func (e *Emitter) EmitGroup(records []models.LogRecord) {
	var wg sync.WaitGroup
	for _, record := range records {
		wg.Add(1)
		go func(r models.LogRecord) {
			defer wg.Done()
			e.Emit(r)
		}(record)
	}
	wg.Wait()
}
