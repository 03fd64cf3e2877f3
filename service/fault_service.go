package service

import (
	"errors"
	"fmt"
	"log"

	"glitchmart/database"
	"glitchmart/models"
)

// ErrInvalidFault indicates a fault name outside the fixed closed set.
var ErrInvalidFault = errors.New("invalid fault name")

// FaultService evaluates and mutates fault state on top of the store.
// Reads are fail-open: a fault whose state cannot be determined is
// treated as disabled so fault queries never break the request path.
// Writes are fail-closed: an operator toggling a fault must learn when
// the toggle did not take effect.
type FaultService struct {
	store *database.FaultStore
}

// NewFaultService constructs a fault service
func NewFaultService(store *database.FaultStore) *FaultService {
	return &FaultService{store: store}
}

// GetStatus returns the total snapshot of every fault. Names missing
// from the store default to false; a store failure is logged and yields
// the all-false default rather than an error.
func (s *FaultService) GetStatus() models.FaultStatus {
	var status models.FaultStatus

	all, err := s.store.GetAll()
	if err != nil {
		log.Printf("Error fetching fault status, serving defaults: %v", err)
		return status
	}

	for _, name := range models.FaultNames {
		if enabled, ok := all[name]; ok {
			status.Set(name, enabled)
		}
	}
	return status
}

// IsEnabled reports whether a fault is enabled, treating any store
// failure (including a missing row) as disabled.
func (s *FaultService) IsEnabled(name string) bool {
	enabled, err := s.store.GetOne(name)
	if err != nil {
		log.Printf("Error checking fault %s, treating as disabled: %v", name, err)
		return false
	}
	return enabled
}

// SetStatus flips a fault and returns a fresh read-after-write snapshot.
// The name must belong to the fixed set; store failures propagate.
func (s *FaultService) SetStatus(name string, enabled bool) (models.FaultStatus, error) {
	if !models.IsValidFaultName(name) {
		return models.FaultStatus{}, fmt.Errorf("%w: %s", ErrInvalidFault, name)
	}

	if err := s.store.SetOne(name, enabled); err != nil {
		return models.FaultStatus{}, err
	}

	// Re-read instead of trusting the write's return value.
	return s.GetStatus(), nil
}
