package database

import (
	"errors"
	"fmt"
	"time"

	"glitchmart/models"

	"gorm.io/gorm"
)

// ErrFaultNotFound indicates no store row exists for a fault name.
// With a correctly seeded database this is a configuration defect.
var ErrFaultNotFound = errors.New("fault not found")

// FaultStore reads and writes the persisted fault rows. It holds no
// cached state; every call is a fresh round trip to the store.
type FaultStore struct {
	db *gorm.DB
}

// NewFaultStore constructs a fault store
func NewFaultStore(db *gorm.DB) *FaultStore {
	return &FaultStore{db: db}
}

// GetAll returns the enabled flag of every fault row in the store.
func (s *FaultStore) GetAll() (map[string]bool, error) {
	var faults []models.Fault
	if err := s.db.Find(&faults).Error; err != nil {
		return nil, fmt.Errorf("failed to list faults: %w", err)
	}

	result := make(map[string]bool, len(faults))
	for _, f := range faults {
		result[f.Name] = f.IsEnabled
	}
	return result, nil
}

// GetOne returns the enabled flag for a single fault row.
func (s *FaultStore) GetOne(name string) (bool, error) {
	var fault models.Fault
	if err := s.db.First(&fault, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("%w: %s", ErrFaultNotFound, name)
		}
		return false, fmt.Errorf("failed to get fault %s: %w", name, err)
	}
	return fault.IsEnabled, nil
}

// SetOne updates the enabled flag and updated_at of an existing fault row.
// The row must already exist; an update that affects zero rows is treated
// as a store failure rather than a silent no-op.
func (s *FaultStore) SetOne(name string, enabled bool) error {
	var fault models.Fault
	if err := s.db.First(&fault, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrFaultNotFound, name)
		}
		return fmt.Errorf("failed to check fault %s: %w", name, err)
	}

	// Map form so a false value is not skipped as a zero value.
	res := s.db.Model(&models.Fault{}).
		Where("name = ?", name).
		Updates(map[string]any{
			"is_enabled": enabled,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update fault %s: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("failed to update fault %s: no rows affected", name)
	}
	return nil
}
