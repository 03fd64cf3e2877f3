package service

import (
	"errors"
	"testing"

	"glitchmart/database"
	"glitchmart/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// In-memory SQLite is per-connection; keep the pool at one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestFaultService(t *testing.T) (*FaultService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewFaultService(database.NewFaultStore(db)), db
}

func TestFaultServiceReadAfterWrite(t *testing.T) {
	svc, _ := newTestFaultService(t)

	for _, name := range models.FaultNames {
		status, err := svc.SetStatus(name, true)
		if err != nil {
			t.Fatalf("SetStatus(%s, true): %v", name, err)
		}
		if !status.Get(name) {
			t.Fatalf("snapshot should reflect %s enabled", name)
		}
		if !svc.IsEnabled(name) {
			t.Fatalf("IsEnabled(%s) should be true after enable", name)
		}

		status, err = svc.SetStatus(name, false)
		if err != nil {
			t.Fatalf("SetStatus(%s, false): %v", name, err)
		}
		if status.Get(name) {
			t.Fatalf("snapshot should reflect %s disabled", name)
		}
		if svc.IsEnabled(name) {
			t.Fatalf("IsEnabled(%s) should be false after disable", name)
		}
	}
}

func TestFaultServiceInvalidFaultLeavesStoreUntouched(t *testing.T) {
	svc, db := newTestFaultService(t)

	if _, err := svc.SetStatus("bogus", true); !errors.Is(err, ErrInvalidFault) {
		t.Fatalf("expected ErrInvalidFault, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Fault{}).Where("is_enabled = ?", true).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no enabled faults after rejected mutation, got %d", count)
	}
}

func TestFaultServiceGetStatusDefaultsMissingRows(t *testing.T) {
	svc, db := newTestFaultService(t)

	// Wipe the seeded rows to simulate a store that was never seeded.
	if err := db.Where("1 = 1").Delete(&models.Fault{}).Error; err != nil {
		t.Fatalf("delete: %v", err)
	}

	status := svc.GetStatus()
	if status.DisableAddToCart || status.JamPagination || status.FakeOutOfStock {
		t.Fatalf("expected all-false snapshot from empty store, got %+v", status)
	}
}

func TestFaultServiceFailOpenOnUnreachableStore(t *testing.T) {
	svc, db := newTestFaultService(t)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reads fail open.
	status := svc.GetStatus()
	if status.DisableAddToCart || status.JamPagination || status.FakeOutOfStock {
		t.Fatalf("expected all-false snapshot from unreachable store, got %+v", status)
	}
	if svc.IsEnabled(models.FaultJamPagination) {
		t.Fatalf("IsEnabled should report false when the store is unreachable")
	}

	// Writes fail closed.
	if _, err := svc.SetStatus(models.FaultJamPagination, true); err == nil {
		t.Fatalf("SetStatus should surface store failures")
	}
}
