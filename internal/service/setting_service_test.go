package service

import (
	"errors"
	"testing"

	"github.com/lifelog/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSettingTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.AppSetting{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSettingSetAndGet(t *testing.T) {
	gdb, cleanup := setupSettingTestDB(t)
	defer cleanup()

	svc := NewSettingService(gdb)

	if err := svc.Set(db.SettingKeyEmail, "me@example.com"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	value, err := svc.Get(db.SettingKeyEmail)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != "me@example.com" {
		t.Fatalf("unexpected value: %q", value)
	}

	// 覆盖写入
	if err := svc.Set(db.SettingKeyEmail, "new@example.com"); err != nil {
		t.Fatalf("Set overwrite returned error: %v", err)
	}
	value, err = svc.Get(db.SettingKeyEmail)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != "new@example.com" {
		t.Fatalf("expected later write to win, got %q", value)
	}
}

func TestSettingGetAbsentKeyReturnsEmpty(t *testing.T) {
	gdb, cleanup := setupSettingTestDB(t)
	defer cleanup()

	svc := NewSettingService(gdb)

	value, err := svc.Get("nonexistent")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != "" {
		t.Fatalf("expected empty value, got %q", value)
	}

	if _, err := svc.Get("   "); !errors.Is(err, ErrSettingKeyMissing) {
		t.Fatalf("expected ErrSettingKeyMissing, got %v", err)
	}
	if err := svc.Set("", "x"); !errors.Is(err, ErrSettingKeyMissing) {
		t.Fatalf("expected ErrSettingKeyMissing, got %v", err)
	}
}

func TestGraceModeFlag(t *testing.T) {
	gdb, cleanup := setupSettingTestDB(t)
	defer cleanup()

	svc := NewSettingService(gdb)

	if svc.GraceMode() {
		t.Fatal("expected grace mode off by default")
	}

	if err := svc.Set(db.SettingKeyGraceMode, "1"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if !svc.GraceMode() {
		t.Fatal("expected grace mode on")
	}

	if err := svc.Set(db.SettingKeyGraceMode, "0"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if svc.GraceMode() {
		t.Fatal("expected grace mode off")
	}
}
