package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/db"
	"github.com/lifelog/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouterTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	models := []interface{}{
		&db.Pillar{}, &db.Habit{}, &db.HabitLog{},
		&db.MinimumWin{}, &db.WinLog{},
		&db.Anchor{}, &db.JournalEntry{},
		&db.Project{}, &db.PrintLog{}, &db.AppSetting{},
	}
	if err := gdb.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := db.SeedDefaults(gdb); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, cleanup := setupRouterTestDB(t)
	defer cleanup()

	r := SetupRouter(gdb)
	rr := performJSON(t, r, http.MethodGet, "/ping", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestHabitStatusFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, cleanup := setupRouterTestDB(t)
	defer cleanup()

	r := SetupRouter(gdb)

	var seeded db.Habit
	if err := gdb.First(&seeded).Error; err != nil {
		t.Fatalf("expected seeded habit: %v", err)
	}

	// 连胜重算以真实时钟为基准，所以打卡日期必须用今天
	today := service.DateKey(time.Now())

	rr := performJSON(t, r, http.MethodPost, "/api/habits/1/status",
		map[string]string{"date": today, "status": "done"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var response struct {
		Habit struct {
			Streak int `json:"streak"`
		} `json:"habit"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Habit.Streak < 1 {
		t.Fatalf("expected streak >= 1, got %d", response.Habit.Streak)
	}

	rr = performJSON(t, r, http.MethodGet, "/api/habits/1/logs", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	rr = performJSON(t, r, http.MethodDelete, "/api/habits/1/logs/"+today, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestHabitStatusValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, cleanup := setupRouterTestDB(t)
	defer cleanup()

	r := SetupRouter(gdb)

	rr := performJSON(t, r, http.MethodPost, "/api/habits/1/status",
		map[string]string{"date": "2026-08-26", "status": "almost"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	rr = performJSON(t, r, http.MethodPost, "/api/habits/9999/status",
		map[string]string{"date": "2026-08-26", "status": "done"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, cleanup := setupRouterTestDB(t)
	defer cleanup()

	r := SetupRouter(gdb)

	rr := performJSON(t, r, http.MethodPut, "/api/settings/email",
		map[string]string{"value": "me@example.com"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	rr = performJSON(t, r, http.MethodGet, "/api/settings/email", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var response struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Value != "me@example.com" {
		t.Fatalf("unexpected value: %q", response.Value)
	}
}

func TestResetEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, cleanup := setupRouterTestDB(t)
	defer cleanup()

	r := SetupRouter(gdb)

	rr := performJSON(t, r, http.MethodPost, "/api/habits/1/status",
		map[string]string{"date": "2026-08-26", "status": "done"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	rr = performJSON(t, r, http.MethodPost, "/api/reset", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var count int64
	if err := gdb.Model(&db.HabitLog{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count logs: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected logs cleared after reset, got %d", count)
	}
}
