package service

import (
	"errors"
	"testing"

	"github.com/lifelog/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupProjectTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Project{}, &db.PrintLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestProjectListWithPrintCount(t *testing.T) {
	gdb, cleanup := setupProjectTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)

	project := db.Project{Title: "桌面收纳架", Pillar: "Creativity"}
	if err := gdb.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	idle := db.Project{Title: "手机支架", Pillar: "Health"}
	if err := gdb.Create(&idle).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	if _, err := svc.AddPrintLog(project.ID, "第一版打印，底座翘边"); err != nil {
		t.Fatalf("AddPrintLog returned error: %v", err)
	}
	if _, err := svc.AddPrintLog(project.ID, "第二版打印，调低了速度"); err != nil {
		t.Fatalf("AddPrintLog returned error: %v", err)
	}

	projects, err := svc.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].PrintCount != 2 {
		t.Fatalf("expected print count 2, got %d", projects[0].PrintCount)
	}
	if projects[1].PrintCount != 0 {
		t.Fatalf("expected print count 0, got %d", projects[1].PrintCount)
	}
}

func TestAddPrintLogValidation(t *testing.T) {
	gdb, cleanup := setupProjectTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)

	project := db.Project{Title: "花盆"}
	if err := gdb.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	if _, err := svc.AddPrintLog(project.ID, "   "); !errors.Is(err, ErrPrintNotesMissing) {
		t.Fatalf("expected ErrPrintNotesMissing, got %v", err)
	}
	if _, err := svc.AddPrintLog(404, "备注"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestPrintsOrderedNewestFirst(t *testing.T) {
	gdb, cleanup := setupProjectTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)

	project := db.Project{Title: "齿轮"}
	if err := gdb.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	first, err := svc.AddPrintLog(project.ID, "初版")
	if err != nil {
		t.Fatalf("AddPrintLog returned error: %v", err)
	}
	second, err := svc.AddPrintLog(project.ID, "修正版")
	if err != nil {
		t.Fatalf("AddPrintLog returned error: %v", err)
	}

	logs, err := svc.Prints(project.ID)
	if err != nil {
		t.Fatalf("Prints returned error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].ID != second.ID || logs[1].ID != first.ID {
		t.Fatalf("expected newest first, got %d then %d", logs[0].ID, logs[1].ID)
	}

	if _, err := svc.Prints(404); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
