package handler

import (
	"github.com/lifelog/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	habits   *service.HabitService
	wins     *service.WinService
	journals *service.JournalService
	projects *service.ProjectService
	anchors  *service.AnchorService
	settings *service.SettingService
	reset    *service.ResetService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB) *API {
	settingService := service.NewSettingService(gdb)

	return &API{
		db:       gdb,
		habits:   service.NewHabitService(gdb, settingService),
		wins:     service.NewWinService(gdb),
		journals: service.NewJournalService(gdb),
		projects: service.NewProjectService(gdb),
		anchors:  service.NewAnchorService(gdb),
		settings: settingService,
		reset:    service.NewResetService(gdb),
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
