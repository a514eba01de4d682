package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/handler"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB) *gin.Engine {
	r := gin.Default()
	a := handler.NewAPI(gdb)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		habits := api.Group("/habits")
		{
			habits.GET("", a.ListHabits)
			habits.POST("/:id/status", a.LogHabitStatus)
			habits.GET("/:id/logs", a.ListHabitLogs)
			habits.DELETE("/:id/logs/:date", a.RemoveHabitLog)
		}

		wins := api.Group("/wins")
		{
			wins.GET("", a.ListWins)
			wins.POST("/:id/toggle", a.ToggleWin)
			wins.DELETE("/:id/logs/:date", a.RemoveWinLog)
		}

		journal := api.Group("/journal")
		{
			journal.GET("", a.GetJournalEntry)
			journal.PUT("", a.SaveJournalEntry)
			journal.GET("/preview", a.PreviewJournalEntry)
			journal.GET("/search", a.SearchJournal)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", a.ListProjects)
			projects.GET("/:id/prints", a.ListPrintLogs)
			projects.POST("/:id/prints", a.AddPrintLog)
		}

		api.GET("/pillars", a.ListPillars)
		api.GET("/anchors", a.ListAnchors)

		api.GET("/settings/:key", a.GetSetting)
		api.PUT("/settings/:key", a.SetSetting)

		api.POST("/reset", a.ResetTrackerData)
	}

	return r
}
