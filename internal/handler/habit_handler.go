package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/db"
	"github.com/lifelog/internal/service"
)

type habitStatusPayload struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// ListHabits 返回全部习惯及当天状态
func (a *API) ListHabits(c *gin.Context) {
	habits, err := a.habits.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取习惯列表失败")
		return
	}

	items := make([]gin.H, 0, len(habits))
	for _, habit := range habits {
		items = append(items, gin.H{
			"id":           habit.ID,
			"name":         habit.Name,
			"pillar":       habit.PillarName,
			"streak":       habit.Streak,
			"grace_left":   habit.GraceLeft,
			"today_status": habit.TodayStatus,
		})
	}

	c.JSON(http.StatusOK, gin.H{"habits": items})
}

// LogHabitStatus 写入某天的习惯状态并返回重算后的习惯
func (a *API) LogHabitStatus(c *gin.Context) {
	habitID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的习惯ID")
		return
	}

	var payload habitStatusPayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	date := strings.TrimSpace(payload.Date)
	if date == "" {
		date = service.DateKey(time.Now())
	}

	habit, err := a.habits.LogStatus(habitID, date, payload.Status)
	if err != nil {
		handleHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": habitToPayload(habit)})
}

// RemoveHabitLog 删除某天的状态记录并返回重算后的习惯
func (a *API) RemoveHabitLog(c *gin.Context) {
	habitID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的习惯ID")
		return
	}

	date := c.Param("date")
	if err := a.habits.RemoveLog(habitID, date); err != nil {
		handleHabitError(c, err)
		return
	}

	habit, err := a.habits.Get(habitID)
	if err != nil {
		handleHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": true, "habit": habitToPayload(habit)})
}

// ListHabitLogs 返回习惯的状态历史，按日期降序
func (a *API) ListHabitLogs(c *gin.Context) {
	habitID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的习惯ID")
		return
	}

	logs, err := a.habits.History(habitID)
	if err != nil {
		handleHabitError(c, err)
		return
	}

	items := make([]gin.H, 0, len(logs))
	for _, log := range logs {
		items = append(items, gin.H{
			"date":   log.EntryDate,
			"status": log.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{"habit_id": habitID, "logs": items})
}

func habitToPayload(habit *db.Habit) gin.H {
	return gin.H{
		"id":         habit.ID,
		"name":       habit.Name,
		"streak":     habit.Streak,
		"grace_left": habit.GraceLeft,
	}
}

func handleHabitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHabitNotFound):
		respondError(c, http.StatusNotFound, "习惯不存在")
	case errors.Is(err, service.ErrInvalidStatus):
		respondError(c, http.StatusBadRequest, "无效的状态取值")
	case errors.Is(err, service.ErrInvalidDate):
		respondError(c, http.StatusBadRequest, "无效的日期格式")
	default:
		respondError(c, http.StatusInternalServerError, "操作失败")
	}
}
