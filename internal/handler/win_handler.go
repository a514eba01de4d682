package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/service"
)

type winTogglePayload struct {
	Date string `json:"date"`
	Done *bool  `json:"done"`
}

// ListWins 返回某天的最小胜利及完成情况，日期缺省为今天
func (a *API) ListWins(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = service.DateKey(time.Now())
	}

	wins, err := a.wins.ListForDate(date)
	if err != nil {
		handleWinError(c, err)
		return
	}

	items := make([]gin.H, 0, len(wins))
	for _, win := range wins {
		items = append(items, gin.H{
			"id":    win.ID,
			"title": win.Title,
			"done":  win.Done,
		})
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "wins": items})
}

// ToggleWin 写入某天的完成标记；done 缺省为 true
func (a *API) ToggleWin(c *gin.Context) {
	winID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的胜利ID")
		return
	}

	var payload winTogglePayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	date := strings.TrimSpace(payload.Date)
	if date == "" {
		date = service.DateKey(time.Now())
	}

	done := true
	if payload.Done != nil {
		done = *payload.Done
	}

	if err := a.wins.Toggle(winID, date, done); err != nil {
		handleWinError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": winID, "date": date, "done": done})
}

// RemoveWinLog 删除某天的完成记录
func (a *API) RemoveWinLog(c *gin.Context) {
	winID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的胜利ID")
		return
	}

	if err := a.wins.Remove(winID, c.Param("date")); err != nil {
		handleWinError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": true})
}

func handleWinError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWinNotFound):
		respondError(c, http.StatusNotFound, "最小胜利不存在")
	case errors.Is(err, service.ErrInvalidDate):
		respondError(c, http.StatusBadRequest, "无效的日期格式")
	default:
		respondError(c, http.StatusInternalServerError, "操作失败")
	}
}
