package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/service"
)

// ListPillars 返回全部支柱
func (a *API) ListPillars(c *gin.Context) {
	pillars, err := a.anchors.Pillars()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取支柱列表失败")
		return
	}

	items := make([]gin.H, 0, len(pillars))
	for _, pillar := range pillars {
		items = append(items, gin.H{"id": pillar.ID, "name": pillar.Name})
	}

	c.JSON(http.StatusOK, gin.H{"pillars": items})
}

// ListAnchors 返回锚点列表，可按星期过滤
func (a *API) ListAnchors(c *gin.Context) {
	var weekday *int
	if raw := strings.TrimSpace(c.Query("weekday")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "无效的星期取值")
			return
		}
		weekday = &parsed
	}

	anchors, err := a.anchors.List(weekday)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWeekday) {
			respondError(c, http.StatusBadRequest, "无效的星期取值")
			return
		}
		respondError(c, http.StatusInternalServerError, "获取锚点列表失败")
		return
	}

	items := make([]gin.H, 0, len(anchors))
	for _, anchor := range anchors {
		items = append(items, gin.H{
			"id":          anchor.ID,
			"title":       anchor.Title,
			"weekday":     anchor.Weekday,
			"category":    anchor.Category,
			"time_of_day": anchor.TimeOfDay,
		})
	}

	c.JSON(http.StatusOK, gin.H{"anchors": items})
}
