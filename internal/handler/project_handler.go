package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/service"
)

type printLogPayload struct {
	Notes string `json:"notes"`
}

// ListProjects 返回全部项目及打印次数
func (a *API) ListProjects(c *gin.Context) {
	projects, err := a.projects.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取项目列表失败")
		return
	}

	items := make([]gin.H, 0, len(projects))
	for _, project := range projects {
		items = append(items, gin.H{
			"id":          project.ID,
			"title":       project.Title,
			"pillar":      project.Pillar,
			"summary":     project.Summary,
			"print_count": project.PrintCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{"projects": items})
}

// ListPrintLogs 返回项目的打印日志历史
func (a *API) ListPrintLogs(c *gin.Context) {
	projectID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	logs, err := a.projects.Prints(projectID)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	items := make([]gin.H, 0, len(logs))
	for _, log := range logs {
		items = append(items, gin.H{
			"id":         log.ID,
			"notes":      log.Notes,
			"created_at": log.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"project_id": projectID, "prints": items})
}

// AddPrintLog 为项目追加一条打印日志
func (a *API) AddPrintLog(c *gin.Context) {
	projectID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var payload printLogPayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	record, err := a.projects.AddPrintLog(projectID, payload.Notes)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"print": gin.H{
			"id":         record.ID,
			"notes":      record.Notes,
			"created_at": record.CreatedAt.Format(time.RFC3339),
		},
	})
}

func handleProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		respondError(c, http.StatusNotFound, "项目不存在")
	case errors.Is(err, service.ErrPrintNotesMissing):
		respondError(c, http.StatusBadRequest, "打印备注不能为空")
	default:
		respondError(c, http.StatusInternalServerError, "操作失败")
	}
}
