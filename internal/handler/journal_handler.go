package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/service"
)

type journalSavePayload struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// GetJournalEntry 返回某天的日记，没有记录时返回空内容
func (a *API) GetJournalEntry(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = service.DateKey(time.Now())
	}

	entry, err := a.journals.Get(date)
	if err != nil {
		handleJournalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": entry.EntryDate, "content": entry.Content})
}

// SaveJournalEntry 保存某天的日记，同一天重复保存即覆盖
func (a *API) SaveJournalEntry(c *gin.Context) {
	var payload journalSavePayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	date := strings.TrimSpace(payload.Date)
	if date == "" {
		date = service.DateKey(time.Now())
	}

	if err := a.journals.Save(date, payload.Content); err != nil {
		handleJournalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true, "date": date})
}

// PreviewJournalEntry 返回某天日记净化后的 HTML 预览
func (a *API) PreviewJournalEntry(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = service.DateKey(time.Now())
	}

	rendered, err := a.journals.Preview(date)
	if err != nil {
		handleJournalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "html": rendered})
}

// SearchJournal 按关键词检索日记
func (a *API) SearchJournal(c *gin.Context) {
	entries, err := a.journals.Search(c.Query("q"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "检索日记失败")
		return
	}

	items := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		items = append(items, gin.H{"date": entry.EntryDate, "content": entry.Content})
	}

	c.JSON(http.StatusOK, gin.H{"entries": items})
}

func handleJournalError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidDate) {
		respondError(c, http.StatusBadRequest, "无效的日期格式")
		return
	}
	respondError(c, http.StatusInternalServerError, "操作失败")
}
