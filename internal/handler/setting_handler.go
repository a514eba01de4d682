package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/service"
)

type settingPayload struct {
	Value string `json:"value"`
}

// GetSetting 读取设置值，键不存在时返回空字符串
func (a *API) GetSetting(c *gin.Context) {
	key := c.Param("key")

	value, err := a.settings.Get(key)
	if err != nil {
		if errors.Is(err, service.ErrSettingKeyMissing) {
			respondError(c, http.StatusBadRequest, "设置键不能为空")
			return
		}
		respondError(c, http.StatusInternalServerError, "读取设置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

// SetSetting 写入设置值，存在即覆盖
func (a *API) SetSetting(c *gin.Context) {
	key := c.Param("key")

	var payload settingPayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	if err := a.settings.Set(key, payload.Value); err != nil {
		if errors.Is(err, service.ErrSettingKeyMissing) {
			respondError(c, http.StatusBadRequest, "设置键不能为空")
			return
		}
		respondError(c, http.StatusInternalServerError, "保存设置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "value": payload.Value})
}

// ResetTrackerData 清空全部日志数据并复位习惯统计
func (a *API) ResetTrackerData(c *gin.Context) {
	if err := a.reset.ResetTrackerData(); err != nil {
		respondError(c, http.StatusInternalServerError, "重置数据失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reset": true})
}
