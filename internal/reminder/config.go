package reminder

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultTimezone      = "America/New_York"
	defaultWindowMinutes = 6
)

// Slot 描述一个提醒时段：目标时刻、主题和正文行。
type Slot struct {
	ID      string   `json:"id"`
	Time24h string   `json:"time24h"`
	Subject string   `json:"subject"`
	Lines   []string `json:"lines"`
}

// Config 是提醒任务的完整配置载荷，由 JSON 文件显式注入，
// 不依赖任何包级可变状态。
type Config struct {
	Timezone         string `json:"timezone"`
	WindowMinutes    int    `json:"windowMinutes"`
	DefaultRecipient string `json:"defaultRecipient"`
	Slots            []Slot `json:"slots"`
}

// LoadConfig 从 JSON 文件读取提醒配置，并为缺失项补默认值。
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read reminder config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse reminder config: %w", err)
	}

	if strings.TrimSpace(cfg.Timezone) == "" {
		cfg.Timezone = defaultTimezone
	}
	if cfg.WindowMinutes <= 0 {
		cfg.WindowMinutes = defaultWindowMinutes
	}

	return cfg, nil
}

// Location 解析配置里的时区名称。
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", c.Timezone, err)
	}
	return loc, nil
}
