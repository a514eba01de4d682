package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTime24h 把 "HH:MM" 解析成零点起的分钟数。
func ParseTime24h(value string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}

	return hour*60 + minute, nil
}

// Due 返回目标时刻落在 now 对称容差窗口内的时段子集。
// 比较在"零点起分钟数"维度进行；时段配置非法时跳过该时段。
// 纯函数，可由外部调度器反复调用。
func Due(cfg Config, now time.Time) []Slot {
	nowMin := minutesSinceMidnight(now)

	var due []Slot
	for _, slot := range cfg.Slots {
		targetMin, err := ParseTime24h(slot.Time24h)
		if err != nil {
			continue
		}
		if withinWindow(nowMin, targetMin, cfg.WindowMinutes) {
			due = append(due, slot)
		}
	}

	return due
}

func minutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func withinWindow(nowMin, targetMin, windowMin int) bool {
	diff := nowMin - targetMin
	if diff < 0 {
		diff = -diff
	}
	return diff <= windowMin
}
