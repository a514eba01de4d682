package service

import (
	"time"

	"github.com/lifelog/internal/db"
)

const (
	// dateKeyFormat 是所有日志日期的存储格式，字典序等价于时间序。
	dateKeyFormat = "2006-01-02"
	// lookbackDays 限定宽限模式连胜扫描的最大回看窗口。
	lookbackDays = 120
	// weeklyGraceQuota 是每个自然周允许的宽限次数上限。
	weeklyGraceQuota = 2
)

// DateKey 返回 t 对应的 ISO-8601 日期键。
func DateKey(t time.Time) string {
	return t.Format(dateKeyFormat)
}

// runStreak 按"严格连续"策略计算当前连胜。
// 输入按 entry_date 降序；done/grace 行累加，遇到 miss 行或日期断档即停止。
// 断档（两行之间缺了某一天）等价于那天没有记录。
func runStreak(logs []db.HabitLog) int {
	streak := 0
	expected := ""

	for _, log := range logs {
		if expected != "" && log.EntryDate != expected {
			break
		}
		if log.Status != db.HabitStatusDone && log.Status != db.HabitStatusGrace {
			break
		}
		streak++
		expected = previousDateKey(log.EntryDate)
	}

	return streak
}

// lookbackStreak 按"宽限模式"策略计算当前连胜。
// 从 today 起逐日回看至多 lookbackDays 天：有完成记录则累加并清零连续缺勤；
// 无记录时，宽限关闭或连续缺两天则终止。被宽限的缺勤日只有在更早一侧
// 还有完成记录时才计入连胜，末尾悬空的缺勤日不算。
func lookbackStreak(completed map[string]bool, today time.Time, graceMode bool) int {
	streak := 0
	misses := 0
	forgiven := 0

	for i := 0; i < lookbackDays; i++ {
		day := DateKey(today.AddDate(0, 0, -i))
		if completed[day] {
			streak += forgiven + 1
			forgiven = 0
			misses = 0
			continue
		}

		misses++
		if !graceMode || misses >= 2 {
			break
		}
		forgiven++
	}

	return streak
}

// weekStartKey 返回 today 所在自然周的起始日期键。
// 一周从周日开始：直接减去 today 的 weekday 天数，不使用 ISO 周号。
func weekStartKey(today time.Time) string {
	return DateKey(today.AddDate(0, 0, -int(today.Weekday())))
}

// graceLeftFrom 由本周已用次数推出剩余宽限额度，永不为负。
func graceLeftFrom(used int) int {
	left := weeklyGraceQuota - used
	if left < 0 {
		return 0
	}
	return left
}

func previousDateKey(key string) string {
	t, err := time.Parse(dateKeyFormat, key)
	if err != nil {
		return ""
	}
	return DateKey(t.AddDate(0, 0, -1))
}
