package reminder

import (
	"encoding/json"
	"fmt"
	"os"
)

// SentLedger 记录"某时段在某天已发送"，跨调度周期去重。
// 调度间隔短于两倍容差窗口时，同一时段会连续两次落入窗口，
// 没有这份账本就会重复发信。发送失败不会入账，下一个周期自然重试。
type SentLedger struct {
	path string
	sent map[string]bool
}

// OpenSentLedger 读取账本文件；文件不存在视为空账本。
func OpenSentLedger(path string) (*SentLedger, error) {
	ledger := &SentLedger{path: path, sent: make(map[string]bool)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ledger, nil
		}
		return nil, fmt.Errorf("read sent ledger: %w", err)
	}

	if err := json.Unmarshal(data, &ledger.sent); err != nil {
		return nil, fmt.Errorf("parse sent ledger: %w", err)
	}

	return ledger, nil
}

// Sent 报告该时段在该日期是否已发送过。
func (l *SentLedger) Sent(slotID, dateKey string) bool {
	return l.sent[ledgerKey(slotID, dateKey)]
}

// MarkSent 记录一次成功发送并立即落盘。
func (l *SentLedger) MarkSent(slotID, dateKey string) error {
	l.sent[ledgerKey(slotID, dateKey)] = true

	data, err := json.MarshalIndent(l.sent, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sent ledger: %w", err)
	}

	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write sent ledger: %w", err)
	}

	return nil
}

func ledgerKey(slotID, dateKey string) string {
	return slotID + "@" + dateKey
}
