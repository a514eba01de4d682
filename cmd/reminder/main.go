package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lifelog/internal/reminder"
)

// 一次性提醒任务：由外部调度器周期触发，自身判断当前时刻
// 是否落在某个提醒时段的容差窗口内，命中则发信并记账。
func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("REMINDERS_CONFIG")
	if configPath == "" {
		configPath = "reminders/reminders.json"
	}

	cfg, err := reminder.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load reminder config: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("failed to resolve timezone: %v", err)
	}

	runID := uuid.NewString()
	now := time.Now().In(loc)
	dateKey := now.Format("2006-01-02")

	due := reminder.Due(cfg, now)
	if len(due) == 0 {
		log.Printf("[%s] no reminder slot due at %s", runID, now.Format("15:04"))
		return
	}

	ledgerPath := filepath.Join(filepath.Dir(configPath), "sent.json")
	ledger, err := reminder.OpenSentLedger(ledgerPath)
	if err != nil {
		log.Fatalf("failed to open sent ledger: %v", err)
	}

	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "LifeLog"
	}
	mailer := reminder.NewMailer(
		os.Getenv("SENDGRID_API_KEY"),
		os.Getenv("SENDGRID_FROM_EMAIL"),
		fromName,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	failed := false
	for _, slot := range due {
		if ledger.Sent(slot.ID, dateKey) {
			log.Printf("[%s] already sent today, skipping: %s", runID, slot.ID)
			continue
		}

		msg := reminder.Message{
			To:      cfg.DefaultRecipient,
			Subject: fmt.Sprintf("%s (%s)", slot.Subject, dateKey),
			Body:    strings.Join(slot.Lines, "\n"),
		}
		if err := mailer.Send(ctx, msg); err != nil {
			log.Printf("[%s] send failed for %s: %v", runID, slot.ID, err)
			failed = true
			continue
		}

		if err := ledger.MarkSent(slot.ID, dateKey); err != nil {
			log.Printf("[%s] ledger write failed for %s: %v", runID, slot.ID, err)
			failed = true
			continue
		}

		log.Printf("[%s] sent: %s", runID, slot.ID)
	}

	if failed {
		os.Exit(1)
	}
}
