package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init 初始化数据库连接、执行自动迁移并写入种子数据。
// databasePath 为空时将回退到默认值 lifelog.db。
// 打开失败或建表失败属于致命启动错误，直接返回给调用方处理。
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "lifelog.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	// WAL 日志模式保证崩溃一致性，外键约束防止孤儿日志行
	dsn := path + "?_journal_mode=WAL&_foreign_keys=on"

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	// 自动迁移模式，为核心模型创建表；只新增，不删除也不改列
	if err = DB.AutoMigrate(
		&Pillar{},
		&Habit{},
		&HabitLog{},
		&MinimumWin{},
		&WinLog{},
		&Anchor{},
		&JournalEntry{},
		&Project{},
		&PrintLog{},
		&AppSetting{},
	); err != nil {
		return err
	}

	return SeedDefaults(DB)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
