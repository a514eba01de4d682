package db

import (
	"fmt"

	"gorm.io/gorm"
)

var seedPillars = []string{"Health", "Career", "Relationships", "Creativity"}

var seedAnchors = []Anchor{
	{Title: "Monday planning sprint", Weekday: 1, Category: "Weekly Anchor", TimeOfDay: "19:00"},
	{Title: "Wednesday progress checkpoint", Weekday: 3, Category: "Weekly Anchor", TimeOfDay: "19:30"},
	{Title: "Friday weekly review", Weekday: 5, Category: "Weekly Anchor", TimeOfDay: "18:00"},
	{Title: "Sunday reset routine", Weekday: 0, Category: "Weekly Anchor", TimeOfDay: "10:00"},
}

var seedWins = []string{"Hydrate", "Move for 20 minutes", "Deep work block"}

var seedHabits = []struct {
	Name   string
	Pillar string
}{
	{Name: "Sleep before 11pm", Pillar: "Health"},
	{Name: "No-scroll morning", Pillar: "Career"},
	{Name: "Read 10 pages", Pillar: "Creativity"},
}

var seedProjects = []Project{
	{Title: "Desk organizer", Pillar: "Creativity", Summary: "Modular tray system for cables + tools."},
	{Title: "Phone stand", Pillar: "Health", Summary: "Ergonomic angled stand for focus sessions."},
}

var seedSettings = []AppSetting{
	{Key: SettingKeyGraceMode, Value: "1"},
	{Key: SettingKeyEmail, Value: ""},
	{Key: SettingKeyReminderMorning, Value: "07:00"},
	{Key: SettingKeyReminderEvening, Value: "20:30"},
}

// SeedDefaults 向空的参考数据表写入固定默认值。
// 每张表只做一次计数检查：已有数据则整表跳过，因此重复调用是幂等的。
// 插入顺序遵守外键依赖（先 pillars 后引用它的 habits）。
func SeedDefaults(gdb *gorm.DB) error {
	empty, err := tableEmpty(gdb, &Pillar{})
	if err != nil {
		return err
	}
	if empty {
		for _, name := range seedPillars {
			if err := gdb.Create(&Pillar{Name: name}).Error; err != nil {
				return fmt.Errorf("seed pillar %s: %w", name, err)
			}
		}
	}

	empty, err = tableEmpty(gdb, &Anchor{})
	if err != nil {
		return err
	}
	if empty {
		for _, anchor := range seedAnchors {
			record := anchor
			if err := gdb.Create(&record).Error; err != nil {
				return fmt.Errorf("seed anchor %s: %w", anchor.Title, err)
			}
		}
	}

	empty, err = tableEmpty(gdb, &MinimumWin{})
	if err != nil {
		return err
	}
	if empty {
		for _, title := range seedWins {
			if err := gdb.Create(&MinimumWin{Title: title}).Error; err != nil {
				return fmt.Errorf("seed minimum win %s: %w", title, err)
			}
		}
	}

	empty, err = tableEmpty(gdb, &Habit{})
	if err != nil {
		return err
	}
	if empty {
		for _, habit := range seedHabits {
			var pillar Pillar
			if err := gdb.Where("name = ?", habit.Pillar).First(&pillar).Error; err != nil {
				return fmt.Errorf("seed habit %s: resolve pillar: %w", habit.Name, err)
			}
			if err := gdb.Create(&Habit{Name: habit.Name, PillarID: pillar.ID, GraceLeft: 2}).Error; err != nil {
				return fmt.Errorf("seed habit %s: %w", habit.Name, err)
			}
		}
	}

	empty, err = tableEmpty(gdb, &Project{})
	if err != nil {
		return err
	}
	if empty {
		for _, project := range seedProjects {
			record := project
			if err := gdb.Create(&record).Error; err != nil {
				return fmt.Errorf("seed project %s: %w", project.Title, err)
			}
		}
	}

	empty, err = tableEmpty(gdb, &AppSetting{})
	if err != nil {
		return err
	}
	if empty {
		for _, setting := range seedSettings {
			record := setting
			if err := gdb.Create(&record).Error; err != nil {
				return fmt.Errorf("seed setting %s: %w", setting.Key, err)
			}
		}
	}

	return nil
}

func tableEmpty(gdb *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := gdb.Model(model).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count seed table: %w", err)
	}
	return count == 0, nil
}
