package db

import "gorm.io/gorm"

// AppSetting 存储应用级键值对设置。
type AppSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (AppSetting) TableName() string {
	return "app_settings"
}

const (
	// SettingKeyEmail 表示提醒邮件的默认收件地址。
	SettingKeyEmail = "email"
	// SettingKeyReminderMorning 表示晨间提醒时间（HH:MM）。
	SettingKeyReminderMorning = "reminder_morning"
	// SettingKeyReminderEvening 表示晚间提醒时间（HH:MM）。
	SettingKeyReminderEvening = "reminder_evening"
	// SettingKeyGraceMode 表示是否启用宽限模式（"1" 为开启）。
	SettingKeyGraceMode = "grace_mode"
)
