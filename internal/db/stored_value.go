package db

import "time"

// StoredValue 以键值对形式保存一份完整的 JSON 文档。
// 每个内容键只对应一行，写入时整体覆盖。
type StoredValue struct {
	ID        uint      `gorm:"primarykey"`
	Key       string    `gorm:"size:100;uniqueIndex;not null"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName 自定义表名以保持命名一致。
func (StoredValue) TableName() string {
	return "stored_values"
}
