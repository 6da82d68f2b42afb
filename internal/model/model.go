package model

import (
	"time"
)

// Model 所有表共用的主键与时间戳字段，删除均为硬删除
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (m *Model) CreateTime() int64 {
	return m.CreatedAt.UnixMilli()
}

func (m *Model) UpdateTime() int64 {
	return m.UpdatedAt.UnixMilli()
}

// All 需要自动迁移的模型列表，父表在前
func All() []any {
	return []any{
		&Camper{},
		&Activity{},
		&Signup{},
	}
}
