package models

import (
	"time"

	"gorm.io/datatypes"
)

type Note struct {
	ID         uint64          `gorm:"column:id;primary_key" json:"id"`
	OwnerID    uint64          `gorm:"column:owner_id;not null;index:idx_owner" json:"owner_id"`
	Title      string          `gorm:"column:title;type:varchar(255);not null;default:''" json:"title"`
	CategoryID *uint64         `gorm:"column:category_id;index" json:"category_id"`
	Category   *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags       datatypes.JSON  `gorm:"column:tags;type:json" json:"tags"`
	Content    string          `gorm:"column:content;type:text" json:"content"`
	Summary    string          `gorm:"column:summary;type:text" json:"summary"`
	// ReminderDate 只有日期精度 没有时间部分
	ReminderDate *datatypes.Date `gorm:"column:reminder_date;type:date;index" json:"reminder_date"`
	IsFavorite   bool            `gorm:"column:is_favorite;not null;default:false" json:"is_favorite"`
	// VersionSeq 服务端分配的单调版本计数 所有建版本路径共用
	VersionSeq uint      `gorm:"column:version_seq;not null;default:0" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (n Note) TableName() string {
	return "notes"
}
