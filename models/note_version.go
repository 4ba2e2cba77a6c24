package models

import (
	"time"

	"gorm.io/datatypes"
)

// NoteVersion 笔记某一时刻的完整快照 只插入 不更新
type NoteVersion struct {
	ID           uint64          `gorm:"column:id;primary_key" json:"id"`
	NoteID       uint64          `gorm:"column:note_id;not null;uniqueIndex:idx_note_version" json:"note_id"`
	Title        string          `gorm:"column:title;type:varchar(255);not null;default:''" json:"title"`
	Content      string          `gorm:"column:content;type:text" json:"content"`
	Tags         datatypes.JSON  `gorm:"column:tags;type:json" json:"tags"`
	Summary      string          `gorm:"column:summary;type:text" json:"summary"`
	CategoryID   *uint64         `gorm:"column:category_id" json:"category_id"`
	ReminderDate *datatypes.Date `gorm:"column:reminder_date;type:date" json:"reminder_date"`
	IsFavorite   bool            `gorm:"column:is_favorite;not null;default:false" json:"is_favorite"`
	// VersionNumber 每个笔记内严格递增 从 1 开始
	VersionNumber uint      `gorm:"column:version_number;not null;uniqueIndex:idx_note_version" json:"version_number"`
	IsDraft       bool      `gorm:"column:is_draft;not null;default:false" json:"is_draft"`
	CreatedAt     time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (v NoteVersion) TableName() string {
	return "note_versions"
}
