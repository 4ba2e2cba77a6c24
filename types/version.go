package types

import "time"

// DraftRequest 草稿载荷 缺失字段回退到笔记当前持久化值
type DraftRequest struct {
	Title        *string   `json:"title" binding:"omitempty,max=255"`
	Content      *string   `json:"content"`
	Tags         *[]string `json:"tags" binding:"omitempty,dive,max=50"`
	Summary      *string   `json:"summary"`
	CategoryID   *uint64   `json:"category_id"`
	ReminderDate *string   `json:"reminder_date"` // "2006-01-02"
	IsFavorite   *bool     `json:"is_favorite"`
}

type RestoreRequest struct {
	VersionID uint64 `json:"version_id" binding:"required"`
}

type VersionDTO struct {
	ID            uint64    `json:"id"`
	NoteID        uint64    `json:"note_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Tags          []string  `json:"tags"`
	Summary       string    `json:"summary"`
	CategoryID    *uint64   `json:"category_id"`
	ReminderDate  *string   `json:"reminder_date"`
	IsFavorite    bool      `json:"is_favorite"`
	VersionNumber uint      `json:"version_number"`
	IsDraft       bool      `json:"is_draft"`
	CreatedAt     time.Time `json:"created_at"`
}
