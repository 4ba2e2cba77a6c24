package types

import "time"

// 版本列表默认返回条数上限
const DefaultVersionLimit = 20

// CreateNoteRequest 创建笔记请求
type CreateNoteRequest struct {
	Title        string       `json:"title" binding:"required,max=255"`
	Category     *CategoryRef `json:"category"`
	Tags         []string     `json:"tags" binding:"omitempty,dive,max=50"`
	Content      string       `json:"content"`
	ReminderDate *string      `json:"reminder_date"` // "2006-01-02"
	IsFavorite   bool         `json:"is_favorite"`
}

// UpdateNoteRequest 部分更新 缺失字段保持原值
type UpdateNoteRequest struct {
	Title        *string      `json:"title" binding:"omitempty,max=255"`
	Category     *CategoryRef `json:"category"`
	Tags         *[]string    `json:"tags" binding:"omitempty,dive,max=50"`
	Content      *string      `json:"content"`
	ReminderDate *string      `json:"reminder_date"` // "2006-01-02" 空串清除
	IsFavorite   *bool        `json:"is_favorite"`
}

type NoteDTO struct {
	ID           uint64       `json:"id"`
	Title        string       `json:"title"`
	Category     *CategoryDTO `json:"category"`
	Tags         []string     `json:"tags"`
	Content      string       `json:"content"`
	Summary      string       `json:"summary"`
	ReminderDate *string      `json:"reminder_date"`
	IsFavorite   bool         `json:"is_favorite"`
	Owner        uint64       `json:"owner"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type ListNotesResponse struct {
	Notes []*NoteDTO `json:"notes"`
	Total int        `json:"total"`
}
