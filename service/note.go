package service

import (
	"context"
	"strings"
	"time"

	"SmartNotes/dao"
	"SmartNotes/dao/cache"
	"SmartNotes/models"
	"SmartNotes/pkg/llm"
	"SmartNotes/pkg/response"
	"SmartNotes/pkg/snowflake"
	"SmartNotes/pkg/utils"
	"SmartNotes/types"

	"gorm.io/datatypes"
)

var _ INoteService = (*NoteService)(nil)

// ISummarizer 外部摘要服务 失败返回占位文案 从不返回 error
type ISummarizer interface {
	GenSummary(ctx context.Context, content string) string
}

type INoteService interface {
	CreateNote(ctx context.Context, ownerID uint64, req *types.CreateNoteRequest) (*models.Note, error)
	GetNote(ctx context.Context, ownerID, noteID uint64) (*models.Note, error)
	ListNotes(ctx context.Context, ownerID uint64) ([]*models.Note, error)
	UpdateNote(ctx context.Context, ownerID, noteID uint64, req *types.UpdateNoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID uint64) error
	SearchByTag(ctx context.Context, ownerID uint64, tag string) ([]*models.Note, error)
	SearchByCategory(ctx context.Context, ownerID uint64, name string) ([]*models.Note, error)
	DeleteByTag(ctx context.Context, ownerID uint64, tag string) (int64, error)
	DeleteByCategory(ctx context.Context, ownerID uint64, name string) (int64, error)
}

// NoteService 笔记唯一的写入口 摘要与字段校验都在这里收口
type NoteService struct {
	NoteDAO      *dao.NoteDAO
	CategoryDAO  *dao.CategoryDAO
	Summarizer   ISummarizer
	SummaryCache *cache.SummaryStorage
}

// CreateNote 创建笔记 注意：创建本身不写版本 历史从第一次编辑开始
func (s *NoteService) CreateNote(ctx context.Context, ownerID uint64, req *types.CreateNoteRequest) (*models.Note, error) {
	fields := map[string]string{}

	var category *models.Category
	if req.Category != nil {
		cat, msg := s.resolveCategory(ctx, ownerID, req.Category)
		if msg != "" {
			fields["category"] = msg
		} else {
			category = cat
		}
	}

	var reminder *datatypes.Date
	if req.ReminderDate != nil && *req.ReminderDate != "" {
		d, msg := validateReminderDate(*req.ReminderDate, time.Now())
		if msg != "" {
			fields["reminder_date"] = msg
		} else {
			reminder = d
		}
	}

	if len(fields) > 0 {
		return nil, response.NewFieldError(fields)
	}

	summary := ""
	if needsSummary(req.Content) {
		summary = s.summarize(ctx, req.Content)
	}

	now := time.Now()
	note := &models.Note{
		ID:           uint64(snowflake.GenID()),
		OwnerID:      ownerID,
		Title:        req.Title,
		Tags:         utils.SliceToTags(normalizeTags(req.Tags)),
		Content:      req.Content,
		Summary:      summary,
		ReminderDate: reminder,
		IsFavorite:   req.IsFavorite,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if category != nil {
		note.CategoryID = &category.ID
	}

	if err := s.NoteDAO.Create(ctx, note); err != nil {
		return nil, err
	}
	note.Category = category
	return note, nil
}

// UpdateNote 部分更新 只有 content 出现且变化时才重新生成摘要
func (s *NoteService) UpdateNote(ctx context.Context, ownerID, noteID uint64, req *types.UpdateNoteRequest) (*models.Note, error) {
	note, err := s.NoteDAO.FindOwned(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, response.NewNotFound("Note not found")
	}

	fields := map[string]string{}

	var category *models.Category
	if req.Category != nil {
		cat, msg := s.resolveCategory(ctx, ownerID, req.Category)
		if msg != "" {
			fields["category"] = msg
		} else {
			category = cat
		}
	}

	var reminder *datatypes.Date
	clearReminder := false
	if req.ReminderDate != nil {
		if *req.ReminderDate == "" {
			clearReminder = true
		} else {
			d, msg := validateReminderDate(*req.ReminderDate, time.Now())
			if msg != "" {
				fields["reminder_date"] = msg
			} else {
				reminder = d
			}
		}
	}

	if len(fields) > 0 {
		return nil, response.NewFieldError(fields)
	}

	if category != nil {
		note.CategoryID = &category.ID
		note.Category = category
	}
	if clearReminder {
		note.ReminderDate = nil
	} else if reminder != nil {
		note.ReminderDate = reminder
	}
	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Tags != nil {
		note.Tags = utils.SliceToTags(normalizeTags(*req.Tags))
	}
	if req.IsFavorite != nil {
		note.IsFavorite = *req.IsFavorite
	}
	if contentChanged(note.Content, req.Content) {
		note.Content = *req.Content
		if needsSummary(note.Content) {
			note.Summary = s.summarize(ctx, note.Content)
		} else {
			note.Summary = ""
		}
	}
	note.UpdatedAt = time.Now()

	if err := s.NoteDAO.Save(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) GetNote(ctx context.Context, ownerID, noteID uint64) (*models.Note, error) {
	note, err := s.NoteDAO.FindOwned(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, response.NewNotFound("Note not found")
	}
	return note, nil
}

func (s *NoteService) ListNotes(ctx context.Context, ownerID uint64) ([]*models.Note, error) {
	return s.NoteDAO.ListByOwner(ctx, ownerID)
}

func (s *NoteService) DeleteNote(ctx context.Context, ownerID, noteID uint64) error {
	deleted, err := s.NoteDAO.DeleteOwned(ctx, noteID, ownerID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return response.NewNotFound("Note not found")
	}
	return nil
}

func (s *NoteService) SearchByTag(ctx context.Context, ownerID uint64, tag string) ([]*models.Note, error) {
	return s.NoteDAO.FindByTag(ctx, ownerID, normalizeTag(tag))
}

func (s *NoteService) SearchByCategory(ctx context.Context, ownerID uint64, name string) ([]*models.Note, error) {
	return s.NoteDAO.FindByCategoryName(ctx, ownerID, strings.TrimSpace(name))
}

func (s *NoteService) DeleteByTag(ctx context.Context, ownerID uint64, tag string) (int64, error) {
	return s.NoteDAO.DeleteByTag(ctx, ownerID, normalizeTag(tag))
}

func (s *NoteService) DeleteByCategory(ctx context.Context, ownerID uint64, name string) (int64, error) {
	return s.NoteDAO.DeleteByCategoryName(ctx, ownerID, strings.TrimSpace(name))
}

// resolveCategory 分类载荷必须是合法 {name} 且归一化后非空 get-or-create 只在本人名下
func (s *NoteService) resolveCategory(ctx context.Context, ownerID uint64, ref *types.CategoryRef) (*models.Category, string) {
	if !ref.Valid() {
		return nil, "Invalid category format."
	}
	name := normalizeCategoryName(ref.Name)
	if name == "" {
		return nil, "Invalid category format."
	}
	category, err := s.CategoryDAO.GetOrCreate(ctx, ownerID, name)
	if err != nil {
		return nil, "Invalid category format."
	}
	return category, ""
}

// summarize 先查缓存 占位结果不回填
func (s *NoteService) summarize(ctx context.Context, content string) string {
	if cached, ok := s.SummaryCache.Get(ctx, content); ok {
		return cached
	}
	summary := s.Summarizer.GenSummary(ctx, content)
	if !llm.Unavailable(summary) {
		s.SummaryCache.Set(ctx, content, summary)
	}
	return summary
}

func normalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := normalizeTag(tag); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// contentChanged 只有 content 出现且与现值不同才算变化 原样重提交不触发摘要
func contentChanged(current string, incoming *string) bool {
	return incoming != nil && *incoming != current
}

// needsSummary 空内容不调用摘要服务 摘要保持空串
func needsSummary(content string) bool {
	return content != ""
}

// validateReminderDate 提醒日期不能早于服务端当前日期 返回字段错误文案
func validateReminderDate(value string, now time.Time) (*datatypes.Date, string) {
	d, err := utils.ParseDate(value)
	if err != nil {
		return nil, "Invalid date format, expected YYYY-MM-DD."
	}
	if time.Time(*d).Before(utils.DateOnly(now)) {
		return nil, "Reminder date cannot be in the past."
	}
	return d, ""
}
