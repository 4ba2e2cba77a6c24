package service

import (
	"context"
	"time"

	"SmartNotes/dao"
	"SmartNotes/models"
	"SmartNotes/pkg/response"
	"SmartNotes/pkg/snowflake"
	"SmartNotes/pkg/utils"
	"SmartNotes/types"
)

var _ IVersionService = (*VersionService)(nil)

type IVersionService interface {
	Record(ctx context.Context, note *models.Note, isDraft bool) (*models.NoteVersion, error)
	List(ctx context.Context, ownerID, noteID uint64, limit int) ([]*models.NoteVersion, error)
	Restore(ctx context.Context, ownerID, noteID, versionID uint64) (*models.Note, error)
	SaveDraft(ctx context.Context, ownerID, noteID uint64, req *types.DraftRequest) (*models.NoteVersion, error)
}

// ICategoryLookup 归属校验所需的最小分类查询
type ICategoryLookup interface {
	FindOwned(ctx context.Context, id, ownerID uint64) (*models.Category, error)
}

var _ ICategoryLookup = (*dao.CategoryDAO)(nil)

// VersionService 追加式版本库 所有建版本路径共用同一个版本计数
type VersionService struct {
	NoteDAO     *dao.NoteDAO
	VersionDAO  *dao.VersionDAO
	CategoryDAO ICategoryLookup
}

// Record 把笔记当前字段整体快照进历史
func (s *VersionService) Record(ctx context.Context, note *models.Note, isDraft bool) (*models.NoteVersion, error) {
	return s.VersionDAO.Record(ctx, note.ID, func(seq uint) *models.NoteVersion {
		return snapshot(note, seq, isDraft)
	})
}

// List 最新在前 默认且最多 20 条
func (s *VersionService) List(ctx context.Context, ownerID, noteID uint64, limit int) ([]*models.NoteVersion, error) {
	note, err := s.NoteDAO.FindOwned(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, response.NewNotFound("Note not found")
	}

	if limit <= 0 || limit > types.DefaultVersionLimit {
		limit = types.DefaultVersionLimit
	}
	return s.VersionDAO.ListByNote(ctx, noteID, limit)
}

// Restore 把历史版本的字段拷回现网笔记 随后追加一条恢复后的新版本
// 历史只追加 从不改写
func (s *VersionService) Restore(ctx context.Context, ownerID, noteID, versionID uint64) (*models.Note, error) {
	note, err := s.NoteDAO.FindOwned(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, response.NewNotFound("Note not found")
	}

	// 归属校验绑定在版本查询里 任何不匹配等同不存在
	version, err := s.VersionDAO.FindOwned(ctx, versionID, noteID, ownerID)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, response.NewNotFound("Version not found")
	}

	// 版本里的分类落回现网前重新验归属
	if err := s.ensureOwnedCategory(ctx, ownerID, version.CategoryID); err != nil {
		return nil, err
	}

	applyVersion(note, version)
	if err := s.NoteDAO.Save(ctx, note); err != nil {
		return nil, err
	}

	if _, err := s.Record(ctx, note, false); err != nil {
		return nil, err
	}
	return note, nil
}

// SaveDraft 自动保存：部分载荷叠加到笔记当前持久化值上 现网笔记行不动
func (s *VersionService) SaveDraft(ctx context.Context, ownerID, noteID uint64, req *types.DraftRequest) (*models.NoteVersion, error) {
	note, err := s.NoteDAO.FindOwned(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, response.NewNotFound("Note not found")
	}

	if err := s.ensureOwnedCategory(ctx, ownerID, req.CategoryID); err != nil {
		return nil, err
	}

	draft, msg := overlayDraft(note, req)
	if msg != "" {
		return nil, response.NewFieldError(map[string]string{"reminder_date": msg})
	}

	return s.VersionDAO.Record(ctx, note.ID, func(seq uint) *models.NoteVersion {
		draft.VersionNumber = seq
		return draft
	})
}

// ensureOwnedCategory 版本路径携带的 category_id 必须归属本人 否则字段级 400
func (s *VersionService) ensureOwnedCategory(ctx context.Context, ownerID uint64, categoryID *uint64) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.CategoryDAO.FindOwned(ctx, *categoryID, ownerID)
	if err != nil {
		return err
	}
	if category == nil {
		return response.NewFieldError(map[string]string{"category_id": "Invalid category."})
	}
	return nil
}

// snapshot 全字段拷贝 版本行之后不再更新
func snapshot(note *models.Note, seq uint, isDraft bool) *models.NoteVersion {
	return &models.NoteVersion{
		ID:            uint64(snowflake.GenID()),
		NoteID:        note.ID,
		Title:         note.Title,
		Content:       note.Content,
		Tags:          note.Tags,
		Summary:       note.Summary,
		CategoryID:    note.CategoryID,
		ReminderDate:  note.ReminderDate,
		IsFavorite:    note.IsFavorite,
		VersionNumber: seq,
		IsDraft:       isDraft,
		CreatedAt:     time.Now(),
	}
}

// applyVersion 版本字段覆盖到现网笔记 owner 与时间线保持不变
func applyVersion(note *models.Note, v *models.NoteVersion) {
	note.Title = v.Title
	note.Content = v.Content
	note.Tags = v.Tags
	note.Summary = v.Summary
	note.CategoryID = v.CategoryID
	note.Category = nil
	note.ReminderDate = v.ReminderDate
	note.IsFavorite = v.IsFavorite
	note.UpdatedAt = time.Now()
}

// overlayDraft 缺失字段回退到现网笔记的持久化值 而不是上一份草稿
func overlayDraft(note *models.Note, req *types.DraftRequest) (*models.NoteVersion, string) {
	draft := snapshot(note, 0, true)

	if req.Title != nil {
		draft.Title = *req.Title
	}
	if req.Content != nil {
		draft.Content = *req.Content
	}
	if req.Tags != nil {
		draft.Tags = utils.SliceToTags(normalizeTags(*req.Tags))
	}
	if req.Summary != nil {
		draft.Summary = *req.Summary
	}
	if req.CategoryID != nil {
		draft.CategoryID = req.CategoryID
	}
	if req.ReminderDate != nil {
		if *req.ReminderDate == "" {
			draft.ReminderDate = nil
		} else {
			d, err := utils.ParseDate(*req.ReminderDate)
			if err != nil {
				return nil, "Invalid date format, expected YYYY-MM-DD."
			}
			draft.ReminderDate = d
		}
	}
	if req.IsFavorite != nil {
		draft.IsFavorite = *req.IsFavorite
	}
	return draft, ""
}
