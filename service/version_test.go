package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"SmartNotes/models"
	"SmartNotes/pkg/response"
	"SmartNotes/pkg/utils"
	"SmartNotes/types"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func u64Ptr(v uint64) *uint64 { return &v }

func baseNote() *models.Note {
	catID := uint64(7)
	return &models.Note{
		ID:           100,
		OwnerID:      1,
		Title:        "original title",
		CategoryID:   &catID,
		Tags:         utils.SliceToTags([]string{"work", "ideas"}),
		Content:      "original content",
		Summary:      "original summary",
		ReminderDate: date("2025-06-01"),
		IsFavorite:   false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// snapshot 必须全字段拷贝
func TestSnapshot_CopiesAllFields(t *testing.T) {
	note := baseNote()
	v := snapshot(note, 3, true)

	if v.NoteID != note.ID {
		t.Errorf("note_id = %d, want %d", v.NoteID, note.ID)
	}
	if v.Title != note.Title || v.Content != note.Content || v.Summary != note.Summary {
		t.Error("text fields not copied")
	}
	if v.CategoryID == nil || *v.CategoryID != *note.CategoryID {
		t.Error("category_id not copied")
	}
	if v.ReminderDate == nil || !time.Time(*v.ReminderDate).Equal(time.Time(*note.ReminderDate)) {
		t.Error("reminder_date not copied")
	}
	if v.VersionNumber != 3 {
		t.Errorf("version_number = %d, want 3", v.VersionNumber)
	}
	if !v.IsDraft {
		t.Error("expected is_draft = true")
	}
}

// 草稿叠加：缺失字段回退到现网笔记的持久化值
func TestOverlayDraft_FallsBackToLiveNote(t *testing.T) {
	note := baseNote()
	req := &types.DraftRequest{
		Title: strPtr("draft title"),
	}

	draft, msg := overlayDraft(note, req)
	if msg != "" {
		t.Fatalf("unexpected error: %s", msg)
	}

	if draft.Title != "draft title" {
		t.Errorf("title = %q, want overlay value", draft.Title)
	}
	if draft.Content != note.Content {
		t.Errorf("content = %q, want live note value", draft.Content)
	}
	if draft.Summary != note.Summary {
		t.Errorf("summary = %q, want live note value", draft.Summary)
	}
	if draft.CategoryID == nil || *draft.CategoryID != *note.CategoryID {
		t.Error("category_id should fall back to live note")
	}
	if !draft.IsDraft {
		t.Error("draft version must be flagged is_draft")
	}
}

// 草稿叠加所有字段
func TestOverlayDraft_AllFields(t *testing.T) {
	note := baseNote()
	req := &types.DraftRequest{
		Title:        strPtr("t2"),
		Content:      strPtr("c2"),
		Tags:         &[]string{"New", " Tag "},
		Summary:      strPtr("s2"),
		CategoryID:   u64Ptr(9),
		ReminderDate: strPtr("2025-07-01"),
		IsFavorite:   boolPtr(true),
	}

	draft, msg := overlayDraft(note, req)
	if msg != "" {
		t.Fatalf("unexpected error: %s", msg)
	}
	if draft.Title != "t2" || draft.Content != "c2" || draft.Summary != "s2" {
		t.Error("overlay fields not applied")
	}
	tags := utils.TagsToSlice(draft.Tags)
	if len(tags) != 2 || tags[0] != "new" || tags[1] != "tag" {
		t.Errorf("tags not normalized: %v", tags)
	}
	if draft.CategoryID == nil || *draft.CategoryID != 9 {
		t.Error("category_id not applied")
	}
	if got := utils.DateToString(draft.ReminderDate); got == nil || *got != "2025-07-01" {
		t.Errorf("reminder_date not applied: %v", got)
	}
	if !draft.IsFavorite {
		t.Error("is_favorite not applied")
	}
}

// 草稿叠加不改动现网笔记
func TestOverlayDraft_DoesNotMutateNote(t *testing.T) {
	note := baseNote()
	before := *note

	req := &types.DraftRequest{
		Title:        strPtr("x"),
		Content:      strPtr("y"),
		ReminderDate: strPtr(""),
		IsFavorite:   boolPtr(true),
	}
	if _, msg := overlayDraft(note, req); msg != "" {
		t.Fatalf("unexpected error: %s", msg)
	}

	if note.Title != before.Title || note.Content != before.Content {
		t.Error("live note mutated by draft overlay")
	}
	if note.IsFavorite != before.IsFavorite {
		t.Error("live note favorite flag mutated")
	}
	if note.ReminderDate == nil {
		t.Error("live note reminder_date mutated")
	}
}

// 非法日期格式返回字段错误
func TestOverlayDraft_BadDate(t *testing.T) {
	note := baseNote()
	req := &types.DraftRequest{ReminderDate: strPtr("01/07/2025")}

	if _, msg := overlayDraft(note, req); msg == "" {
		t.Fatal("expected error for bad date format")
	}
}

// ownedCategories 分类 id -> 所属用户
type ownedCategories map[uint64]uint64

func (o ownedCategories) FindOwned(_ context.Context, id, ownerID uint64) (*models.Category, error) {
	if o[id] == ownerID {
		return &models.Category{ID: id, OwnerID: ownerID}, nil
	}
	return nil, nil
}

// 草稿与回滚携带的 category_id 必须归属本人 他人分类拒绝为字段级 400
func TestEnsureOwnedCategory(t *testing.T) {
	s := &VersionService{CategoryDAO: ownedCategories{7: 1}}
	ctx := context.Background()

	if err := s.ensureOwnedCategory(ctx, 1, nil); err != nil {
		t.Errorf("absent category must pass: %v", err)
	}
	if err := s.ensureOwnedCategory(ctx, 1, u64Ptr(7)); err != nil {
		t.Errorf("own category must pass: %v", err)
	}

	// 用户 2 引用用户 1 的分类
	err := s.ensureOwnedCategory(ctx, 2, u64Ptr(7))
	if err == nil {
		t.Fatal("foreign category must be rejected")
	}
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != http.StatusBadRequest || be.Fields["category_id"] == "" {
		t.Errorf("expected field-keyed 400, got %v", err)
	}

	if err := s.ensureOwnedCategory(ctx, 1, u64Ptr(999)); err == nil {
		t.Error("unknown category must be rejected")
	}
}

// 恢复：版本字段全部覆盖到现网笔记 owner 不变
func TestApplyVersion(t *testing.T) {
	note := baseNote()
	owner := note.OwnerID
	v := &models.NoteVersion{
		NoteID:        note.ID,
		Title:         "restored title",
		Content:       "restored content",
		Tags:          utils.SliceToTags([]string{"old"}),
		Summary:       "restored summary",
		CategoryID:    nil,
		ReminderDate:  nil,
		IsFavorite:    true,
		VersionNumber: 2,
	}

	applyVersion(note, v)

	if note.Title != v.Title || note.Content != v.Content || note.Summary != v.Summary {
		t.Error("restore did not copy text fields")
	}
	if note.CategoryID != nil {
		t.Error("restore should clear category_id")
	}
	if note.ReminderDate != nil {
		t.Error("restore should clear reminder_date")
	}
	if !note.IsFavorite {
		t.Error("restore did not copy is_favorite")
	}
	if note.OwnerID != owner {
		t.Error("owner must never change")
	}
}
