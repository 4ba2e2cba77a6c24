package dao

import (
	"context"
	"errors"

	"SmartNotes/models"

	"gorm.io/gorm"
)

type VersionDAO struct {
	Repo[models.NoteVersion]
}

func NewVersionDAO(db *gorm.DB) *VersionDAO {
	return &VersionDAO{Repo: NewRepo[models.NoteVersion](db)}
}

// Record 统一的版本写入口：事务内自增 notes.version_seq 再以该序号写快照。
// (note_id, version_number) 唯一索引兜底 撞号时用新序号重试一次。
func (d *VersionDAO) Record(ctx context.Context, noteID uint64, build func(seq uint) *models.NoteVersion) (*models.NoteVersion, error) {
	version, err := d.record(ctx, noteID, build)
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		version, err = d.record(ctx, noteID, build)
	}
	return version, err
}

func (d *VersionDAO) record(ctx context.Context, noteID uint64, build func(seq uint) *models.NoteVersion) (*models.NoteVersion, error) {
	var version *models.NoteVersion
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Model(&models.Note{}).
			Where("id = ?", noteID).
			UpdateColumn("version_seq", gorm.Expr("version_seq + 1")).Error; err != nil {
			return err
		}

		var seq uint
		if err := tx.Model(&models.Note{}).
			Where("id = ?", noteID).
			Pluck("version_seq", &seq).Error; err != nil {
			return err
		}

		version = build(seq)
		return tx.Create(version).Error
	})
	if err != nil {
		return nil, err
	}
	return version, nil
}

// ListByNote 最新在前 created_at 相同时按版本号兜底
func (d *VersionDAO) ListByNote(ctx context.Context, noteID uint64, limit int) ([]*models.NoteVersion, error) {
	var versions []*models.NoteVersion
	err := d.Db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("created_at DESC, version_number DESC").
		Limit(limit).
		Find(&versions).Error
	return versions, err
}

// FindOwned 版本查询必须带归属校验 任何不匹配都视同不存在
func (d *VersionDAO) FindOwned(ctx context.Context, versionID, noteID, ownerID uint64) (*models.NoteVersion, error) {
	var version models.NoteVersion
	err := d.Db.WithContext(ctx).
		Joins("INNER JOIN notes ON notes.id = note_versions.note_id").
		Where("note_versions.id = ? AND note_versions.note_id = ? AND notes.owner_id = ?",
			versionID, noteID, ownerID).
		First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &version, nil
}
