package dao

import (
	"context"
	"errors"
	"time"

	"SmartNotes/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// FindOwned 按 (id, owner) 查询 跨租户不命中与不存在不可区分
func (d *NoteDAO) FindOwned(ctx context.Context, id, ownerID uint64) (*models.Note, error) {
	var note models.Note
	err := d.Db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// noteSaveOmit 保存笔记行时跳过的字段：关联不落库，
// 版本计数只归 VersionDAO 的事务管 写回内存值会回退并发期间的自增
var noteSaveOmit = []string{"Category", "VersionSeq"}

// Save 全量落库 owner 不变更
func (d *NoteDAO) Save(ctx context.Context, note *models.Note) error {
	return d.Db.WithContext(ctx).
		Omit(noteSaveOmit...).
		Save(note).Error
}

func (d *NoteDAO) ListByOwner(ctx context.Context, ownerID uint64) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Preload("Category").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// DeleteOwned 删除笔记并级联删除全部版本
func (d *NoteDAO) DeleteOwned(ctx context.Context, id, ownerID uint64) (int64, error) {
	var deleted int64
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Note{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		if deleted == 0 {
			return nil
		}
		return tx.Where("note_id = ?", id).Delete(&models.NoteVersion{}).Error
	})
	return deleted, err
}

// FindByTag 标签 JSON 数组包含查询
func (d *NoteDAO) FindByTag(ctx context.Context, ownerID uint64, tag string) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Preload("Category").
		Where("owner_id = ?", ownerID).
		Where(datatypes.JSONArrayQuery("tags").Contains(tag)).
		Order("updated_at DESC").
		Find(&notes).Error
	return notes, err
}

// FindByCategoryName 分类名模糊匹配 大小写不敏感 仅限本人分类
func (d *NoteDAO) FindByCategoryName(ctx context.Context, ownerID uint64, name string) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Preload("Category").
		Joins("INNER JOIN categories ON categories.id = notes.category_id").
		Where("categories.owner_id = ? AND categories.name LIKE ?", ownerID, "%"+name+"%").
		Order("notes.updated_at DESC").
		Find(&notes).Error
	return notes, err
}

// DeleteByTag 按标签批量删除 连同版本
func (d *NoteDAO) DeleteByTag(ctx context.Context, ownerID uint64, tag string) (int64, error) {
	notes, err := d.FindByTag(ctx, ownerID, tag)
	if err != nil {
		return 0, err
	}
	return d.deleteBatch(ctx, notes)
}

// DeleteByCategoryName 按分类名批量删除 连同版本
func (d *NoteDAO) DeleteByCategoryName(ctx context.Context, ownerID uint64, name string) (int64, error) {
	notes, err := d.FindByCategoryName(ctx, ownerID, name)
	if err != nil {
		return 0, err
	}
	return d.deleteBatch(ctx, notes)
}

func (d *NoteDAO) deleteBatch(ctx context.Context, notes []*models.Note) (int64, error) {
	if len(notes) == 0 {
		return 0, nil
	}
	ids := make([]uint64, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}

	var deleted int64
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("note_id IN ?", ids).Delete(&models.NoteVersion{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&models.Note{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

// FindWithReminder 提醒分桶的数据源 顺序固定 (reminder_date, created_at)
func (d *NoteDAO) FindWithReminder(ctx context.Context, ownerID uint64) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Preload("Category").
		Where("owner_id = ? AND reminder_date IS NOT NULL", ownerID).
		Order("reminder_date ASC, created_at ASC").
		Find(&notes).Error
	return notes, err
}

// DueReminder 当日到期提醒 连带收件人邮箱
type DueReminder struct {
	NoteID uint64 `gorm:"column:note_id"`
	Title  string `gorm:"column:title"`
	Email  string `gorm:"column:email"`
}

// FindDueOn 扫描指定日期到期的全部提醒 跨所有用户
func (d *NoteDAO) FindDueOn(ctx context.Context, date time.Time) ([]*DueReminder, error) {
	var due []*DueReminder
	err := d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Select("notes.id AS note_id, notes.title AS title, users.email AS email").
		Joins("INNER JOIN users ON users.id = notes.owner_id").
		Where("notes.reminder_date = ?", date.Format("2006-01-02")).
		Scan(&due).Error
	return due, err
}
