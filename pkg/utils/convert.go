package utils

import (
	"encoding/json"
	"time"

	"SmartNotes/models"
	"SmartNotes/types"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// TagsToSlice JSON 列转字符串切片 解析失败按空标签处理
func TagsToSlice(tags datatypes.JSON) []string {
	out := make([]string, 0)
	if len(tags) == 0 {
		return out
	}
	_ = json.Unmarshal(tags, &out)
	return out
}

func SliceToTags(tags []string) datatypes.JSON {
	if tags == nil {
		tags = make([]string, 0)
	}
	data, _ := json.Marshal(tags)
	return data
}

func ParseDate(value string) (*datatypes.Date, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}

func DateToString(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(dateLayout)
	return &s
}

// DateOnly 截断到日期 分桶比较只看日历日
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func NoteToDTO(n *models.Note) *types.NoteDTO {
	dto := &types.NoteDTO{
		ID:           n.ID,
		Title:        n.Title,
		Tags:         TagsToSlice(n.Tags),
		Content:      n.Content,
		Summary:      n.Summary,
		ReminderDate: DateToString(n.ReminderDate),
		IsFavorite:   n.IsFavorite,
		Owner:        n.OwnerID,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
	if n.Category != nil {
		dto.Category = &types.CategoryDTO{Name: n.Category.Name}
	}
	return dto
}

func NotesToDTO(notes []*models.Note) []*types.NoteDTO {
	out := make([]*types.NoteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, NoteToDTO(n))
	}
	return out
}

func VersionToDTO(v *models.NoteVersion) *types.VersionDTO {
	return &types.VersionDTO{
		ID:            v.ID,
		NoteID:        v.NoteID,
		Title:         v.Title,
		Content:       v.Content,
		Tags:          TagsToSlice(v.Tags),
		Summary:       v.Summary,
		CategoryID:    v.CategoryID,
		ReminderDate:  DateToString(v.ReminderDate),
		IsFavorite:    v.IsFavorite,
		VersionNumber: v.VersionNumber,
		IsDraft:       v.IsDraft,
		CreatedAt:     v.CreatedAt,
	}
}

func VersionsToDTO(versions []*models.NoteVersion) []*types.VersionDTO {
	out := make([]*types.VersionDTO, 0, len(versions))
	for _, v := range versions {
		out = append(out, VersionToDTO(v))
	}
	return out
}
