package service

import (
	"context"
	"time"

	"SmartNotes/dao"
	"SmartNotes/models"
	"SmartNotes/pkg/utils"
	"SmartNotes/types"
)

var _ IReminderService = (*ReminderService)(nil)

type IReminderService interface {
	Classify(ctx context.Context, ownerID uint64, ref time.Time) (*types.ReminderBuckets, error)
}

// ReminderService 只读的提醒分桶 不产生任何写入
type ReminderService struct {
	NoteDAO *dao.NoteDAO
}

func (s *ReminderService) Classify(ctx context.Context, ownerID uint64, ref time.Time) (*types.ReminderBuckets, error) {
	notes, err := s.NoteDAO.FindWithReminder(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	todays, tomorrows, overdues, scheduleds := partition(notes, ref)
	return &types.ReminderBuckets{
		Todays:     utils.NotesToDTO(todays),
		Tomorrows:  utils.NotesToDTO(tomorrows),
		Overdues:   utils.NotesToDTO(overdues),
		Scheduleds: utils.NotesToDTO(scheduleds),
	}, nil
}

// partition 按日历日切四个互斥桶 输入顺序 (reminder_date, created_at) 原样保留
func partition(notes []*models.Note, ref time.Time) (todays, tomorrows, overdues, scheduleds []*models.Note) {
	todays = make([]*models.Note, 0)
	tomorrows = make([]*models.Note, 0)
	overdues = make([]*models.Note, 0)
	scheduleds = make([]*models.Note, 0)

	refDay := utils.DateOnly(ref)
	nextDay := refDay.AddDate(0, 0, 1)

	for _, n := range notes {
		if n.ReminderDate == nil {
			continue
		}
		day := utils.DateOnly(time.Time(*n.ReminderDate))
		switch {
		case day.Equal(refDay):
			todays = append(todays, n)
		case day.Equal(nextDay):
			tomorrows = append(tomorrows, n)
		case day.Before(refDay):
			overdues = append(overdues, n)
		default:
			scheduleds = append(scheduleds, n)
		}
	}
	return
}
