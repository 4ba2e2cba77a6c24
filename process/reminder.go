package process

import (
	"context"
	"fmt"
	"time"

	"SmartNotes/config"
	"SmartNotes/dao"
	"SmartNotes/pkg/log"
	"SmartNotes/pkg/mail"
	"SmartNotes/pkg/utils"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const reminderSubject = "Just a Friendly Reminder: Check Your Note Today!"

// ReminderSweep 每日定点扫描当天到期的提醒并逐条发信
// 单个收件人失败只记日志 不影响整批
type ReminderSweep struct {
	NoteDAO *dao.NoteDAO
	Mailer  *mail.Sender
	Config  *config.Config
}

func (s *ReminderSweep) Setup(ctx context.Context) error {
	log.L.Info("start reminder sweep", zap.Int("hour", s.Config.Mail.SweepHour))

	for {
		next := nextRunAt(time.Now(), s.Config.Mail.SweepHour)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			s.sweep(ctx)
		}
	}
}

// nextRunAt 下一次整点运行时间 已过当日整点则顺延到次日
func nextRunAt(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *ReminderSweep) sweep(ctx context.Context) {
	runID := uuid.NewString()
	today := utils.DateOnly(time.Now())

	due, err := s.NoteDAO.FindDueOn(ctx, today)
	if err != nil {
		log.L.Error("reminder sweep query failed", zap.String("run_id", runID), zap.Error(err))
		return
	}
	log.L.Info("reminder sweep", zap.String("run_id", runID), zap.Int("due", len(due)))

	var wg conc.WaitGroup
	for _, reminder := range due {
		r := reminder
		wg.Go(func() {
			body := fmt.Sprintf(
				"Hello,\n\nJust a quick reminder that today's the day to check your %s note! "+
					"We hope it brings you some value.\n\nHave a great day!\n\nBest,\n\nSmart Notes.",
				r.Title,
			)
			if err := s.Mailer.Send(r.Email, reminderSubject, body); err != nil {
				log.L.Error("reminder mail failed",
					zap.String("run_id", runID),
					zap.Uint64("note_id", r.NoteID),
					zap.Error(err),
				)
				return
			}
			log.L.Info("reminder mail sent",
				zap.String("run_id", runID),
				zap.Uint64("note_id", r.NoteID),
			)
		})
	}
	// 收拢 goroutine 并吞掉 panic 单条失败不影响整批
	if recovered := wg.WaitAndRecover(); recovered != nil {
		log.L.Error("reminder sweep recovered panic",
			zap.String("run_id", runID),
			zap.Any("panic", recovered.Value),
		)
	}
}
