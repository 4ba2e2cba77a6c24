package service

import (
	"testing"
	"time"

	"SmartNotes/models"

	"gorm.io/datatypes"
)

func date(value string) *datatypes.Date {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		panic(err)
	}
	d := datatypes.Date(t)
	return &d
}

func day(value string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", value, time.Local)
	return t
}

// 同一条笔记在不同参考日期下必须且只能落进一个桶
func TestPartition_SingleNoteAcrossReferenceDates(t *testing.T) {
	note := &models.Note{ID: 1, ReminderDate: date("2025-03-20")}
	notes := []*models.Note{note}

	cases := []struct {
		ref    string
		bucket string
	}{
		{"2025-03-20", "today"},
		{"2025-03-19", "tomorrow"},
		{"2025-03-25", "overdue"},
		{"2025-03-10", "scheduled"},
	}

	for _, c := range cases {
		todays, tomorrows, overdues, scheduleds := partition(notes, day(c.ref))

		got := map[string]int{
			"today":     len(todays),
			"tomorrow":  len(tomorrows),
			"overdue":   len(overdues),
			"scheduled": len(scheduleds),
		}
		total := got["today"] + got["tomorrow"] + got["overdue"] + got["scheduled"]
		if total != 1 {
			t.Fatalf("ref %s: note appears %d times, want exactly 1", c.ref, total)
		}
		if got[c.bucket] != 1 {
			t.Errorf("ref %s: expected note in %s bucket, got %v", c.ref, c.bucket, got)
		}
	}
}

// 分桶互斥且并集恰好覆盖所有带提醒日期的笔记
func TestPartition_DisjointAndExhaustive(t *testing.T) {
	notes := []*models.Note{
		{ID: 1, ReminderDate: date("2025-03-18")},
		{ID: 2, ReminderDate: date("2025-03-19")},
		{ID: 3, ReminderDate: date("2025-03-20")},
		{ID: 4, ReminderDate: date("2025-03-21")},
		{ID: 5, ReminderDate: date("2025-03-22")},
		{ID: 6, ReminderDate: date("2025-04-01")},
	}

	todays, tomorrows, overdues, scheduleds := partition(notes, day("2025-03-20"))

	seen := map[uint64]int{}
	for _, bucket := range [][]*models.Note{todays, tomorrows, overdues, scheduleds} {
		for _, n := range bucket {
			seen[n.ID]++
		}
	}
	if len(seen) != len(notes) {
		t.Fatalf("expected %d distinct notes across buckets, got %d", len(notes), len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("note %d appears %d times", id, count)
		}
	}

	if len(todays) != 1 || todays[0].ID != 3 {
		t.Errorf("unexpected todays: %+v", todays)
	}
	if len(tomorrows) != 1 || tomorrows[0].ID != 4 {
		t.Errorf("unexpected tomorrows: %+v", tomorrows)
	}
	if len(overdues) != 2 {
		t.Errorf("expected 2 overdue notes, got %d", len(overdues))
	}
	if len(scheduleds) != 2 {
		t.Errorf("expected 2 scheduled notes, got %d", len(scheduleds))
	}
}

// 没有提醒日期的笔记不参与分桶
func TestPartition_SkipsNilReminder(t *testing.T) {
	notes := []*models.Note{
		{ID: 1},
		{ID: 2, ReminderDate: date("2025-03-20")},
	}

	todays, tomorrows, overdues, scheduleds := partition(notes, day("2025-03-20"))
	total := len(todays) + len(tomorrows) + len(overdues) + len(scheduleds)
	if total != 1 {
		t.Fatalf("expected 1 bucketed note, got %d", total)
	}
}

// 输入顺序 (reminder_date, created_at) 在桶内保持不变
func TestPartition_KeepsOrder(t *testing.T) {
	notes := []*models.Note{
		{ID: 1, ReminderDate: date("2025-03-10")},
		{ID: 2, ReminderDate: date("2025-03-12")},
		{ID: 3, ReminderDate: date("2025-03-15")},
	}

	_, _, overdues, _ := partition(notes, day("2025-03-20"))
	if len(overdues) != 3 {
		t.Fatalf("expected 3 overdue notes, got %d", len(overdues))
	}
	for i, want := range []uint64{1, 2, 3} {
		if overdues[i].ID != want {
			t.Errorf("overdues[%d] = %d, want %d", i, overdues[i].ID, want)
		}
	}
}
