package types

// ReminderBuckets 四个互斥的时间分桶 并集恰好是所有带提醒日期的笔记
type ReminderBuckets struct {
	Todays     []*NoteDTO `json:"todays"`
	Tomorrows  []*NoteDTO `json:"tomorrows"`
	Overdues   []*NoteDTO `json:"overdues"`
	Scheduleds []*NoteDTO `json:"scheduleds"`
}
