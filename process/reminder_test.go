package process

import (
	"testing"
	"time"
)

// 未到整点取当日 已过整点顺延次日
func TestNextRunAt(t *testing.T) {
	loc := time.Local

	cases := []struct {
		now  time.Time
		hour int
		want time.Time
	}{
		{time.Date(2025, 3, 20, 6, 30, 0, 0, loc), 8, time.Date(2025, 3, 20, 8, 0, 0, 0, loc)},
		{time.Date(2025, 3, 20, 8, 0, 0, 0, loc), 8, time.Date(2025, 3, 21, 8, 0, 0, 0, loc)},
		{time.Date(2025, 3, 20, 23, 59, 0, 0, loc), 8, time.Date(2025, 3, 21, 8, 0, 0, 0, loc)},
		{time.Date(2025, 12, 31, 10, 0, 0, 0, loc), 8, time.Date(2026, 1, 1, 8, 0, 0, 0, loc)},
	}

	for _, c := range cases {
		if got := nextRunAt(c.now, c.hour); !got.Equal(c.want) {
			t.Errorf("nextRunAt(%v, %d) = %v, want %v", c.now, c.hour, got, c.want)
		}
	}
}
