package service

import (
	"testing"
	"time"
)

// 提醒日期不能早于服务端当前日期
func TestValidateReminderDate(t *testing.T) {
	now := day("2025-03-20").Add(15 * time.Hour) // 当天下午

	cases := []struct {
		value   string
		wantErr bool
	}{
		{"2025-03-19", true},  // 昨天
		{"2025-03-20", false}, // 今天 即使已过整点
		{"2025-03-21", false}, // 明天
		{"2026-01-01", false},
		{"not-a-date", true},
		{"2025/03/20", true},
	}

	for _, c := range cases {
		d, msg := validateReminderDate(c.value, now)
		if c.wantErr && msg == "" {
			t.Errorf("value %q: expected error", c.value)
		}
		if !c.wantErr {
			if msg != "" {
				t.Errorf("value %q: unexpected error %q", c.value, msg)
			}
			if d == nil {
				t.Errorf("value %q: expected parsed date", c.value)
			}
		}
	}
}

// 只有 content 出现且与现值不同才触发摘要
func TestContentChanged(t *testing.T) {
	current := "hello"

	if contentChanged(current, nil) {
		t.Error("absent content must not count as changed")
	}
	if contentChanged(current, strPtr("hello")) {
		t.Error("identical resubmission must not count as changed")
	}
	if !contentChanged(current, strPtr("hello!")) {
		t.Error("different content must count as changed")
	}
	if !contentChanged(current, strPtr("")) {
		t.Error("explicit empty content is a change")
	}
}

// 空内容不触发摘要调用 摘要保持空串
func TestNeedsSummary(t *testing.T) {
	if needsSummary("") {
		t.Error("empty content must never reach the summarizer")
	}
	if !needsSummary("hello") {
		t.Error("non-empty content must be summarized")
	}
}

// 分类名入库前 trim+小写
func TestNormalizeCategoryName(t *testing.T) {
	cases := map[string]string{
		"  Work  ":  "work",
		"IDEAS":     "ideas",
		"personal":  "personal",
		"   ":       "",
		"":          "",
	}
	for in, want := range cases {
		if got := normalizeCategoryName(in); got != want {
			t.Errorf("normalizeCategoryName(%q) = %q, want %q", in, got, want)
		}
	}
}

// 标签统一小写 去空白 丢弃空项
func TestNormalizeTags(t *testing.T) {
	got := normalizeTags([]string{" Go ", "NOTES", "", "  "})
	if len(got) != 2 || got[0] != "go" || got[1] != "notes" {
		t.Errorf("unexpected tags: %v", got)
	}

	if got := normalizeTags(nil); len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}
