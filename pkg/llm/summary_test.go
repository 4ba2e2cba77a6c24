package llm

import (
	"context"
	"testing"

	"SmartNotes/config"
)

// 未配置 api key 时不发起网络调用 直接返回占位文案
func TestGenSummary_Disabled(t *testing.T) {
	s := NewSummarizer(&config.Config{LLM: &config.LLM{}})

	got := s.GenSummary(context.Background(), "some content")
	if got != "Summary unavailable: api key not set" {
		t.Fatalf("unexpected placeholder: %q", got)
	}
	if !Unavailable(got) {
		t.Fatalf("placeholder should be marked unavailable: %q", got)
	}
}

func TestUnavailable(t *testing.T) {
	cases := []struct {
		summary string
		want    bool
	}{
		{"Summary unavailable: timeout", true},
		{"Summary generation returned empty result.", true},
		{"A normal two sentence summary.", false},
		{"", false},
	}

	for _, c := range cases {
		if got := Unavailable(c.summary); got != c.want {
			t.Errorf("Unavailable(%q) = %v, want %v", c.summary, got, c.want)
		}
	}
}
