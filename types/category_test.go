package types

import (
	"encoding/json"
	"testing"
)

// 分类载荷只认 {"name": "..."} 其余形态一律标记非法
func TestCategoryRef_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		payload   string
		wantValid bool
		wantName  string
	}{
		{`{"name": "Work"}`, true, "Work"},
		{`{"name": ""}`, true, ""},
		{`{"title": "Work"}`, false, ""},
		{`"Work"`, false, ""},
		{`123`, false, ""},
		{`["Work"]`, false, ""},
	}

	for _, c := range cases {
		var ref CategoryRef
		if err := json.Unmarshal([]byte(c.payload), &ref); err != nil {
			t.Fatalf("unmarshal %s: %v", c.payload, err)
		}
		if ref.Valid() != c.wantValid {
			t.Errorf("payload %s: valid = %v, want %v", c.payload, ref.Valid(), c.wantValid)
		}
		if ref.Name != c.wantName {
			t.Errorf("payload %s: name = %q, want %q", c.payload, ref.Name, c.wantName)
		}
	}
}

// 整体请求里分类字段缺失时指针保持 nil
func TestCreateNoteRequest_CategoryAbsent(t *testing.T) {
	var req CreateNoteRequest
	if err := json.Unmarshal([]byte(`{"title": "t"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Category != nil {
		t.Fatal("expected nil category for absent field")
	}
}
