package dao

import "testing"

// 笔记行保存绝不回写版本计数 计数只在 VersionDAO.Record 的事务里自增
// 否则 load-save 之间并发追加的版本号会被回退 下一次 Record 撞号
func TestNoteSaveOmitsVersionCounter(t *testing.T) {
	omitted := map[string]bool{}
	for _, field := range noteSaveOmit {
		omitted[field] = true
	}

	if !omitted["VersionSeq"] {
		t.Error("Save must omit VersionSeq: the counter belongs to VersionDAO.Record")
	}
	if !omitted["Category"] {
		t.Error("Save must omit the Category association")
	}
}
