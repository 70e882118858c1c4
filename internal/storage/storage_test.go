package storage

import (
	"context"
	"testing"
	"time"

	"newspulse/internal/processor"
)

func TestTruncateRunesDBHandlesMultibyte(t *testing.T) {
	s := "突发：某地发生地震，人员伤亡情况不明"
	out := truncateRunesDB(s, 5)
	if len([]rune(out)) != 5 {
		t.Fatalf("truncateRunesDB length = %d, want 5: %q", len([]rune(out)), out)
	}

	// limit 大于长度时不应截断
	if got := truncateRunesDB("short", 100); got != "short" {
		t.Fatalf("truncateRunesDB should keep original when under limit: %q", got)
	}
	if got := truncateRunesDB("anything", 0); got != "" {
		t.Fatalf("limit 0 should return empty, got %q", got)
	}
}

func TestToValidUTF8ReplacesInvalidBytes(t *testing.T) {
	invalid := string([]byte{0x68, 0x69, 0xff, 0xfe})
	out := toValidUTF8(invalid)
	if out == invalid {
		t.Fatalf("invalid bytes should be replaced")
	}
	if out[:2] != "hi" {
		t.Fatalf("valid prefix should survive: %q", out)
	}
}

func TestSnapshotTruncatesSummary(t *testing.T) {
	// PublishLatest 的摘要截断走 truncateRunesDB，这里验证 300 上限
	long := make([]rune, 0, 500)
	for i := 0; i < 500; i++ {
		long = append(long, 'x')
	}
	out := truncateRunesDB(string(long), snapshotSummaryRunes)
	if len([]rune(out)) != snapshotSummaryRunes {
		t.Fatalf("snapshot summary length = %d, want %d", len([]rune(out)), snapshotSummaryRunes)
	}
}

func TestInsertConflictClauseCoversAllUniqueIndexes(t *testing.T) {
	// 主键是 URL 哈希，冲突可能落在主键或 url 索引任意一个上，
	// 子句不能只盯 url 列，否则主键冲突会升级成插入错误
	c := insertConflictClause()
	if !c.DoNothing {
		t.Fatalf("insert conflict clause must be DO NOTHING")
	}
	if len(c.Columns) != 0 {
		t.Fatalf("insert conflict clause must not target a single column, got %v", c.Columns)
	}
	if len(c.DoUpdates) != 0 || c.UpdateAll {
		t.Fatalf("first writer wins: conflict must never update the stored row")
	}
}

func TestPublishLatestNilRedisIsNoop(t *testing.T) {
	s := &Store{}
	items := []processor.Candidate{{
		ID:          "abc",
		Title:       "t",
		URL:         "https://example.com/1",
		PublishedAt: time.Now(),
	}}
	// Redis 未配置时应安静返回，不 panic
	s.PublishLatest(context.Background(), items, 1)
	if got := s.CachedLatest(context.Background()); got != nil {
		t.Fatalf("CachedLatest without redis should be nil, got %+v", got)
	}
}
