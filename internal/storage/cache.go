package storage

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"newspulse/internal/processor"
)

const (
	latestCacheKey = "latest_articles"
	latestCacheTTL = 600 * time.Second
	latestCacheMax = 50

	// 快照里的摘要截断长度
	snapshotSummaryRunes = 300

	updatesChannel = "news_updates"
)

// CachedArticle 是写入快照缓存的精简条目
type CachedArticle struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Summary         string  `json:"summary"`
	SourceName      string  `json:"source_name"`
	URL             string  `json:"url"`
	Region          string  `json:"region"`
	Category        string  `json:"category"`
	PublishedAt     string  `json:"published_at"`
	ImportanceScore float64 `json:"importance_score"`
	ImageURL        string  `json:"image_url"`
}

type updateNotice struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// PublishLatest 把按分值排好序的前 50 条写入快照缓存，并发布变更通知。
// 缓存与通知的任何失败都只记日志，绝不影响采集主流程。
func (s *Store) PublishLatest(ctx context.Context, items []processor.Candidate, inserted int) {
	if s.Redis == nil {
		return
	}

	top := items
	if len(top) > latestCacheMax {
		top = top[:latestCacheMax]
	}

	snapshot := make([]CachedArticle, 0, len(top))
	for _, it := range top {
		snapshot = append(snapshot, CachedArticle{
			ID:              it.ID,
			Title:           it.Title,
			Summary:         truncateRunesDB(it.Summary, snapshotSummaryRunes),
			SourceName:      it.SourceName,
			URL:             it.URL,
			Region:          it.Region,
			Category:        it.Category,
			PublishedAt:     it.PublishedAt.UTC().Format(time.RFC3339),
			ImportanceScore: it.ImportanceScore,
			ImageURL:        it.ImageURL,
		})
	}

	bs, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("cache latest: marshal error: %v", err)
		return
	}
	if err := s.Redis.Set(ctx, latestCacheKey, bs, latestCacheTTL).Err(); err != nil {
		log.Printf("cache latest: set error: %v", err)
		return
	}

	notice, _ := json.Marshal(updateNotice{Type: "new_articles", Count: inserted})
	if err := s.Redis.Publish(ctx, updatesChannel, notice).Err(); err != nil {
		log.Printf("cache latest: publish error: %v", err)
	}
}

// CachedLatest 读取快照缓存；未命中或已过期返回 nil
func (s *Store) CachedLatest(ctx context.Context) []CachedArticle {
	if s.Redis == nil {
		return nil
	}
	bs, err := s.Redis.Get(ctx, latestCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var out []CachedArticle
	if err := json.Unmarshal(bs, &out); err != nil {
		log.Printf("cache latest: unmarshal error: %v", err)
		return nil
	}
	return out
}
