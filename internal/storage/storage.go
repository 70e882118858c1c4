package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newspulse/internal/processor"
)

// Article 是持久化的新闻条目。URL 全局唯一，冲突写入静默忽略，
// 因此一条新闻只会在首次入库时写入，之后的重复采集不会覆盖它。
type Article struct {
	ID         string `gorm:"primaryKey;size:40" json:"id"`
	Title      string `gorm:"size:1024" json:"title"`
	Summary    string `gorm:"type:text" json:"summary"`
	SourceName string `gorm:"size:256;index" json:"sourceName"`
	SourceURL  string `gorm:"size:2048" json:"sourceUrl"`
	URL        string `gorm:"size:2048;uniqueIndex" json:"url"`
	Region     string `gorm:"size:64;index" json:"region"`
	Category   string `gorm:"size:64;index" json:"category"`
	// 入库时计算一次，之后不再变更
	ImportanceScore float64   `gorm:"index" json:"importanceScore"`
	PublishedAt     time.Time `gorm:"index" json:"publishedAt"`
	// 保留期按抓取时间计算，而不是发布时间
	ScrapedAt time.Time `gorm:"index" json:"scrapedAt"`
	ImageURL  string    `gorm:"size:2048" json:"imageUrl"`
	Language  string    `gorm:"size:10" json:"language"`
	// 翻译由外部协作方回填，核心只负责存储
	TranslatedTitles    datatypes.JSONMap `gorm:"type:jsonb" json:"translatedTitles"`
	TranslatedSummaries datatypes.JSONMap `gorm:"type:jsonb" json:"translatedSummaries"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Store struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewStore(dsn, redisAddr string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Article{}); err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warn: redis ping failed: %v", err)
	}

	return &Store{DB: db, Redis: rdb}, nil
}

// toValidUTF8 将字符串规范为合法 UTF-8，避免 PostgreSQL invalid byte sequence 错误
func toValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// truncateRunesDB 按 rune 数截断，确保不会超过数据库字段长度
func truncateRunesDB(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s = strings.TrimSpace(s)
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

// insertConflictClause 不指定冲突列：主键由 URL 哈希派生，
// 同一条目可能先撞主键索引再撞 url 唯一索引，两种冲突都要静默跳过
func insertConflictClause() clause.OnConflict {
	return clause.OnConflict{DoNothing: true}
}

// SaveNew 逐条插入候选项，唯一约束冲突时忽略（首写者保留）。
// 返回真正新插入的行数；单条失败只记日志并跳过，不中断整批。
func (s *Store) SaveNew(ctx context.Context, items []processor.Candidate) int {
	inserted := 0
	for _, it := range items {
		a := &Article{
			ID:                  it.ID,
			Title:               truncateRunesDB(toValidUTF8(it.Title), 1024),
			Summary:             toValidUTF8(it.Summary),
			SourceName:          it.SourceName,
			SourceURL:           it.SourceURL,
			URL:                 it.URL,
			Region:              it.Region,
			Category:            it.Category,
			ImportanceScore:     it.ImportanceScore,
			PublishedAt:         it.PublishedAt,
			ScrapedAt:           it.ScrapedAt,
			ImageURL:            it.ImageURL,
			Language:            it.Language,
			TranslatedTitles:    datatypes.JSONMap{},
			TranslatedSummaries: datatypes.JSONMap{},
		}

		res := s.DB.WithContext(ctx).
			Clauses(insertConflictClause()).
			Create(a)
		if res.Error != nil {
			log.Printf("save article %s error: %v", it.URL, res.Error)
			continue
		}
		inserted += int(res.RowsAffected)
	}
	return inserted
}

// DeleteOlderThan 删除抓取时间早于 cutoff 的条目，返回删除行数
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.DB.WithContext(ctx).Where("scraped_at < ?", cutoff).Delete(&Article{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete old articles: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// ListArticles 按地区/分类返回条目，sort 为 latest(默认) / important，
// 前置一层短 TTL 的 Redis 列表缓存
func (s *Store) ListArticles(ctx context.Context, region, category, sort string, limit int) ([]Article, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if sort != "important" {
		sort = "latest"
	}

	cacheKey := fmt.Sprintf("news:list:%s:%s:%s:%d", region, category, sort, limit)
	if s.Redis != nil {
		if bs, err := s.Redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached []Article
			if err := json.Unmarshal(bs, &cached); err == nil {
				return cached, nil
			}
		}
	}

	db := s.DB.WithContext(ctx).Model(&Article{})
	if region != "" {
		db = db.Where("region = ?", region)
	}
	if category != "" {
		db = db.Where("category = ?", category)
	}
	switch sort {
	case "important":
		db = db.Order("importance_score DESC").Order("published_at DESC")
	default:
		db = db.Order("published_at DESC")
	}

	var list []Article
	if err := db.Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}

	// 回写缓存（短 TTL，自然过期即可，不做主动失效）
	const listCacheTTL = 2 * time.Minute
	if s.Redis != nil && len(list) > 0 {
		if bs, err := json.Marshal(list); err == nil {
			_ = s.Redis.Set(ctx, cacheKey, bs, listCacheTTL).Err()
		}
	}

	return list, nil
}
