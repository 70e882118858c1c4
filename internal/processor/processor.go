package processor

import (
	"crypto/sha1"
	"encoding/hex"
	"math"
	"regexp"
	"strings"
	"time"

	"newspulse/internal/collector"
	"newspulse/internal/source"
)

const (
	// 摘要清洗后的最大长度（rune 数）
	summaryMaxRunes = 2000

	defaultLanguage = "en"
)

// Candidate 是清洗、分类、打分后待入库的统一结构
type Candidate struct {
	ID              string
	Title           string
	Summary         string
	SourceName      string
	SourceURL       string
	URL             string
	Region          string
	Category        string
	PublishedAt     time.Time
	ScrapedAt       time.Time
	ImportanceScore float64
	ImageURL        string
	Language        string
}

// Processor 负责把 RawEntry 规范化为 Candidate
type Processor struct {
	table []categoryKeywords
}

func New() *Processor {
	return &Processor{table: defaultCategoryTable}
}

// NewWithTable 使用自定义分类关键词表，便于独立测试分类规则
func NewWithTable(table []categoryKeywords) *Processor {
	return &Processor{table: table}
}

// Normalize 对单条 entry 做清洗、分类与打分。
// entry 缺少发布时间时以 now 兜底，保证 recency 打分可计算。
func (p *Processor) Normalize(entry collector.RawEntry, src source.Source, now time.Time) Candidate {
	summary := CleanText(entry.Summary)

	publishedAt := entry.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = now
	}

	return Candidate{
		ID:              hashURL(entry.Link),
		Title:           entry.Title,
		Summary:         summary,
		SourceName:      src.Name,
		SourceURL:       src.URL,
		URL:             entry.Link,
		Region:          src.Region,
		Category:        p.ClassifyCategory(entry.Title, summary),
		PublishedAt:     publishedAt,
		ScrapedAt:       now,
		ImportanceScore: ScoreImportance(entry.Title, summary, src.Priority, publishedAt, now),
		ImageURL:        entry.ImageURL,
		Language:        defaultLanguage,
	}
}

var (
	tagRe   = regexp.MustCompile(`<[^>]+>`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// CleanText 去掉标记、折叠空白并按 rune 截断到上限，超长追加省略标记
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}
	clean := tagRe.ReplaceAllString(raw, "")
	clean = strings.TrimSpace(spaceRe.ReplaceAllString(clean, " "))

	rs := []rune(clean)
	if len(rs) > summaryMaxRunes {
		return string(rs[:summaryMaxRunes]) + "..."
	}
	return clean
}

// ClassifyCategory 统计各分类关键词的命中数，取严格最高者；
// 并列时保留声明顺序靠前的分类，零命中归入 general。
func (p *Processor) ClassifyCategory(title, summary string) string {
	text := strings.ToLower(title + " " + summary)

	best := "general"
	bestScore := 0
	for _, ck := range p.table {
		score := 0
		for _, kw := range ck.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best = ck.Category
			bestScore = score
		}
	}
	return best
}

// ScoreImportance 计算 0-10 的重要性分值。规则是刻意透明、可复现的线性启发式：
//   - 信源优先级：tier 1 +3 / tier 2 +2 / tier 3 +1
//   - 命中任意突发关键词一次性 +3
//   - 高重要性关键词每个 +1，封顶 +4
//   - 时效：<30min +2；<1h +1；>24h -1（互斥区间）
//
// 最终裁剪到 [0,10] 并保留两位小数。
func ScoreImportance(title, summary string, priority int, publishedAt, now time.Time) float64 {
	score := 0.0
	text := strings.ToLower(title + " " + summary)

	if base := 4 - priority; base > 0 {
		score += float64(base)
	}

	for _, kw := range breakingKeywords {
		if strings.Contains(text, kw) {
			score += 3.0
			break
		}
	}

	hits := 0
	for _, kw := range highImportanceKeywords {
		if strings.Contains(text, kw) {
			hits++
		}
	}
	if hits > 4 {
		hits = 4
	}
	score += float64(hits)

	age := now.Sub(publishedAt)
	switch {
	case age < 30*time.Minute:
		score += 2.0
	case age < time.Hour:
		score += 1.0
	case age > 24*time.Hour:
		score -= 1.0
	}

	score = math.Max(0.0, math.Min(10.0, score))
	return math.Round(score*100) / 100
}

func hashURL(url string) string {
	h := sha1.New()
	h.Write([]byte(url))
	return hex.EncodeToString(h.Sum(nil))
}
