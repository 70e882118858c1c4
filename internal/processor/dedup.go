package processor

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

const (
	// 模糊标题判重阈值，相似度达到即视为重复
	fuzzyMatchThreshold = 0.85

	// 模糊比对只回看最近的这么多条标题
	fuzzyCompareWindow = 500

	// 标题列表容量上限，超出后裁剪为最近的 trimTo 条
	seenTitlesCap    = 5000
	seenTitlesTrimTo = 3000
)

// Dedup 是单轮采集内的判重状态：URL 哈希集合 + 近期标题列表。
// 每轮采集新建一个实例，实例本身不做并发保护；跨轮的重复完全依赖
// 存储层的 URL 唯一约束兜底（换了 URL 的近似转载不会被捕获）。
type Dedup struct {
	seenURLs   map[string]struct{}
	seenTitles []string
	metric     *metrics.Levenshtein
}

func NewDedup() *Dedup {
	return &Dedup{
		seenURLs: make(map[string]struct{}),
		metric:   metrics.NewLevenshtein(),
	}
}

// Admit 对一条 (link, title) 做两级判重：URL 精确匹配 + 标题模糊匹配。
// 通过则登记状态并返回 true，使同轮后续条目能看到这一条。
func (d *Dedup) Admit(link, title string) bool {
	key := hashURL(strings.TrimSpace(link))
	if _, ok := d.seenURLs[key]; ok {
		return false
	}
	if d.isDuplicateTitle(title) {
		return false
	}

	d.seenURLs[key] = struct{}{}
	d.seenTitles = append(d.seenTitles, title)
	if len(d.seenTitles) > seenTitlesCap {
		d.seenTitles = append(d.seenTitles[:0], d.seenTitles[len(d.seenTitles)-seenTitlesTrimTo:]...)
	}
	return true
}

func (d *Dedup) isDuplicateTitle(title string) bool {
	lower := strings.ToLower(title)

	start := 0
	if len(d.seenTitles) > fuzzyCompareWindow {
		start = len(d.seenTitles) - fuzzyCompareWindow
	}
	for _, seen := range d.seenTitles[start:] {
		ratio := strutil.Similarity(lower, strings.ToLower(seen), d.metric)
		if ratio >= fuzzyMatchThreshold {
			return true
		}
	}
	return false
}
