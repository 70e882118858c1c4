package collector

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// RawEntry 是 feed 解析后的统一条目结构，仅存活于一轮采集
type RawEntry struct {
	Title       string
	Link        string
	Summary     string
	PublishedAt time.Time // 零值表示 feed 未提供时间
	ImageURL    string
}

// ParseFeed 将原始 feed 字节解析为条目序列。
// 缺少标题或链接的条目直接丢弃；格式损坏返回 error，由调用方降级为空集。
func ParseFeed(raw []byte) ([]RawEntry, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	entries := make([]RawEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		e := RawEntry{
			Title:   title,
			Link:    link,
			Summary: item.Description,
		}
		if e.Summary == "" {
			e.Summary = item.Content
		}

		// 发布时间取 published，缺失时回落 updated
		if item.PublishedParsed != nil {
			e.PublishedAt = item.PublishedParsed.UTC()
		} else if item.UpdatedParsed != nil {
			e.PublishedAt = item.UpdatedParsed.UTC()
		}

		// 配图：优先 feed 自带 image，其次 image 类型的 enclosure
		if item.Image != nil && item.Image.URL != "" {
			e.ImageURL = item.Image.URL
		} else {
			for _, enc := range item.Enclosures {
				if enc != nil && strings.HasPrefix(enc.Type, "image") && enc.URL != "" {
					e.ImageURL = enc.URL
					break
				}
			}
		}

		entries = append(entries, e)
	}

	return entries, nil
}
