package engine

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"newspulse/internal/collector"
	"newspulse/internal/processor"
	"newspulse/internal/source"
)

// ItemStore 是引擎对持久层的最小依赖：幂等写入并返回真实新增数
type ItemStore interface {
	SaveNew(ctx context.Context, items []processor.Candidate) int
}

// SnapshotCache 把排好序的候选集镜像到快速读缓存并发出变更通知
type SnapshotCache interface {
	PublishLatest(ctx context.Context, items []processor.Candidate, inserted int)
}

// Deps 把各阶段的依赖装配进采集引擎
type Deps struct {
	Registry  *source.Registry
	Fetcher   *collector.Fetcher
	Processor *processor.Processor
	Store     ItemStore
	Cache     SnapshotCache

	// 可选，默认 time.Now；测试时注入固定时钟
	Now func() time.Time
}

// Engine 串起一轮完整的采集流水线：抓取 → 解析 → 清洗分类打分 → 判重 → 入库 → 镜像缓存
type Engine struct {
	registry *source.Registry
	fetcher  *collector.Fetcher
	proc     *processor.Processor
	store    ItemStore
	cache    SnapshotCache
	now      func() time.Time
}

func New(deps Deps) *Engine {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		registry: deps.Registry,
		fetcher:  deps.Fetcher,
		proc:     deps.Processor,
		store:    deps.Store,
		cache:    deps.Cache,
		now:      now,
	}
}

type fetchResult struct {
	src     source.Source
	entries []collector.RawEntry
}

// FetchAndStore 执行一轮采集。maxPriority > 0 时只拉取该优先级及更高的信源。
// 信源抓取并发进行；判重与打分在汇总后的单线程归约阶段完成。
// 判重器每轮新建，轮次之间互不共享状态，多个轮次可以安全并发。
// 返回真实新增条数。
func (e *Engine) FetchAndStore(ctx context.Context, maxPriority int) int {
	sources := e.registry.Select(maxPriority)
	dedup := processor.NewDedup()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make([]fetchResult, 0, len(sources))
	)

	for _, src := range sources {
		src := src
		wg.Add(1)
		go func() {
			defer wg.Done()

			raw, err := e.fetcher.Fetch(ctx, src)
			if err != nil {
				// 单个信源失败只影响它自己，下一轮调度天然就是重试
				log.Printf("fetch %s error: %v", src.Name, err)
				return
			}
			entries, err := collector.ParseFeed(raw)
			if err != nil {
				log.Printf("parse %s error: %v", src.Name, err)
				return
			}
			if len(entries) == 0 {
				return
			}

			mu.Lock()
			results = append(results, fetchResult{src: src, entries: entries})
			mu.Unlock()
		}()
	}
	wg.Wait()

	now := e.now()
	fetched := 0
	candidates := make([]processor.Candidate, 0, 256)
	for _, r := range results {
		fetched += len(r.entries)
		for _, entry := range r.entries {
			if !dedup.Admit(entry.Link, entry.Title) {
				continue
			}
			candidates = append(candidates, e.proc.Normalize(entry, r.src, now))
		}
	}

	// 按重要性降序；分值相同时保持归约顺序不变
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ImportanceScore > candidates[j].ImportanceScore
	})

	if len(candidates) == 0 {
		log.Printf("pass done: no candidates (sources=%d max_priority=%d)", len(sources), maxPriority)
		return 0
	}

	inserted := e.store.SaveNew(ctx, candidates)
	e.cache.PublishLatest(ctx, candidates, inserted)

	log.Printf("pass done: sources=%d fetched=%d candidates=%d inserted=%d (max_priority=%d)",
		len(sources), fetched, len(candidates), inserted, maxPriority)
	return inserted
}
