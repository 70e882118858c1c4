package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"newspulse/internal/briefing"
)

// Ingestor 执行一轮采集流水线，返回真实新增条数
type Ingestor interface {
	FetchAndStore(ctx context.Context, maxPriority int) int
}

// Cleaner 按抓取时间清理过期条目
type Cleaner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

const (
	// 条目保留期，按入库时间计算
	retentionDays = 30

	prioritySpec = "*/2 * * * *"
	fullSpec     = "*/10 * * * *"
	briefingSpec = "0 * * * *"
	watchSpec    = "0 */6 * * *"
	cleanupSpec  = "30 3 * * *"
)

// Scheduler 驱动五个独立的周期任务：
// tier-1 采集、全量采集、小时简报、6 小时观察清单、每日清理。
// 每个任务通过 SkipIfStillRunning 保证不与自身并发，
// 并由 Recover 兜住 panic，单个任务出错不影响其余任务继续触发。
type Scheduler struct {
	cron    *cron.Cron
	engine  Ingestor
	store   Cleaner
	briefer briefing.Trigger

	firstRun *time.Timer
}

func New(engine Ingestor, store Cleaner, briefer briefing.Trigger) (*Scheduler, error) {
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	s := &Scheduler{
		cron:    c,
		engine:  engine,
		store:   store,
		briefer: briefer,
	}

	jobs := []struct {
		spec string
		fn   func()
	}{
		{prioritySpec, s.fetchPriorityFeeds},
		{fullSpec, s.fetchAllFeeds},
		{briefingSpec, s.hourlyBriefing},
		{watchSpec, s.thingsToWatch},
		{cleanupSpec, s.cleanupOldArticles},
	}
	for _, j := range jobs {
		if _, err := c.AddFunc(j.spec, j.fn); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Start 启动全部定时任务，并延迟执行首轮全量采集，避免与启动期争抢资源
func (s *Scheduler) Start() {
	s.cron.Start()
	const startupDelay = 15 * time.Second
	s.firstRun = time.AfterFunc(startupDelay, s.runFirstPass)
	log.Printf("scheduler started: %d jobs registered", len(s.cron.Entries()))
}

// Stop 取消所有后续触发；已经在跑的任务不被强行打断
func (s *Scheduler) Stop() {
	if s.firstRun != nil {
		s.firstRun.Stop()
	}
	s.cron.Stop()
	log.Println("scheduler stopped")
}

// Entries 返回已注册的任务数，主要供测试与健康检查使用
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// RunOnce 手动执行一轮全量采集
func (s *Scheduler) RunOnce() {
	s.fetchAllFeeds()
}

// runFirstPass 在定时器 goroutine 里跑，不经过 cron 的 Recover 链，
// 必须自己兜住 panic，否则会带崩整个进程
func (s *Scheduler) runFirstPass() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("startup feed pass panic: %v", r)
		}
	}()
	s.fetchAllFeeds()
}

func (s *Scheduler) fetchPriorityFeeds() {
	n := s.engine.FetchAndStore(context.Background(), 1)
	log.Printf("priority feed pass complete: %d new articles stored", n)
}

func (s *Scheduler) fetchAllFeeds() {
	n := s.engine.FetchAndStore(context.Background(), 0)
	log.Printf("full feed pass complete: %d new articles stored", n)
}

func (s *Scheduler) hourlyBriefing() {
	if s.briefer == nil {
		return
	}
	if err := s.briefer.GenerateBriefing(context.Background(), "hourly", 2); err != nil {
		log.Printf("hourly briefing error: %v", err)
		return
	}
	log.Println("hourly briefing generated")
}

func (s *Scheduler) thingsToWatch() {
	if s.briefer == nil {
		return
	}
	if err := s.briefer.GenerateBriefing(context.Background(), "watch", 12); err != nil {
		log.Printf("things-to-watch error: %v", err)
		return
	}
	log.Println("things to watch generated")
}

func (s *Scheduler) cleanupOldArticles() {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	deleted, err := s.store.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		log.Printf("cleanup error: %v", err)
		return
	}
	log.Printf("cleanup: deleted %d articles older than %d days", deleted, retentionDays)
}
