package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeIngestor struct {
	mu    sync.Mutex
	calls []int
}

func (f *fakeIngestor) FetchAndStore(_ context.Context, maxPriority int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, maxPriority)
	return 1
}

type fakeCleaner struct {
	mu      sync.Mutex
	cutoffs []time.Time
}

func (f *fakeCleaner) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return 3, nil
}

type fakeBriefer struct {
	mu      sync.Mutex
	periods []string
	hours   []int
}

func (f *fakeBriefer) GenerateBriefing(_ context.Context, period string, hoursBack int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.periods = append(f.periods, period)
	f.hours = append(f.hours, hoursBack)
	return nil
}

func TestNewRegistersFiveJobs(t *testing.T) {
	s, err := New(&fakeIngestor{}, &fakeCleaner{}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := s.Entries(); got != 5 {
		t.Fatalf("registered jobs = %d, want 5", got)
	}
}

func TestFeedJobsUsePriorityFilters(t *testing.T) {
	ing := &fakeIngestor{}
	s, err := New(ing, &fakeCleaner{}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	s.fetchPriorityFeeds()
	s.fetchAllFeeds()

	if len(ing.calls) != 2 || ing.calls[0] != 1 || ing.calls[1] != 0 {
		t.Fatalf("ingestor calls = %v, want [1 0]", ing.calls)
	}
}

func TestBriefingJobsPassPeriodAndWindow(t *testing.T) {
	br := &fakeBriefer{}
	s, err := New(&fakeIngestor{}, &fakeCleaner{}, br)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	s.hourlyBriefing()
	s.thingsToWatch()

	if len(br.periods) != 2 || br.periods[0] != "hourly" || br.periods[1] != "watch" {
		t.Fatalf("briefing periods = %v", br.periods)
	}
	if br.hours[0] != 2 || br.hours[1] != 12 {
		t.Fatalf("briefing windows = %v, want [2 12]", br.hours)
	}
}

func TestBriefingJobsNilSafe(t *testing.T) {
	s, err := New(&fakeIngestor{}, &fakeCleaner{}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	// briefer 未配置时不应 panic
	s.hourlyBriefing()
	s.thingsToWatch()
}

func TestCleanupUsesRetentionCutoff(t *testing.T) {
	cl := &fakeCleaner{}
	s, err := New(&fakeIngestor{}, cl, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	before := time.Now().UTC().AddDate(0, 0, -retentionDays)
	s.cleanupOldArticles()
	after := time.Now().UTC().AddDate(0, 0, -retentionDays)

	if len(cl.cutoffs) != 1 {
		t.Fatalf("cleanup calls = %d, want 1", len(cl.cutoffs))
	}
	cutoff := cl.cutoffs[0]
	if cutoff.Before(before.Add(-time.Second)) || cutoff.After(after.Add(time.Second)) {
		t.Fatalf("cutoff %v not ~%d days in the past", cutoff, retentionDays)
	}
}

type panickingIngestor struct{}

func (panickingIngestor) FetchAndStore(context.Context, int) int {
	panic("feed pipeline blew up")
}

func TestJobPanicDoesNotPropagate(t *testing.T) {
	s, err := New(panickingIngestor{}, &fakeCleaner{}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// 经 cron 链包装后的任务应把 panic 兜住，不能传到调度 goroutine
	for _, entry := range s.cron.Entries() {
		entry.WrappedJob.Run()
	}
}

func TestFirstPassRecoversFromPanic(t *testing.T) {
	s, err := New(panickingIngestor{}, &fakeCleaner{}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// 首轮采集跑在定时器 goroutine 里，panic 必须就地恢复
	s.runFirstPass()
}

func TestStartStopLifecycle(t *testing.T) {
	s, err := New(&fakeIngestor{}, &fakeCleaner{}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	s.Start()
	s.Stop()
	// Stop 之后再次 Stop 应无副作用
	s.Stop()
}
