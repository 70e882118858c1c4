package main

import (
	"context"
	"flag"
	"log"

	"newspulse/internal/collector"
	"newspulse/internal/config"
	"newspulse/internal/engine"
	"newspulse/internal/processor"
	"newspulse/internal/source"
	"newspulse/internal/storage"
)

// 一个仅执行一次采集任务的命令行入口：适合手动触发采集
func main() {
	priority := flag.Int("priority", 0, "只采集该优先级及更高的信源（0 表示全部）")
	flag.Parse()

	cfg := config.Load()

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	registry, err := source.NewRegistry(cfg.SourcesFile)
	if err != nil {
		log.Fatalf("load sources failed: %v", err)
	}

	eng := engine.New(engine.Deps{
		Registry:  registry,
		Fetcher:   collector.NewFetcher(),
		Processor: processor.New(),
		Store:     store,
		Cache:     store,
	})

	inserted := eng.FetchAndStore(context.Background(), *priority)
	log.Printf("collect done: %d new articles stored", inserted)
}
