package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"newspulse/internal/api"
	"newspulse/internal/briefing"
	"newspulse/internal/collector"
	"newspulse/internal/config"
	"newspulse/internal/engine"
	"newspulse/internal/processor"
	"newspulse/internal/scheduler"
	"newspulse/internal/source"
	"newspulse/internal/storage"
)

func main() {
	cfg := config.Load()

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	registry, err := source.NewRegistry(cfg.SourcesFile)
	if err != nil {
		log.Fatalf("load sources failed: %v", err)
	}
	log.Printf("source registry loaded: %d feeds", registry.Len())

	eng := engine.New(engine.Deps{
		Registry:  registry,
		Fetcher:   collector.NewFetcher(),
		Processor: processor.New(),
		Store:     store,
		Cache:     store,
	})

	// 简报协作方可选；未配置时对应任务自动跳过
	var briefer briefing.Trigger
	if cfg.BriefingURL != "" {
		briefer = briefing.NewHTTPTrigger(cfg.BriefingURL)
	}

	s, err := scheduler.New(eng, store, briefer)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	s.Start()
	defer s.Stop()

	// API
	r := gin.Default()
	apiServer := api.NewServer(store, eng)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
