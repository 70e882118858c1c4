package config

import (
	"log"
	"os"
)

type Config struct {
	AppPort string

	PostgresDSN string
	RedisAddr   string

	// 可选：YAML 文件覆盖内置信源表
	SourcesFile string

	// 可选：外部 AI 简报服务地址，不配置则跳过简报任务
	BriefingURL string
}

func Load() *Config {
	cfg := &Config{
		AppPort:     getEnv("APP_PORT", "9000"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=newspulse password=newspulse dbname=newspulse port=5432 sslmode=disable TimeZone=UTC"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		SourcesFile: getEnv("SOURCES_FILE", ""),
		BriefingURL: getEnv("BRIEFING_URL", ""),
	}

	log.Printf("config loaded: port=%s sources_file=%q", cfg.AppPort, cfg.SourcesFile)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
