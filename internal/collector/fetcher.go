package collector

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"newspulse/internal/source"
)

const (
	connectTimeout   = 10 * time.Second
	requestTimeout   = 30 * time.Second
	maxResponseBytes = 4 << 20 // 4MB，防止异常信源拖垮内存
	userAgent        = "Mozilla/5.0 (compatible; NewsPulse/1.0; +https://newspulse.example)"
)

// Fetcher 负责拉取单个信源的原始 feed 字节
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
			},
		},
	}
}

// Fetch 对信源执行一次 GET。任何失败（超时/非 200/传输错误）返回 error，
// 由调用方记录日志并视为本轮 0 条，不影响其它信源。
func (f *Fetcher) Fetch(ctx context.Context, src source.Source) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: build request: %w", src.Name, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", src.Name, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", src.Name, err)
	}
	return body, nil
}
