package briefing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Trigger 触发外部 AI 简报协作方生成一次简报。
// 失败与重试策略由协作方自己负责，这里只管发出去。
type Trigger interface {
	GenerateBriefing(ctx context.Context, period string, hoursBack int) error
}

// HTTPTrigger 通过 HTTP 调用简报服务
type HTTPTrigger struct {
	url    string
	client *http.Client
}

func NewHTTPTrigger(url string) *HTTPTrigger {
	return &HTTPTrigger{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type briefingRequest struct {
	Period    string `json:"period"`
	HoursBack int    `json:"hours_back"`
}

func (t *HTTPTrigger) GenerateBriefing(ctx context.Context, period string, hoursBack int) error {
	body, err := json.Marshal(briefingRequest{Period: period, HoursBack: hoursBack})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("briefing request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("briefing call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("briefing service returned status %d", resp.StatusCode)
	}
	return nil
}
