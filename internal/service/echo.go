package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// EchoResponse 遠端 Keyword Echo Service 的原始回應
type EchoResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// EchoClient 呼叫遠端的 Keyword Echo Service
type EchoClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewEchoClient(baseURL string, timeout time.Duration) *EchoClient {
	return &EchoClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Say 把 keyword 轉送給遠端服務
// 只有傳輸層失敗才回傳 error，遠端的任何狀態碼都原樣回傳
func (c *EchoClient) Say(ctx context.Context, keyword string) (*EchoResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse echo url: %w", err)
	}
	q := u.Query()
	q.Set("keyword", keyword)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build echo request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call echo service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read echo response: %w", err)
	}

	return &EchoResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
