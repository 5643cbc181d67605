// Package postgrest 封装对外部 PostgREST 数据服务的 HTTP 访问
// Package postgrest wraps HTTP access to the external PostgREST data service.
package postgrest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config 客户端配置，来自应用配置注入
type Config struct {
	// BaseURL PostgREST 根地址，例如 http://localhost:3001
	BaseURL string
	// AuthToken Authorization 请求头的值
	AuthToken string
	// Timeout 单次请求超时（秒）
	Timeout int
}

// StatusError 上游返回的非 2xx 响应
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("postgrest: unexpected status %d", e.Status)
}

// Client PostgREST HTTP 客户端
type Client struct {
	baseURL   string
	authToken string
	http      *http.Client
	logger    *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		authToken: cfg.AuthToken,
		http:      &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// Get fetches the query and decodes the JSON response into out.
// query is the path plus raw PostgREST filter syntax, e.g.
// "/folders?order=title".
// Get 请求给定查询并将 JSON 响应解码到 out。
// query 为路径加原生 PostgREST 过滤语法。
func (c *Client) Get(ctx context.Context, query string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+query, nil)
	if err != nil {
		return errors.Wrap(err, "postgrest: build request")
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "postgrest: GET %s", query)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "postgrest: read response of %s", query)
	}

	c.logger.Debug("postgrest request",
		zap.String("method", http.MethodGet),
		zap.String("query", query),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := sonic.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "postgrest: decode response of %s", query)
	}
	return nil
}

// Post sends payload as JSON. Non-2xx statuses come back as *StatusError
// so callers can distinguish 409 (duplicate) and 400 (invalid payload).
// Post 以 JSON 发送 payload。非 2xx 状态以 *StatusError 返回，
// 便于调用方区分 409（重复）与 400（载荷无效）。
func (c *Client) Post(ctx context.Context, path string, payload interface{}) error {
	data, err := sonic.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "postgrest: encode payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(err, "postgrest: build request")
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "postgrest: POST %s", path)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	c.logger.Debug("postgrest request",
		zap.String("method", http.MethodPost),
		zap.String("query", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.authToken != "" {
		req.Header.Set("Authorization", c.authToken)
	}
	req.Header.Set("Accept", "application/json")
}
