// Package fetch 負責取得來源頁面的 HTML，是擷取管線的外部協作者。
// 抓取失敗一律包成 FetchError，讓呼叫端能與 ValidationError 區分。
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// Result 抓取結果：頁面 HTML 與重新導向後的最終 URL
type Result struct {
	HTML     string
	FinalURL string
}

// Client 頁面抓取客戶端
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient 創建頁面抓取客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetTimeout(cfg.Fetch.Timeout).
		SetHeader("User-Agent", cfg.Fetch.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(cfg.Fetch.MaxRedirects))

	return &Client{
		config: cfg,
		client: client,
	}
}

// Fetch 抓取指定 URL 的 HTML
// 網路錯誤、逾時或非 2xx 狀態都回傳 FetchError；不做重試
func (c *Client) Fetch(ctx context.Context, url string) (*Result, error) {
	start := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		Get(url)

	common.LogFetch(url, time.Since(start), err, "")

	if err != nil {
		return nil, common.NewFetchError(url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, common.NewFetchError(url, fmt.Errorf("unexpected status %d", resp.StatusCode()))
	}

	body := resp.Body()
	if int64(len(body)) > c.config.Fetch.MaxBodyBytes {
		body = body[:c.config.Fetch.MaxBodyBytes]
	}

	// 重新導向後的實際 URL，供圖片絕對化與站點配對使用
	finalURL := url
	if resp.RawResponse != nil && resp.RawResponse.Request != nil && resp.RawResponse.Request.URL != nil {
		finalURL = resp.RawResponse.Request.URL.String()
	}

	return &Result{
		HTML:     string(body),
		FinalURL: finalURL,
	}, nil
}
