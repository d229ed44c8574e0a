// Package pexels 提供 Pexels 图片搜索集成，用于收集卡片背景灵感
package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"card-studio-ai-api/internal/config"
	"card-studio-ai-api/pkg/logger"
	"card-studio-ai-api/pkg/metrics"
)

var pexelsTracer = otel.Tracer("pexels")

// Photo Pexels 照片的精简表示
type Photo struct {
	ID              int64  `json:"id"`
	URL             string `json:"url"`
	Photographer    string `json:"photographer"`
	PhotographerURL string `json:"photographer_url"`
	ImageURL        string `json:"image_url"`
	AvgColor        string `json:"avg_color,omitempty"`
}

// Searcher 图片搜索接口
type Searcher interface {
	Search(ctx context.Context, query string) ([]Photo, error)
}

// Client Pexels HTTP 客户端。
// 搜索失败时返回空列表而不是错误，图片灵感是可选增强，不应阻断生成流程。
type Client struct {
	cfg        *config.PexelsConfig
	httpClient *http.Client
}

// NewClient 创建 Pexels 客户端
func NewClient(cfg *config.PexelsConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type searchResponse struct {
	Photos []struct {
		ID              int64             `json:"id"`
		URL             string            `json:"url"`
		Photographer    string            `json:"photographer"`
		PhotographerURL string            `json:"photographer_url"`
		AvgColor        string            `json:"avg_color"`
		Src             map[string]string `json:"src"`
	} `json:"photos"`
}

// Search 按查询词搜索背景图片
func (c *Client) Search(ctx context.Context, query string) ([]Photo, error) {
	ctx, span := pexelsTracer.Start(ctx, "pexels.Search",
		trace.WithAttributes(attribute.String("pexels.query", query)))
	defer span.End()

	if strings.TrimSpace(c.cfg.APIKey) == "" {
		logger.Warn(ctx, "no pexels api key supplied, skipping image search")
		metrics.PexelsSearchTotal.WithLabelValues("skipped").Inc()
		return []Photo{}, nil
	}

	base := strings.TrimRight(c.cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.pexels.com/v1"
	}
	perPage := c.cfg.PerPage
	if perPage <= 0 {
		perPage = 5
	}
	orientation := c.cfg.Orientation
	if orientation == "" {
		orientation = "landscape"
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", orientation)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/search?"+params.Encode(), nil)
	if err != nil {
		span.RecordError(err)
		metrics.PexelsSearchTotal.WithLabelValues("error").Inc()
		logger.Error(ctx, "pexels request build failed", err)
		return []Photo{}, nil
	}
	req.Header.Set("Authorization", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		metrics.PexelsSearchTotal.WithLabelValues("error").Inc()
		logger.Error(ctx, "pexels api request failed", err)
		return []Photo{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("pexels api status %d", resp.StatusCode)
		span.RecordError(err)
		metrics.PexelsSearchTotal.WithLabelValues("error").Inc()
		logger.Error(ctx, "pexels api request failed", err, "status", resp.StatusCode)
		return []Photo{}, nil
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.RecordError(err)
		metrics.PexelsSearchTotal.WithLabelValues("error").Inc()
		logger.Error(ctx, "pexels response decode failed", err)
		return []Photo{}, nil
	}

	photos := make([]Photo, 0, len(payload.Photos))
	for _, entry := range payload.Photos {
		photos = append(photos, Photo{
			ID:              entry.ID,
			URL:             entry.URL,
			Photographer:    entry.Photographer,
			PhotographerURL: entry.PhotographerURL,
			ImageURL:        pickImageURL(entry.Src, entry.URL),
			AvgColor:        entry.AvgColor,
		})
	}

	span.SetAttributes(attribute.Int("pexels.result_count", len(photos)))
	metrics.PexelsSearchTotal.WithLabelValues("success").Inc()
	return photos, nil
}

// pickImageURL 挑选可直接嵌入的图片地址，优先 large，其次 original，最后退回页面地址
func pickImageURL(src map[string]string, pageURL string) string {
	if v := src["large"]; v != "" {
		return v
	}
	if v := src["original"]; v != "" {
		return v
	}
	return pageURL
}
