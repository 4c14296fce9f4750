// Package storage 对象存储客户端，走 Supabase Storage 的 HTTP 接口
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config 存储服务配置
type Config struct {
	Endpoint   string
	ServiceKey string
	Timeout    time.Duration
}

// Client 通过 service key 直传对象，公开地址按约定路径拼出
type Client struct {
	http     *resty.Client
	endpoint string
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetTimeout(timeout).
		SetHeader("Authorization", "Bearer "+cfg.ServiceKey).
		SetHeader("apikey", cfg.ServiceKey)
	return &Client{http: c, endpoint: strings.TrimRight(cfg.Endpoint, "/")}
}

// Upload 上传单个对象，对象已存在视为失败（键含毫秒时间戳，正常不会撞）
func (c *Client) Upload(ctx context.Context, bucket, key, contentType string, data []byte) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", bucket, key))
	if err != nil {
		return fmt.Errorf("upload object %s: %w", key, err)
	}
	if resp.IsError() {
		return fmt.Errorf("upload object %s: status %d: %s", key, resp.StatusCode(), resp.String())
	}
	return nil
}

// PublicURL 返回对象的公开访问地址；端点未配置时返回 false
func (c *Client) PublicURL(bucket, key string) (string, bool) {
	if c.endpoint == "" {
		return "", false
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.endpoint, bucket, key), true
}
