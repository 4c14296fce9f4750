// Package geoip 按来访 IP 查询国家代码，用于挑选默认展示语言
package geoip

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vividmgmt/vividbackend/pkg/i18n"
)

// spanishSpeakingCountries 以西班牙语为主的国家（ISO 3166-1 alpha-2）
var spanishSpeakingCountries = map[string]struct{}{
	"AR": {}, "BO": {}, "CL": {}, "CO": {}, "CR": {}, "CU": {}, "DO": {},
	"EC": {}, "SV": {}, "GQ": {}, "GT": {}, "HN": {}, "MX": {}, "NI": {},
	"PA": {}, "PY": {}, "PE": {}, "ES": {}, "UY": {}, "VE": {}, "PR": {},
}

// Client IP 地理位置查询客户端
type Client struct {
	http *resty.Client
}

// Config 客户端配置
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// New 创建查询客户端
func New(cfg Config) *Client {
	c := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

type lookupResponse struct {
	CountryCode string `json:"country_code"`
}

// CountryCode 查询 IP 对应的国家代码
func (c *Client) CountryCode(ctx context.Context, ip string) (string, error) {
	var out lookupResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/%s/json/", ip))
	if err != nil {
		return "", fmt.Errorf("geoip lookup failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("geoip lookup failed: status %d", resp.StatusCode())
	}
	return out.CountryCode, nil
}

// LocaleFor 根据国家代码挑选默认语言；查询失败或未知国家一律回退 en
func LocaleFor(countryCode string) i18n.Locale {
	if _, ok := spanishSpeakingCountries[countryCode]; ok {
		return i18n.LocaleES
	}
	return i18n.DefaultLocale
}
