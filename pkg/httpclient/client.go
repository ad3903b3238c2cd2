package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Options HTTP客户端选项
type Options struct {
	// 整体超时时间, 0 表示不限制, 下载大文件时应为 0
	Timeout time.Duration
	// 代理地址, 支持 http/https/socks5
	Proxy string
	// 强制 HTTP/1.1
	DisableHTTP2 bool
}

// DefaultOptions 返回默认选项
func DefaultOptions() Options {
	return Options{
		Timeout: 30 * time.Second,
	}
}

// WithTimeout 设置超时时间
func (o Options) WithTimeout(timeout time.Duration) Options {
	o.Timeout = timeout
	return o
}

// WithProxy 设置代理
func (o Options) WithProxy(proxy string) Options {
	o.Proxy = strings.TrimSpace(proxy)
	return o
}

// New 创建HTTP客户端
func New(opts Options) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = 100
	transport.IdleConnTimeout = 90 * time.Second

	if opts.DisableHTTP2 {
		transport.ForceAttemptHTTP2 = false
	}

	if opts.Proxy != "" {
		proxyURL, err := url.Parse(opts.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
		if proxyURL.Scheme == "" || proxyURL.Host == "" {
			return nil, fmt.Errorf("invalid proxy url: %s", opts.Proxy)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
	}, nil
}
