package ytget

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/easayliu/ytdl-web/internal/domain/entities"
	"github.com/easayliu/ytdl-web/internal/infrastructure/config"
	"github.com/easayliu/ytdl-web/pkg/httpclient"
	"github.com/easayliu/ytdl-web/pkg/logger"
	"github.com/easayliu/ytdl-web/pkg/utils/media"
	"github.com/ytget/ytdlp/v2"
)

// Client 基于 ytget/ytdlp 的原生 YouTube 抽取后端
type Client struct {
	config *config.ExtractorConfig
	opts   httpclient.Options
}

func NewClient(cfg *config.ExtractorConfig) (*Client, error) {
	opts := httpclient.Options{Proxy: cfg.Proxy, DisableHTTP2: true}
	// 提前校验代理配置
	if _, err := httpclient.New(opts); err != nil {
		return nil, err
	}
	return &Client{config: cfg, opts: opts}, nil
}

// Name 后端名称
func (c *Client) Name() string {
	return config.BackendYtget
}

// Extract 解析视频信息和可用格式
func (c *Client) Extract(ctx context.Context, url string) (*entities.VideoInfo, error) {
	dl, err := c.downloader(entities.BestFormat, "")
	if err != nil {
		return nil, err
	}

	_, info, err := dl.ResolveURL(ctx, url)
	if err != nil {
		return nil, err
	}
	return toVideoInfo(info), nil
}

// Download 下载指定 itag 到输出目录, 文件名由标题生成
func (c *Client) Download(ctx context.Context, req entities.DownloadRequest) error {
	selector, err := formatSelector(req.EffectiveFormat())
	if err != nil {
		return err
	}

	// 输出路径是已存在的目录时才会在其中按标题生成文件名
	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	dl, err := c.downloader(selector, req.OutputDir)
	if err != nil {
		return err
	}

	info, err := dl.Download(ctx, req.URL)
	if err != nil {
		return err
	}
	logger.Info("Download finished", "backend", c.Name(), "video_id", info.ID, "title", info.Title)
	return nil
}

func (c *Client) downloader(selector, outputDir string) (*ytdlp.Downloader, error) {
	httpClient, err := httpclient.New(c.opts)
	if err != nil {
		return nil, err
	}
	return ytdlp.New().
		WithFormat(selector, "").
		WithOutputPath(outputDir).
		WithHTTPClient(httpClient), nil
}

// formatSelector best 原样传递, 其余必须是数字 itag
func formatSelector(formatID string) (string, error) {
	if formatID == entities.BestFormat {
		return formatID, nil
	}
	if _, err := strconv.Atoi(formatID); err != nil {
		return "", fmt.Errorf("requested format is not available: %s", formatID)
	}
	return "itag=" + formatID, nil
}

func toVideoInfo(info *ytdlp.VideoInfo) *entities.VideoInfo {
	result := &entities.VideoInfo{
		ID:       orNA(info.ID),
		Title:    orNA(info.Title),
		Uploader: orNA(info.Author),
		Formats:  make([]entities.FormatDescriptor, 0, len(info.Formats)),
	}
	if info.Duration > 0 {
		result.Duration = info.Duration
	}
	for _, f := range info.Formats {
		result.Formats = append(result.Formats, toDescriptor(f))
	}
	return result
}

func toDescriptor(f ytdlp.Format) entities.FormatDescriptor {
	vcodec, acodec := media.ParseCodecs(f.MimeType)

	d := entities.FormatDescriptor{
		FormatID:   strconv.Itoa(f.Itag),
		Extension:  media.ExtFromMime(f.MimeType),
		Resolution: strings.TrimSpace(f.Quality),
		VideoCodec: vcodec,
		AudioCodec: acodec,
	}
	if d.Resolution == "" {
		if vcodec == media.CodecNone {
			d.Resolution = "audio only"
		} else {
			d.Resolution = entities.NotAvailable
		}
	}
	if f.Bitrate > 0 {
		kbps := float64(f.Bitrate) / 1000
		d.Bitrate = &kbps
	}
	if f.Size > 0 {
		size := f.Size
		d.Filesize = &size
	}
	return d
}

func orNA(s string) string {
	if s == "" {
		return entities.NotAvailable
	}
	return s
}
