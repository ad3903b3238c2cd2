package kkdai

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/easayliu/ytdl-web/internal/domain/entities"
	"github.com/easayliu/ytdl-web/internal/infrastructure/config"
	"github.com/easayliu/ytdl-web/pkg/httpclient"
	"github.com/easayliu/ytdl-web/pkg/logger"
	"github.com/easayliu/ytdl-web/pkg/utils/media"
	"github.com/kkdai/youtube/v2"
)

// Client 基于 kkdai/youtube 的原生 YouTube 抽取后端
type Client struct {
	config *config.ExtractorConfig
	client *youtube.Client
}

func NewClient(cfg *config.ExtractorConfig) (*Client, error) {
	// 下载可能持续很久, 不设置整体超时
	httpClient, err := httpclient.New(httpclient.Options{Proxy: cfg.Proxy})
	if err != nil {
		return nil, err
	}

	return &Client{
		config: cfg,
		client: &youtube.Client{HTTPClient: httpClient},
	}, nil
}

// Name 后端名称
func (c *Client) Name() string {
	return config.BackendKkdai
}

// Extract 获取视频信息
func (c *Client) Extract(ctx context.Context, url string) (*entities.VideoInfo, error) {
	video, err := c.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, err
	}
	return toVideoInfo(video), nil
}

// Download 下载指定 itag 到输出目录
func (c *Client) Download(ctx context.Context, req entities.DownloadRequest) error {
	video, err := c.client.GetVideoContext(ctx, req.URL)
	if err != nil {
		return err
	}

	format, err := selectFormat(video.Formats, req.EffectiveFormat())
	if err != nil {
		return err
	}

	stream, size, err := c.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(req.OutputDir, media.SafeFilename(video.Title, media.ExtFromMime(format.MimeType)))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	logger.Info("Downloading stream", "video_id", video.ID, "itag", format.ItagNo, "size", size, "path", path)
	if _, err := io.Copy(file, stream); err != nil {
		return fmt.Errorf("failed to write stream: %w", err)
	}
	return nil
}

// selectFormat best 优先选择音视频合并的最高码率格式, 否则按 itag 精确匹配
func selectFormat(formats youtube.FormatList, formatID string) (*youtube.Format, error) {
	if len(formats) == 0 {
		return nil, fmt.Errorf("no formats available")
	}

	if formatID == entities.BestFormat {
		var best *youtube.Format
		for i := range formats {
			f := &formats[i]
			vcodec, acodec := media.ParseCodecs(f.MimeType)
			if vcodec == media.CodecNone || (acodec == media.CodecNone && f.AudioChannels == 0) {
				continue
			}
			if best == nil || f.Bitrate > best.Bitrate {
				best = f
			}
		}
		if best == nil {
			best = &formats[0]
		}
		return best, nil
	}

	itag, err := strconv.Atoi(formatID)
	if err != nil {
		return nil, fmt.Errorf("requested format is not available: %s", formatID)
	}
	for i := range formats {
		if formats[i].ItagNo == itag {
			return &formats[i], nil
		}
	}
	return nil, fmt.Errorf("requested format is not available: %s", formatID)
}

func toVideoInfo(video *youtube.Video) *entities.VideoInfo {
	info := &entities.VideoInfo{
		ID:       orNA(video.ID),
		Title:    orNA(video.Title),
		Uploader: orNA(video.Author),
		Duration: int(video.Duration.Seconds()),
		Formats:  make([]entities.FormatDescriptor, 0, len(video.Formats)),
	}

	views := int64(video.Views)
	info.ViewCount = &views

	if !video.PublishDate.IsZero() {
		date := video.PublishDate.Format("20060102")
		info.UploadDate = &date
	}

	// 缩略图按尺寸递增排列, 取最后一张
	if n := len(video.Thumbnails); n > 0 {
		thumb := video.Thumbnails[n-1].URL
		info.Thumbnail = &thumb
	}

	for _, f := range video.Formats {
		info.Formats = append(info.Formats, toDescriptor(f))
	}
	return info
}

func toDescriptor(f youtube.Format) entities.FormatDescriptor {
	vcodec, acodec := media.ParseCodecs(f.MimeType)

	d := entities.FormatDescriptor{
		FormatID:   strconv.Itoa(f.ItagNo),
		Extension:  media.ExtFromMime(f.MimeType),
		Resolution: media.Resolution(f.Width, f.Height),
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
	if f.FPS > 0 {
		fps := float64(f.FPS)
		d.FPS = &fps
	}
	if f.Bitrate > 0 {
		kbps := float64(f.Bitrate) / 1000
		d.Bitrate = &kbps
	}
	if f.ContentLength > 0 {
		size := f.ContentLength
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
