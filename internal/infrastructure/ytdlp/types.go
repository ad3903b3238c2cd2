package ytdlp

import (
	"math"

	"github.com/easayliu/ytdl-web/internal/domain/entities"
)

// rawInfo yt-dlp -J 输出中用到的字段
// 任何字段都可能缺失或为 null
type rawInfo struct {
	ID         *string     `json:"id"`
	Title      *string     `json:"title"`
	Uploader   *string     `json:"uploader"`
	Duration   *float64    `json:"duration"`
	ViewCount  *float64    `json:"view_count"`
	UploadDate *string     `json:"upload_date"`
	Thumbnail  *string     `json:"thumbnail"`
	Formats    []rawFormat `json:"formats"`
}

type rawFormat struct {
	FormatID   *string  `json:"format_id"`
	Ext        *string  `json:"ext"`
	Resolution *string  `json:"resolution"`
	FPS        *float64 `json:"fps"`
	TBR        *float64 `json:"tbr"`
	Filesize   *float64 `json:"filesize"`
	VCodec     *string  `json:"vcodec"`
	ACodec     *string  `json:"acodec"`
}

func (r *rawInfo) toEntity() *entities.VideoInfo {
	info := &entities.VideoInfo{
		ID:         stringOr(r.ID, entities.NotAvailable),
		Title:      stringOr(r.Title, entities.NotAvailable),
		Uploader:   stringOr(r.Uploader, entities.NotAvailable),
		UploadDate: nonEmpty(r.UploadDate),
		Thumbnail:  nonEmpty(r.Thumbnail),
		Formats:    make([]entities.FormatDescriptor, 0, len(r.Formats)),
	}
	if r.Duration != nil && *r.Duration > 0 {
		info.Duration = int(*r.Duration)
	}
	if r.ViewCount != nil {
		views := int64(*r.ViewCount)
		info.ViewCount = &views
	}
	for _, f := range r.Formats {
		info.Formats = append(info.Formats, f.toEntity())
	}
	return info
}

func (f rawFormat) toEntity() entities.FormatDescriptor {
	d := entities.FormatDescriptor{
		FormatID:   stringOr(f.FormatID, entities.NotAvailable),
		Extension:  stringOr(f.Ext, entities.NotAvailable),
		Resolution: stringOr(f.Resolution, entities.NotAvailable),
		FPS:        f.FPS,
		Bitrate:    f.TBR,
		VideoCodec: stringOr(f.VCodec, entities.CodecNone),
		AudioCodec: stringOr(f.ACodec, entities.CodecNone),
	}
	if f.Filesize != nil {
		size := int64(math.Round(*f.Filesize))
		d.Filesize = &size
	}
	return d
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
