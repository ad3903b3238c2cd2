package entities

// NotAvailable 缺失字段的展示占位符
const NotAvailable = "N/A"

// CodecNone 表示该格式不包含对应轨道
const CodecNone = "none"

// VideoInfo 一次成功抓取得到的视频元数据
// 创建后只读, 重新抓取时整体替换
type VideoInfo struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Uploader   string             `json:"uploader"`
	Duration   int                `json:"duration"` // 秒
	ViewCount  *int64             `json:"view_count,omitempty"`
	UploadDate *string            `json:"upload_date,omitempty"`
	Thumbnail  *string            `json:"thumbnail,omitempty"`
	Formats    []FormatDescriptor `json:"formats"`
}

// HasFormats 是否有可下载格式
func (v *VideoInfo) HasFormats() bool {
	return v != nil && len(v.Formats) > 0
}

// FormatDescriptor 抽取后端返回的单个可下载格式, 原样保存
type FormatDescriptor struct {
	FormatID   string   `json:"format_id"`
	Extension  string   `json:"ext"`
	Resolution string   `json:"resolution"`
	FPS        *float64 `json:"fps,omitempty"`
	Bitrate    *float64 `json:"tbr,omitempty"` // kbps
	Filesize   *int64   `json:"filesize,omitempty"`
	VideoCodec string   `json:"vcodec"`
	AudioCodec string   `json:"acodec"`
}

// HasVideo 是否包含视频轨
func (f FormatDescriptor) HasVideo() bool {
	return f.VideoCodec != CodecNone
}

// HasAudio 是否包含音频轨
func (f FormatDescriptor) HasAudio() bool {
	return f.AudioCodec != CodecNone
}

// Normalize 用占位符补齐缺失的字符串字段
func (f FormatDescriptor) Normalize() FormatDescriptor {
	if f.FormatID == "" {
		f.FormatID = NotAvailable
	}
	if f.Extension == "" {
		f.Extension = NotAvailable
	}
	if f.Resolution == "" {
		f.Resolution = NotAvailable
	}
	if f.VideoCodec == "" {
		f.VideoCodec = CodecNone
	}
	if f.AudioCodec == "" {
		f.AudioCodec = CodecNone
	}
	return f
}
