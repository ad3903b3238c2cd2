package valueobjects

// ContentType 格式的内容类型
type ContentType string

const (
	ContentTypeVideoAudio ContentType = "Video + Audio"
	ContentTypeVideoOnly  ContentType = "Video only"
	ContentTypeAudioOnly  ContentType = "Audio only"
	ContentTypeUnknown    ContentType = "Unknown"
)

// String 返回展示文本
func (c ContentType) String() string {
	return string(c)
}

// IsValid 检查内容类型是否有效
func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeVideoAudio, ContentTypeVideoOnly, ContentTypeAudioOnly, ContentTypeUnknown:
		return true
	default:
		return false
	}
}

// ClassifyContent 按是否包含视频/音频轨分类, 判断顺序固定
func ClassifyContent(hasVideo, hasAudio bool) ContentType {
	switch {
	case hasVideo && hasAudio:
		return ContentTypeVideoAudio
	case hasVideo:
		return ContentTypeVideoOnly
	case hasAudio:
		return ContentTypeAudioOnly
	default:
		return ContentTypeUnknown
	}
}
