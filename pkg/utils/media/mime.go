package media

import (
	"strconv"
	"strings"
)

const (
	// DefaultExt MIME 未知时使用的扩展名
	DefaultExt = "mp4"

	ExtM4A  = "m4a"
	ExtWebM = "webm"

	MimeVideoMP4  = "video/mp4"
	MimeAudioMP4  = "audio/mp4"
	MimeVideoWebM = "video/webm"
	MimeAudioWebM = "audio/webm"
)

// CodecNone 不包含该轨道
const CodecNone = "none"

// BaseMime 去掉参数部分, 如 `video/mp4; codecs="..."` -> video/mp4
func BaseMime(mime string) string {
	base, _, _ := strings.Cut(mime, ";")
	return strings.ToLower(strings.TrimSpace(base))
}

// ExtFromMime 根据 MIME 推断扩展名(不带点)
func ExtFromMime(mime string) string {
	base := BaseMime(mime)
	if base == "" {
		return DefaultExt
	}
	switch base {
	case MimeVideoMP4:
		return DefaultExt
	case MimeAudioMP4:
		return ExtM4A
	case MimeVideoWebM, MimeAudioWebM:
		return ExtWebM
	}
	if _, sub, ok := strings.Cut(base, "/"); ok && sub != "" {
		return sub
	}
	return DefaultExt
}

// ParseCodecs 从 MIME 的 codecs 参数解析视频/音频编码
// video/* 两个编码时依次为视频、音频; 一个编码时只有视频
// audio/* 只有音频; 缺失的一侧返回 none
func ParseCodecs(mime string) (vcodec, acodec string) {
	vcodec, acodec = CodecNone, CodecNone

	codecs := codecList(mime)
	switch {
	case strings.HasPrefix(BaseMime(mime), "video/"):
		if len(codecs) > 0 {
			vcodec = codecs[0]
		}
		if len(codecs) > 1 {
			acodec = codecs[1]
		}
	case strings.HasPrefix(BaseMime(mime), "audio/"):
		if len(codecs) > 0 {
			acodec = codecs[0]
		}
	}
	return vcodec, acodec
}

func codecList(mime string) []string {
	_, params, ok := strings.Cut(mime, ";")
	if !ok {
		return nil
	}
	for _, param := range strings.Split(params, ";") {
		key, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || strings.ToLower(strings.TrimSpace(key)) != "codecs" {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		var codecs []string
		for _, c := range strings.Split(value, ",") {
			if c = strings.TrimSpace(c); c != "" {
				codecs = append(codecs, c)
			}
		}
		return codecs
	}
	return nil
}

// Resolution 宽高格式化为 WxH, 任一为 0 时返回空串
func Resolution(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return strconv.Itoa(width) + "x" + strconv.Itoa(height)
}
