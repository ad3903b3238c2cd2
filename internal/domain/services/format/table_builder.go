package format

import (
	"github.com/easayliu/ytdl-web/internal/domain/entities"
	"github.com/easayliu/ytdl-web/internal/domain/valueobjects"
)

// FormatRow 格式表中的一行, 全部为展示字符串
type FormatRow struct {
	FormatID   string `json:"format_id"`
	Extension  string `json:"extension"`
	Resolution string `json:"resolution"`
	FPS        string `json:"fps"`
	Bitrate    string `json:"bitrate"`
	Type       string `json:"type"`
	Filesize   string `json:"filesize"`
}

// BuildTable 将格式列表转换为展示行, 保持输入顺序, 一一对应
func BuildTable(formats []entities.FormatDescriptor) []FormatRow {
	rows := make([]FormatRow, 0, len(formats))
	for _, f := range formats {
		rows = append(rows, BuildRow(f))
	}
	return rows
}

// BuildRow 转换单个格式
func BuildRow(f entities.FormatDescriptor) FormatRow {
	f = f.Normalize()
	return FormatRow{
		FormatID:   f.FormatID,
		Extension:  f.Extension,
		Resolution: f.Resolution,
		FPS:        valueobjects.FormatFPS(f.FPS),
		Bitrate:    valueobjects.FormatBitrate(f.Bitrate),
		Type:       valueobjects.ClassifyContent(f.HasVideo(), f.HasAudio()).String(),
		Filesize:   valueobjects.FormatFileSize(f.Filesize),
	}
}
