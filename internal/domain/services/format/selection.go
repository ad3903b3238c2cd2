package format

import (
	"strings"

	"github.com/easayliu/ytdl-web/internal/domain/entities"
)

// SentinelLabel 下拉框首项, 对应后端自动选择最佳格式
const SentinelLabel = entities.BestFormat + " - Best quality (recommended)"

const labelSeparator = " - "

// OptionLabel 生成单行的下拉框文本
// {format_id} - {type} - {resolution} - {extension} - {filesize}
func OptionLabel(row FormatRow) string {
	return strings.Join([]string{
		row.FormatID,
		row.Type,
		row.Resolution,
		row.Extension,
		row.Filesize,
	}, labelSeparator)
}

// ToOptions 生成下拉框选项, 首项固定为 SentinelLabel
func ToOptions(rows []FormatRow) []string {
	options := make([]string, 0, len(rows)+1)
	options = append(options, SentinelLabel)
	for _, row := range rows {
		options = append(options, OptionLabel(row))
	}
	return options
}

// FromOption 从下拉框文本还原 format id, 取第一个分隔符之前的部分
// 空选择视为 best
func FromOption(selection string) string {
	if selection == "" {
		return entities.BestFormat
	}
	id, _, _ := strings.Cut(selection, labelSeparator)
	if id == "" {
		return entities.BestFormat
	}
	return id
}
