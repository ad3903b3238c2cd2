package utils

import (
	"fmt"
	"time"
)

// UploadDateLayout 上传日期格式, 与 yt-dlp 的 upload_date 一致
const UploadDateLayout = "20060102"

// FormatClock 秒数格式化为 HH:MM:SS, 小时不按天进位
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatUploadDate 时间转换为 YYYYMMDD, 零值返回空串
func FormatUploadDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(UploadDateLayout)
}
