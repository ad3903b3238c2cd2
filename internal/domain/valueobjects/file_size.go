package valueobjects

import "fmt"

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// FileSize 文件大小值对象
// 不可变的值对象,自动提供格式化功能
type FileSize int64

// Bytes 返回字节数
func (f FileSize) Bytes() int64 {
	return int64(f)
}

// Format 格式化为人类可读的字符串
// 0 或负数显示 N/A; B 不带小数, KB/MB 一位小数, GB 两位小数
func (f FileSize) Format() string {
	if f <= 0 {
		return "N/A"
	}

	size := float64(f)
	switch {
	case f < kib:
		return fmt.Sprintf("%d B", int64(f))
	case f < mib:
		return fmt.Sprintf("%.1f KB", size/kib)
	case f < gib:
		return fmt.Sprintf("%.1f MB", size/mib)
	default:
		return fmt.Sprintf("%.2f GB", size/gib)
	}
}

// IsZero 判断是否为0
func (f FileSize) IsZero() bool {
	return f == 0
}

// NewFileSize 创建文件大小值对象
func NewFileSize(bytes int64) FileSize {
	if bytes < 0 {
		return FileSize(0)
	}
	return FileSize(bytes)
}

// FormatFileSize 格式化可能缺失的文件大小
func FormatFileSize(bytes *int64) string {
	if bytes == nil {
		return "N/A"
	}
	return NewFileSize(*bytes).Format()
}
