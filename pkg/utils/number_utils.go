package utils

import (
	"strconv"
)

// FormatCount 整数加千分位, 如 1234567 -> 1,234,567
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return digits
	}

	out := make([]byte, 0, len(digits)+len(digits)/3)
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	out = append(out, digits[:head]...)
	for i := head; i < len(digits); i += 3 {
		out = append(out, ',')
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}

// FormatOptionalCount 缺失时返回 N/A
func FormatOptionalCount(n *int64) string {
	if n == nil {
		return "N/A"
	}
	return FormatCount(*n)
}

// StringOr 字符串为空时返回默认值
func StringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
