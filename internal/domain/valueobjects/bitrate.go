package valueobjects

import (
	"fmt"
	"math"
	"strconv"
)

// FormatBitrate 码率(kbps)四舍五入到整数, 缺失显示 N/A
func FormatBitrate(kbps *float64) string {
	if kbps == nil {
		return "N/A"
	}
	return fmt.Sprintf("%dkbps", int64(math.Round(*kbps)))
}

// FormatFPS 帧率按最短小数形式输出, 如 30 / 29.97
func FormatFPS(fps *float64) string {
	if fps == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*fps, 'f', -1, 64)
}
