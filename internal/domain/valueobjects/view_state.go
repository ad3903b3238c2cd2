package valueobjects

// ViewState 页面状态
// Idle -> Loaded -> Downloading -> Loaded, 抓取失败回到 Idle
type ViewState string

const (
	ViewStateIdle        ViewState = "idle"        // 未输入URL或抓取失败
	ViewStateLoaded      ViewState = "loaded"      // 已获取视频信息
	ViewStateDownloading ViewState = "downloading" // 下载中, 阻塞
)

// String 返回状态的字符串表示
func (s ViewState) String() string {
	return string(s)
}

// IsValid 检查状态是否有效
func (s ViewState) IsValid() bool {
	switch s {
	case ViewStateIdle, ViewStateLoaded, ViewStateDownloading:
		return true
	default:
		return false
	}
}

// IsBusy 是否正在执行阻塞操作
func (s ViewState) IsBusy() bool {
	return s == ViewStateDownloading
}

// CanDownload 只有 Loaded 状态允许开始下载
func (s ViewState) CanDownload() bool {
	return s == ViewStateLoaded
}

// NewViewState 创建页面状态, 无效值回落到 Idle
func NewViewState(value string) ViewState {
	state := ViewState(value)
	if state.IsValid() {
		return state
	}
	return ViewStateIdle
}
