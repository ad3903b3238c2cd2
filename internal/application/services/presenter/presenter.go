package presenter

import (
	"github.com/easayliu/ytdl-web/internal/application/services/session"
	"github.com/easayliu/ytdl-web/internal/domain/entities"
	"github.com/easayliu/ytdl-web/internal/domain/services/format"
	"github.com/easayliu/ytdl-web/internal/domain/valueobjects"
	"github.com/easayliu/ytdl-web/pkg/utils"
)

// PageTitle 页面标题
const PageTitle = "🎬 YouTube Downloader"

// PageView 页面渲染所需的全部数据, 由会话快照纯函数生成
type PageView struct {
	Title       string
	URL         string
	OutputDir   string
	State       string
	Busy        bool
	BusyMessage string
	Banners     []entities.Banner
	Video       *VideoDetails
	Rows        []format.FormatRow
	Options     []Option
	// ShowFormats 有可用格式时才显示表格和下拉框
	ShowFormats bool
}

// VideoDetails 视频信息区
type VideoDetails struct {
	Title      string
	Channel    string
	Duration   string
	ViewCount  string
	UploadDate string
	VideoID    string
	Thumbnail  string
}

// Option 下拉框选项
type Option struct {
	Label    string
	Selected bool
}

// Render 根据会话快照生成页面
// 格式表和选项在每次渲染时重新计算
func Render(sess *entities.Session) *PageView {
	view := &PageView{
		Title:     PageTitle,
		URL:       sess.URL,
		OutputDir: sess.OutputDir,
		State:     sess.State.String(),
		Banners:   sess.Banners,
	}

	if sess.State == valueobjects.ViewStateDownloading {
		view.Busy = true
		view.BusyMessage = session.MessageDownloading
	}

	if sess.Info == nil {
		return view
	}

	view.Video = details(sess.Info)
	if !sess.Info.HasFormats() {
		return view
	}

	view.ShowFormats = true
	view.Rows = format.BuildTable(sess.Info.Formats)
	view.Options = options(format.ToOptions(view.Rows), sess.Selection)
	return view
}

// RenderBusy 会话正在执行阻塞操作时的页面
func RenderBusy(activity string) *PageView {
	if activity == "" {
		activity = session.MessageDownloading
	}
	return &PageView{
		Title:       PageTitle,
		State:       valueobjects.ViewStateDownloading.String(),
		Busy:        true,
		BusyMessage: activity,
	}
}

func details(info *entities.VideoInfo) *VideoDetails {
	return &VideoDetails{
		Title:      info.Title,
		Channel:    info.Uploader,
		Duration:   utils.FormatClock(info.Duration),
		ViewCount:  utils.FormatOptionalCount(info.ViewCount),
		UploadDate: utils.StringOr(info.UploadDate, entities.NotAvailable),
		VideoID:    info.ID,
		Thumbnail:  utils.StringOr(info.Thumbnail, ""),
	}
}

// options 标记上次的选择, 找不到时默认选中首项
func options(labels []string, selection string) []Option {
	result := make([]Option, len(labels))
	selected := 0
	for i, label := range labels {
		result[i].Label = label
		if selection != "" && label == selection {
			selected = i
		}
	}
	result[selected].Selected = true
	return result
}
