package entities

// BestFormat 交给抽取后端自行选择最佳质量的保留格式ID
const BestFormat = "best"

// DownloadRequest 单次下载请求, 不持久化
type DownloadRequest struct {
	URL       string `json:"url"`
	FormatID  string `json:"format_id"`
	OutputDir string `json:"output_dir"`
}

// EffectiveFormat 空格式ID按 best 处理
func (r DownloadRequest) EffectiveFormat() string {
	if r.FormatID == "" {
		return BestFormat
	}
	return r.FormatID
}
