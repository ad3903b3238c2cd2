package session

// 页面提示文本
const (
	MessageFetching      = "Fetching video information..."
	MessageDownloading   = "Downloading... This may take a while depending on file size"
	MessageDownloadDone  = "✅ Download completed!"
	MessageNoFormats     = "No formats available for this video"
	MessageNothingLoaded = "Enter a video URL and wait for the formats to load first"
	PrefixFetchError     = "Error extracting video info: "
	PrefixDownloadError  = "Download error: "
)
