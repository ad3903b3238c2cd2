package ytdlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/easayliu/ytdl-web/internal/domain/entities"
	"github.com/easayliu/ytdl-web/internal/infrastructure/config"
	"github.com/easayliu/ytdl-web/pkg/logger"
	goytdlp "github.com/lrstanley/go-ytdlp"
)

// OutputTemplate 下载文件名模板
const OutputTemplate = "%(title)s.%(ext)s"

// CommandError yt-dlp 执行失败
// Error() 返回 yt-dlp 报告的原始错误
type CommandError struct {
	Message string
	Err     error
}

func (e *CommandError) Error() string { return e.Message }

func (e *CommandError) Unwrap() error { return e.Err }

// Client 通过 yt-dlp 可执行文件抽取视频
type Client struct {
	config *config.ExtractorConfig
}

func NewClient(cfg *config.ExtractorConfig) *Client {
	return &Client{config: cfg}
}

// Name 后端名称
func (c *Client) Name() string {
	return config.BackendYtDlp
}

// Extract 执行 yt-dlp -J 获取视频信息
func (c *Client) Extract(ctx context.Context, url string) (*entities.VideoInfo, error) {
	cmd := c.command().DumpSingleJSON().NoWarnings()

	logger.Debug("Running yt-dlp metadata extraction", "url", url)
	result, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, commandError(result, err)
	}

	info, err := parseInfo([]byte(result.Stdout))
	if err != nil {
		return nil, &CommandError{Message: err.Error(), Err: err}
	}
	return info, nil
}

// Download 执行 yt-dlp -f <id> -o <dir>/%(title)s.%(ext)s
func (c *Client) Download(ctx context.Context, req entities.DownloadRequest) error {
	cmd := c.command().
		Format(req.EffectiveFormat()).
		Output(OutputPath(req.OutputDir)).
		Quiet()

	logger.Debug("Running yt-dlp download", "url", req.URL, "format", req.EffectiveFormat(), "output_dir", req.OutputDir)
	result, err := cmd.Run(ctx, req.URL)
	if err != nil {
		return commandError(result, err)
	}
	return nil
}

func (c *Client) command() *goytdlp.Command {
	cmd := goytdlp.New()
	if c.config.Binary != "" {
		cmd.SetExecutable(c.config.Binary)
	}
	if c.config.Proxy != "" {
		cmd.Proxy(c.config.Proxy)
	}
	if c.config.CookiesFile != "" {
		cmd.Cookies(c.config.CookiesFile)
	}
	return cmd
}

// OutputPath 拼接输出目录和文件名模板, 不做路径清洗
func OutputPath(dir string) string {
	return dir + "/" + OutputTemplate
}

func parseInfo(data []byte) (*entities.VideoInfo, error) {
	var raw rawInfo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}
	return raw.toEntity(), nil
}

func commandError(result *goytdlp.Result, err error) error {
	var stderr string
	if result != nil {
		stderr = result.Stderr
	}
	return &CommandError{Message: errorMessage(stderr, err), Err: err}
}

// errorMessage 优先取 stderr 中的 ERROR 行, 其次整个 stderr, 最后是进程错误
func errorMessage(stderr string, err error) string {
	var lines []string
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "ERROR:") {
			lines = append(lines, line)
		}
	}
	if len(lines) > 0 {
		return strings.Join(lines, "\n")
	}
	if trimmed := strings.TrimSpace(stderr); trimmed != "" {
		return trimmed
	}
	if err != nil {
		return err.Error()
	}
	return "unknown yt-dlp error"
}
