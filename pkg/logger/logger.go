package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Options 日志初始化参数
type Options struct {
	Level     string // debug / info / warn / error
	Output    string // console / file / both
	Format    string // text / json
	FilePath  string
	Colorize  bool
	AddSource bool
}

var (
	defaultLogger *slog.Logger
	levelVar      = new(slog.LevelVar)
	mu            sync.Mutex
	logFile       *os.File
)

// Init 初始化全局日志
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	level, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}
	levelVar.Set(level)

	var writers []io.Writer
	var colorConsole bool

	switch strings.ToLower(opts.Output) {
	case "", "console":
		writers = append(writers, os.Stdout)
		colorConsole = opts.Colorize
	case "file", "both":
		f, err := openLogFile(opts.FilePath)
		if err != nil {
			return err
		}
		if logFile != nil {
			logFile.Close()
		}
		logFile = f
		writers = append(writers, f)
		if strings.ToLower(opts.Output) == "both" {
			writers = append(writers, os.Stdout)
		}
	default:
		return fmt.Errorf("unknown log output: %s", opts.Output)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       levelVar,
		AddSource:   opts.AddSource,
		ReplaceAttr: sanitizeAttr,
	}

	var handler slog.Handler
	out := io.MultiWriter(writers...)
	switch {
	case strings.ToLower(opts.Format) == "json":
		handler = slog.NewJSONHandler(out, handlerOpts)
	case colorConsole:
		handler = newColorHandler(out, handlerOpts)
	default:
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	defaultLogger = slog.New(handler)
	return nil
}

// SetLevel 动态调整日志级别
func SetLevel(level string) error {
	l, err := parseLevel(level)
	if err != nil {
		return err
	}
	levelVar.Set(l)
	return nil
}

// Get 返回底层 slog.Logger
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		levelVar.Set(slog.LevelInfo)
		defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:       levelVar,
			ReplaceAttr: sanitizeAttr,
		}))
	}
	return defaultLogger
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// With 返回附带固定字段的子日志
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}

// Close 关闭日志文件
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		path = "logs/app.log"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// sanitizeAttr 对敏感字段脱敏
func sanitizeAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		if v, ok := SanitizeValue(a.Key, a.Value.String()).(string); ok {
			a.Value = slog.StringValue(v)
		}
	}
	return a
}

// colorHandler 在文本格式基础上给级别加颜色
type colorHandler struct {
	slog.Handler
	out io.Writer
}

func newColorHandler(out io.Writer, opts *slog.HandlerOptions) *colorHandler {
	return &colorHandler{
		Handler: slog.NewTextHandler(out, opts),
		out:     out,
	}
}

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

func (h *colorHandler) Handle(ctx context.Context, r slog.Record) error {
	color := colorBlue
	switch {
	case r.Level >= slog.LevelError:
		color = colorRed
	case r.Level >= slog.LevelWarn:
		color = colorYellow
	case r.Level < slog.LevelInfo:
		color = colorGray
	}
	fmt.Fprint(h.out, color)
	err := h.Handler.Handle(ctx, r)
	fmt.Fprint(h.out, colorReset)
	return err
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &colorHandler{Handler: h.Handler.WithAttrs(attrs), out: h.out}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	return &colorHandler{Handler: h.Handler.WithGroup(name), out: h.out}
}
