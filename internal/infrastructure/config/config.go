package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 抽取后端
const (
	BackendYtDlp = "ytdlp" // yt-dlp 可执行文件
	BackendKkdai = "kkdai" // github.com/kkdai/youtube
	BackendYtget = "ytget" // github.com/ytget/ytdlp
)

// EnvPrefix 环境变量前缀, 如 YTDL_SERVER_PORT
const EnvPrefix = "YTDL"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Extractor ExtractorConfig `mapstructure:"extractor"`
	Download  DownloadConfig  `mapstructure:"download"`
	Session   SessionConfig   `mapstructure:"session"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release / test
}

type LogConfig struct {
	Level     string `mapstructure:"level"`
	Output    string `mapstructure:"output"` // console / file / both
	Format    string `mapstructure:"format"` // text / json
	FilePath  string `mapstructure:"file_path"`
	Colorize  bool   `mapstructure:"colorize"`
	AddSource bool   `mapstructure:"add_source"`
}

type ExtractorConfig struct {
	Backend     string `mapstructure:"backend"`
	Binary      string `mapstructure:"binary"`       // yt-dlp 可执行文件路径
	Proxy       string `mapstructure:"proxy"`        // 代理地址, 传给抽取后端
	CookiesFile string `mapstructure:"cookies_file"` // Netscape 格式 cookies 文件
	QPS         int    `mapstructure:"qps"`          // 每秒调用抽取后端次数限制, 0 不限制
}

type DownloadConfig struct {
	DefaultDir string `mapstructure:"default_dir"` // 下载目录输入框默认值
}

type SessionConfig struct {
	CookieName string        `mapstructure:"cookie_name"`
	TTL        time.Duration `mapstructure:"ttl"`        // 会话空闲超过该时长即清理
	SweepSpec  string        `mapstructure:"sweep_spec"` // cron 表达式
}

type TelegramConfig struct {
	Enabled  bool    `mapstructure:"enabled"`
	BotToken string  `mapstructure:"bot_token"`
	ChatIDs  []int64 `mapstructure:"chat_ids"`
}

// LoadConfig 加载配置: .env -> config.yaml -> 环境变量
func LoadConfig() (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.Download.DefaultDir == "" {
		config.Download.DefaultDir = DefaultDownloadDir()
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8501")
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "console")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file_path", "logs/ytdl-web.log")
	v.SetDefault("log.colorize", false)

	v.SetDefault("extractor.backend", BackendYtDlp)
	v.SetDefault("extractor.binary", "yt-dlp")
	v.SetDefault("extractor.qps", 0)

	v.SetDefault("download.default_dir", DefaultDownloadDir())

	v.SetDefault("session.cookie_name", "ytdl_session")
	v.SetDefault("session.ttl", 2*time.Hour)
	v.SetDefault("session.sweep_spec", "@every 10m")

	v.SetDefault("telegram.enabled", false)
}

// DefaultDownloadDir 当前用户主目录下的 Downloads
func DefaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "Downloads"
	}
	return filepath.Join(home, "Downloads")
}
