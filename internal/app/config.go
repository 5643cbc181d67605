// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig 应用配置
type AppConfig struct {
	File      string          `yaml:"-"` // 配置文件路径，不序列化
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	App       AppSettings     `yaml:"app"`
	PostgREST PostgRESTConfig `yaml:"postgrest"`
	Site      SiteConfig      `yaml:"site"`
	Mail      MailConfig      `yaml:"mail"`
	Tracer    TracerConfig    `yaml:"tracer"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string `yaml:"level" default:"warn"`
	// File 日志文件路径，默认为 stderr
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production 是否启用 JSON 输出
	Production bool `yaml:"production" default:"true"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// RunMode 运行模式
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP 端口
	HttpPort string `yaml:"http-port" default:":8080"`
	// ReadTimeout 读取超时（秒）
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout 写入超时（秒）
	WriteTimeout int `yaml:"write-timeout" default:"60"`
	// PrivateHttpListen 私有 HTTP 监听地址
	PrivateHttpListen string `yaml:"private-http-listen" default:":8081"`
}

// AppSettings 应用设置
type AppSettings struct {
	// NotesPerPage 文件夹页单页笔记数
	NotesPerPage int `yaml:"notes-per-page" default:"20"`
	// RecentNotesLimit 首页最近笔记条数
	RecentNotesLimit int `yaml:"recent-notes-limit" default:"5"`
	// SummaryLength meta 描述最大长度
	SummaryLength int `yaml:"summary-length" default:"160"`
	// DefaultContextTimeout 默认上下文超时时间（秒）
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
	// StaticCacheMaxAge 静态资源缓存时间（秒）
	StaticCacheMaxAge int `yaml:"static-cache-max-age" default:"86400"`
}

// PostgRESTConfig 数据后端配置
type PostgRESTConfig struct {
	// Host PostgREST 地址，如 http://127.0.0.1:3000
	Host string `yaml:"host" default:"http://127.0.0.1:3000"`
	// Token Authorization 请求头的值
	Token string `yaml:"token"`
	// Timeout 请求超时（秒）
	Timeout int `yaml:"timeout" default:"10"`
}

// SiteConfig 站点配置
type SiteConfig struct {
	// URL 站点规范 URL，不带结尾斜杠
	URL string `yaml:"url" default:"http://localhost:8080"`
	// Title 站点名称
	Title string `yaml:"title" default:"Notes"`
	// Description 站点默认 meta 描述
	Description string `yaml:"description" default:"Web development notes and bookmarks"`
	// HomeArticleID 首页文章的 note_id
	HomeArticleID string `yaml:"home-article-id"`
	// ArticlesFolderID 文章文件夹的 folder_id
	ArticlesFolderID string `yaml:"articles-folder-id"`
}

// MailConfig SMTP 配置
type MailConfig struct {
	// Enabled 是否启用邮件投递，关闭时定时摘要任务不注册
	Enabled  bool   `yaml:"enabled" default:"false"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" default:"587"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// From 发件人地址
	From string `yaml:"from"`
}

// TracerConfig 请求追踪配置
type TracerConfig struct {
	// Enabled 是否启用追踪
	Enabled bool `yaml:"enabled" default:"true"`
	// Header 追踪 ID 请求头名称，默认 X-Trace-ID
	Header string `yaml:"header" default:"X-Trace-ID"`
}

// LoadConfig 从文件加载配置
// 返回配置实例和配置文件的绝对路径
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	// 设置默认值
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	err = yaml.Unmarshal(file, c)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// 再次设置默认值，以填充 YAML 中存在但值为空的字段
	// defaults.Set 只有在字段为该类型的零值时才会填充
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	return c, realpath, nil
}

// Save 保存配置到文件
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	err = os.WriteFile(c.File, data, 0644)
	if err != nil {
		return errors.Wrap(err, "write config file failed")
	}

	return nil
}

// GetContextTimeout 获取请求上下文超时时间
func (c *AppConfig) GetContextTimeout() time.Duration {
	return time.Duration(c.App.DefaultContextTimeout) * time.Second
}

// GetPostgRESTTimeout 获取 PostgREST 请求超时时间
func (c *AppConfig) GetPostgRESTTimeout() time.Duration {
	return time.Duration(c.PostgREST.Timeout) * time.Second
}
