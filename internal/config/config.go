package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string `env:"LISTEN_ADDR"`
	Port              string `env:"PORT" envDefault:"8080"`
	DatabasePath      string `env:"DATABASE_PATH" envDefault:"gallery.db"`
	SessionSecret     string `env:"SESSION_SECRET" envDefault:"gallery-dev-secret"`
	GinMode           string `env:"GIN_MODE" envDefault:"release"`
	UploadDir         string `env:"UPLOAD_DIR" envDefault:"web/static/uploads"`
	UploadURLPath     string `env:"UPLOAD_URL_PATH" envDefault:"/static/uploads"`
	SuperRootUserName string `env:"SUPER_ROOT_USER_NAME"`
	SuperRootPassword string `env:"SUPER_ROOT_PASSWORD"`
	SiteName          string `env:"SITE_NAME" envDefault:"Art Gallery"`
}

// ClientConfig 描述页面客户端访问站点所需的配置。
type ClientConfig struct {
	BaseURL string        `env:"GALLERY_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"GALLERY_TIMEOUT" envDefault:"20s"`
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Port = fallback(cfg.Port, "8080")
	cfg.ListenAddr = fallback(cfg.ListenAddr, ":"+cfg.Port)
	cfg.DatabasePath = fallback(cfg.DatabasePath, "gallery.db")
	cfg.SessionSecret = fallback(cfg.SessionSecret, "gallery-dev-secret")
	cfg.GinMode = fallback(cfg.GinMode, "release")
	cfg.UploadDir = fallback(cfg.UploadDir, "web/static/uploads")
	cfg.UploadURLPath = fallback(cfg.UploadURLPath, "/static/uploads")
	cfg.SiteName = fallback(cfg.SiteName, "Art Gallery")
	cfg.SuperRootUserName = strings.TrimSpace(cfg.SuperRootUserName)
	cfg.SuperRootPassword = strings.TrimSpace(cfg.SuperRootPassword)

	return cfg, nil
}

// LoadClient 读取客户端配置，BaseURL 去掉末尾斜杠。
func LoadClient() (ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(fallback(cfg.BaseURL, "http://localhost:8080"), "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	return cfg, nil
}

func fallback(value, def string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	return value
}
