package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Pakman PakmanConfig `mapstructure:"pakman"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// PakmanConfig 承运商接入配置
// 预览和结账确认使用不同的超时：结账对延迟不敏感，允许等更久
type PakmanConfig struct {
	BaseURL           string `mapstructure:"base_url"`
	PreviewTimeoutMs  int    `mapstructure:"preview_timeout_ms"`
	CheckoutTimeoutMs int    `mapstructure:"checkout_timeout_ms"`
}

// Load 从配置文件加载配置
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// 兼容性处理：缺省值
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Pakman.PreviewTimeoutMs == 0 {
		cfg.Pakman.PreviewTimeoutMs = 6000
	}
	if cfg.Pakman.CheckoutTimeoutMs == 0 {
		cfg.Pakman.CheckoutTimeoutMs = 8000
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.Pakman.BaseURL == "" {
		return fmt.Errorf("pakman base_url is required")
	}
	if c.Pakman.PreviewTimeoutMs <= 0 || c.Pakman.CheckoutTimeoutMs <= 0 {
		return fmt.Errorf("pakman timeouts must be positive")
	}
	return nil
}

// PreviewTimeout 购物车预览场景的承运商调用超时
func (c *Config) PreviewTimeout() time.Duration {
	return time.Duration(c.Pakman.PreviewTimeoutMs) * time.Millisecond
}

// CheckoutTimeout 结账确认场景的承运商调用超时
func (c *Config) CheckoutTimeout() time.Duration {
	return time.Duration(c.Pakman.CheckoutTimeoutMs) * time.Millisecond
}
