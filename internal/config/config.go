package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultWorkers 并发探测数
	DefaultWorkers = 100
	// DefaultTimeout 未指定 -t 时的连接超时
	DefaultTimeout = 2 * time.Second
	// DefaultMaxHosts 地址块展开后的主机上限 (一个 IPv4 /16)
	DefaultMaxHosts = 1 << 16
)

// LogConfig 日志配置
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

// Config 运行时配置
type Config struct {
	Workers        int
	DefaultTimeout time.Duration
	MaxHosts       int
	Log            LogConfig
}

// Default 返回默认配置。日志默认只输出警告以上，避免干扰标准输出的探测结果
func Default() *Config {
	return &Config{
		Workers:        DefaultWorkers,
		DefaultTimeout: DefaultTimeout,
		MaxHosts:       DefaultMaxHosts,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.DefaultTimeout < 0 {
		return fmt.Errorf("default timeout must not be negative, got %v", c.DefaultTimeout)
	}
	if c.MaxHosts < 1 {
		return fmt.Errorf("max hosts must be at least 1, got %d", c.MaxHosts)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}
	return nil
}
