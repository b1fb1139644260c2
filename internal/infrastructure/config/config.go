package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Fetch       FetchConfig     `mapstructure:"fetch"`
	Cache       CacheConfig     `mapstructure:"cache"`
	Redis       RedisConfig     `mapstructure:"redis"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// FetchConfig 頁面抓取配置
type FetchConfig struct {
	Timeout      time.Duration `mapstructure:"timeout"`
	UserAgent    string        `mapstructure:"user_agent"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	MaxRedirects int           `mapstructure:"max_redirects"`
}

// CacheConfig 解析結果緩存配置（記憶體）
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RedisConfig 共享緩存配置（選用）
type RedisConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
	DB      int    `mapstructure:"db"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件（不存在時不視為錯誤）
	_ = godotenv.Load()

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("fetch.timeout", "FETCH_TIMEOUT")
	viper.BindEnv("fetch.user_agent", "FETCH_USER_AGENT")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("redis.enabled", "REDIS_ENABLED")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "recipe-importer")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 抓取設定
	viper.SetDefault("fetch.timeout", "15s")
	viper.SetDefault("fetch.user_agent", "recipe-importer/1.0 (+https://recipe-importer.dev)")
	viper.SetDefault("fetch.max_body_bytes", 5*1024*1024) // 5MB
	viper.SetDefault("fetch.max_redirects", 5)

	// 快取設定
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("cache.cleanup_interval", "10m")

	// Redis 設定（預設關閉，開啟時走共享緩存）
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// dedup window 預設
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證抓取設定
	if config.Fetch.Timeout <= 0 {
		return fmt.Errorf("invalid fetch timeout")
	}
	if config.Fetch.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid fetch max body bytes")
	}

	// 驗證快取設定
	if config.Cache.Enabled {
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
	}

	// 驗證 Redis 設定
	if config.Redis.Enabled && config.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required when redis is enabled")
	}

	return nil
}
