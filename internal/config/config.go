package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-insight-go/internal/constants"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	// 服务器配置
	Server ServerConfig `yaml:"server"`

	// 上传限制配置
	Upload UploadConfig `yaml:"upload"`

	// Tika服务器配置（可选的PDF解析后端）
	Tika TikaConfig `yaml:"tika"`

	// Redis配置（可选的分析结果缓存）
	Redis RedisConfig `yaml:"redis"`

	// 日志配置
	Logger LoggerConfig `yaml:"logger"`

	// 当前分析流水线版本标识
	ActiveAnalyzerVersion string `yaml:"active_analyzer_version"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Address string `yaml:"address"` // 例如 ":8080" 或 "0.0.0.0:8080"
}

// UploadConfig 文件上传限制
type UploadConfig struct {
	MaxFileSizeMB     int      `yaml:"max_file_size_mb"`   // 上传文件大小上限(MB)
	AllowedExtensions []string `yaml:"allowed_extensions"` // 允许的文件扩展名，例如 [".pdf"]
}

// TikaConfig Tika服务器配置结构
type TikaConfig struct {
	ServerURL    string `yaml:"server_url"`      // Tika服务器URL
	Timeout      int    `yaml:"timeout_seconds"` // 超时时间(秒)
	Type         string `yaml:"type"`            // 解析器类型，"tika" 时启用
	MetadataMode string `yaml:"metadata_mode"`   // 元数据模式: "full", "minimal", "none"
}

// RedisConfig Redis配置结构
type RedisConfig struct {
	Address  string `yaml:"address"` // 为空时禁用结果缓存
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// 连接池设置
	PoolSize     int `yaml:"pool_size"`      // 连接池大小
	MinIdleConns int `yaml:"min_idle_conns"` // 最小空闲连接数
	// 超时设置
	DialTimeoutSeconds  int `yaml:"dial_timeout_seconds"`  // 连接超时(秒)
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`  // 读取超时(秒)
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"` // 写入超时(秒)
	// 重试设置
	MaxRetries        int `yaml:"max_retries"`          // 最大重试次数
	MinRetryBackoffMS int `yaml:"min_retry_backoff_ms"` // 最小重试间隔(毫秒)
	MaxRetryBackoffMS int `yaml:"max_retry_backoff_ms"` // 最大重试间隔(毫秒)
	// 连接生命周期
	ConnMaxLifetimeMinutes int `yaml:"conn_max_lifetime_minutes"`  // 连接最大生命周期(分钟)
	ConnMaxIdleTimeMinutes int `yaml:"conn_max_idle_time_minutes"` // 空闲连接最大生命周期(分钟)
	// 分析结果缓存有效期(小时)
	ResultCacheExpireHours int `yaml:"result_cache_expire_hours"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // 时间格式
	ReportCaller bool   `yaml:"report_caller"` // 是否报告调用位置
}

// LoadConfig 从文件加载配置
// 未指定路径时在常见位置查找；测试环境中找不到文件则返回默认配置
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			"../../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-insight", "config.yaml"),
		}

		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths, filepath.Join(execDir, "config.yaml"))
			searchPaths = append(searchPaths, filepath.Join(execDir, "..", "config.yaml"))
		}

		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}

		if configPath == "" {
			if isTestEnvironment() {
				return createDefaultConfig(), nil
			}
			configPath = "config.yaml"
		}
	}

	if _, err := os.Stat(configPath); err != nil {
		if isTestEnvironment() {
			return createDefaultConfig(), nil
		}
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 从环境变量覆盖配置（如果存在）
	if envAddr := os.Getenv("RESUME_INSIGHT_REDIS_ADDR"); envAddr != "" {
		config.Redis.Address = envAddr
	}
	if envURL := os.Getenv("RESUME_INSIGHT_TIKA_URL"); envURL != "" {
		config.Tika.ServerURL = envURL
	}
	if envAddr := os.Getenv("RESUME_INSIGHT_SERVER_ADDR"); envAddr != "" {
		config.Server.Address = envAddr
	}

	applyDefaults(&config)
	return &config, nil
}

// isTestEnvironment 粗略判断当前是否运行在 go test 下
func isTestEnvironment() bool {
	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			return true
		}
	}
	return false
}

// applyDefaults 填充缺省值
func applyDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = ":8080"
	}
	if config.Upload.MaxFileSizeMB == 0 {
		config.Upload.MaxFileSizeMB = 16
	}
	if len(config.Upload.AllowedExtensions) == 0 {
		config.Upload.AllowedExtensions = []string{".pdf"}
	}
	if config.Redis.ResultCacheExpireHours == 0 {
		config.Redis.ResultCacheExpireHours = 24
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Logger.TimeFormat == "" {
		config.Logger.TimeFormat = "2006-01-02 15:04:05"
	}
	if config.ActiveAnalyzerVersion == "" {
		config.ActiveAnalyzerVersion = constants.DefaultAnalyzerVersion
	}
}

// createDefaultConfig 创建默认配置，用于测试环境
func createDefaultConfig() *Config {
	config := &Config{}

	config.Server.Address = ":8080"

	config.Upload.MaxFileSizeMB = 16
	config.Upload.AllowedExtensions = []string{".pdf"}

	// Tika默认不启用，使用内置的Eino解析器
	config.Tika.ServerURL = ""
	config.Tika.Timeout = 60
	config.Tika.MetadataMode = "minimal"

	// Redis默认不启用（Address为空表示禁用缓存）
	config.Redis.Address = ""
	config.Redis.DB = 0
	config.Redis.PoolSize = 10
	config.Redis.MinIdleConns = 2
	config.Redis.DialTimeoutSeconds = 5
	config.Redis.ReadTimeoutSeconds = 3
	config.Redis.WriteTimeoutSeconds = 3
	config.Redis.MaxRetries = 3
	config.Redis.MinRetryBackoffMS = 8
	config.Redis.MaxRetryBackoffMS = 512
	config.Redis.ConnMaxLifetimeMinutes = 60
	config.Redis.ConnMaxIdleTimeMinutes = 30
	config.Redis.ResultCacheExpireHours = 24

	config.Logger.Level = "info"
	config.Logger.Format = "pretty"
	config.Logger.TimeFormat = "2006-01-02 15:04:05"
	config.Logger.ReportCaller = true

	config.ActiveAnalyzerVersion = constants.DefaultAnalyzerVersion

	return config
}

// CreateSampleConfig 创建一个示例配置文件
func CreateSampleConfig(filePath string) error {
	if _, err := os.Stat(filePath); err == nil {
		return fmt.Errorf("文件 '%s' 已存在，不会覆盖", filePath)
	}

	config := createDefaultConfig()

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("写入示例配置文件 '%s' 失败: %w", filePath, err)
	}

	fmt.Printf("示例配置文件已创建: %s\n", filePath)
	return nil
}
