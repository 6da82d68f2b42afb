package config

import (
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var cfg = defaults()

func defaults() *Config {
	return &Config{
		Host: "0.0.0.0",
		Port: "5555",
		Mode: ModeDebug,
		Database: Database{
			URI:          "sqlite://app.db",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Log: Log{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
		OTel: OTel{
			AgentPort:   "4318",
			ServiceName: "camp-signup-system",
		},
	}
}

// Init 读取配置文件并用环境变量覆盖，失败时 panic
func Init() {
	c, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}
	cfg = c
}

// Load 按 默认值 -> 配置文件 -> 环境变量 的顺序组装配置
// path 为空时在工作目录查找 config.yaml，找不到文件不算错误
func Load(path string) (*Config, error) {
	c := defaults()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "读取配置文件失败")
		}
	} else if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "解析配置文件失败")
	}

	if err := envconfig.Process("", c); err != nil {
		return nil, errors.Wrap(err, "读取环境变量失败")
	}

	c.Mode = Mode(strings.ToLower(string(c.Mode)))
	if c.Mode != ModeDebug && c.Mode != ModeRelease {
		return nil, errors.Errorf("未知的运行模式: %q", c.Mode)
	}
	return c, nil
}

func Get() *Config {
	return cfg
}

// Set 替换全局配置，供测试和嵌入式启动使用
func Set(c *Config) {
	cfg = c
}
