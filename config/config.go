package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host   string `envconfig:"HOST" mapstructure:"host"`
	Port   string `envconfig:"PORT" mapstructure:"port"`
	Prefix string `envconfig:"PREFIX" mapstructure:"prefix"`
	Mode   Mode   `envconfig:"MODE" mapstructure:"mode"`
	// StrictStatus 为 true 时把兼容旧接口的错误状态码（如 /signups 失败返回 200）改为规范的 4xx
	StrictStatus bool     `envconfig:"STRICT_STATUS" mapstructure:"strict_status"`
	Database     Database `mapstructure:"database"`
	Log          Log      `mapstructure:"log"`
	Sentry       Sentry   `mapstructure:"sentry"`
	OTel         OTel     `mapstructure:"otel"`
}

type Database struct {
	// URI 存储连接串，支持 mysql://、postgres://、sqlite:// 以及裸 sqlite 文件路径
	URI          string `envconfig:"DB_URI" mapstructure:"uri"`
	MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" mapstructure:"max_open_conns"`
	MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" mapstructure:"max_idle_conns"`
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string  `envconfig:"SENTRY_DSN" mapstructure:"dsn"`
	Environment string  `envconfig:"SENTRY_ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64 `envconfig:"SENTRY_SAMPLE_RATE" mapstructure:"sample_rate"` // 性能追踪采样率
	// DBSlowThresholdMs 慢查询阈值，低于该值的数据库 span 不上报，0 表示全部上报
	DBSlowThresholdMs int `envconfig:"SENTRY_DB_SLOW_THRESHOLD_MS" mapstructure:"db_slow_threshold_ms"`
}

type OTel struct {
	Enable      bool   `envconfig:"OTEL_ENABLE" mapstructure:"enable"`
	AgentHost   string `envconfig:"OTEL_AGENT_HOST" mapstructure:"agent_host"`
	AgentPort   string `envconfig:"OTEL_AGENT_PORT" mapstructure:"agent_port"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" mapstructure:"service_name"`
}
