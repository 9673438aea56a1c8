package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 應用程式的完整設定
type Config struct {
	Server  ServerConfig `mapstructure:"server"`
	DB      DBConfig     `mapstructure:"db"`
	Echo    EchoConfig   `mapstructure:"echo"`
	Log     LogConfig    `mapstructure:"log"`
	CORS    CORSConfig   `mapstructure:"cors"`
	Welcome string       `mapstructure:"welcome"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DBConfig 資料庫連線與連線池設定
type DBConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"` // sqlite 時為資料庫檔案路徑
	Port            int           `mapstructure:"port"`
	PoolSize        int           `mapstructure:"pool_size"`
	AcquireTimeout  time.Duration `mapstructure:"acquire_timeout"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// EchoConfig 遠端 Keyword Echo Service 的設定
type EchoConfig struct {
	URL     string        `mapstructure:"url"`
	Name    string        `mapstructure:"name"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// 支援的資料庫驅動
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// EnvPrefix 環境變數前綴，例如 CATALOG_DB_HOST
const EnvPrefix = "CATALOG"

// Load 讀取設定
// 設定檔不存在時使用預設值，環境變數會覆蓋設定檔中的值
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		if p != "" {
			v.AddConfigPath(p)
		}
	}
	v.AddConfigPath("./pkg/config")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults 預設值沿用原本寫死在程式中的常數
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":3000")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "root")
	v.SetDefault("db.password", "root")
	v.SetDefault("db.name", "sample")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.pool_size", 5)
	v.SetDefault("db.acquire_timeout", 10*time.Second)
	v.SetDefault("db.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("echo.url", "http://localhost:3001/say")
	v.SetDefault("echo.name", "Ajay")
	v.SetDefault("echo.timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("welcome", "Hi, my name is Ajay Shankar. Welcome to this REST-like API application.")
}

// Validate 檢查設定是否合法
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported db driver: %q", c.DB.Driver)
	}

	if c.DB.PoolSize < 1 {
		return fmt.Errorf("db.pool_size must be at least 1, got %d", c.DB.PoolSize)
	}

	if c.Server.Address == "" {
		return errors.New("server.address is required")
	}

	if c.Echo.URL == "" {
		return errors.New("echo.url is required")
	}

	if c.Echo.Name == "" {
		return errors.New("echo.name is required")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Log.Format)
	}

	return nil
}
