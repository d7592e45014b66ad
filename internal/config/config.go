// Package config loads escp2renderd's configuration from a YAML file and
// environment variables, following the teacher's viper-based
// load-defaults-then-override-then-validate pattern.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Paper     PaperConfig     `mapstructure:"paper"`
	Rendering RenderingConfig `mapstructure:"rendering"`
	Transport TransportConfig `mapstructure:"transport"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	App       AppConfig       `mapstructure:"app"`
}

// ServerConfig is the gin HTTP server's listen address and timeouts.
type ServerConfig struct {
	Host         string        `mapstructure:"host" validate:"required"`
	Port         string        `mapstructure:"port" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// PaperConfig is the page geometry every render job uses; request bodies
// carry no paper settings of their own.
type PaperConfig struct {
	WidthInches  float64 `mapstructure:"width_inches"`
	HeightInches float64 `mapstructure:"height_inches"`
	MarginTop    int     `mapstructure:"margin_top"`
	MarginBottom int     `mapstructure:"margin_bottom"`
	MarginLeft   int     `mapstructure:"margin_left"`
	MarginRight  int     `mapstructure:"margin_right"`
	LinesPerPage int     `mapstructure:"lines_per_page"`
}

// RenderingConfig holds the document-global defaults the render phase
// needs beyond what any single node carries: the active code page,
// international charset, default style, and the per-job timeout.
// MaxTreeDepth, MaxLeafCount and DitherMethod are loaded but not read by
// the render path; no tree-size ceiling is enforced.
type RenderingConfig struct {
	DefaultCPI          int           `mapstructure:"default_cpi"`
	CharacterTable      int           `mapstructure:"character_table"`
	InternationalCharset int          `mapstructure:"international_charset"`
	MaxTreeDepth        int           `mapstructure:"max_tree_depth"`
	MaxLeafCount        int           `mapstructure:"max_leaf_count"`
	DitherMethod        string        `mapstructure:"dither_method"`
	JobTimeout          time.Duration `mapstructure:"job_timeout"`
}

// TransportConfig groups the printer-connection settings for each
// supported transport, mirroring the teacher's per-protocol port config.
type TransportConfig struct {
	Default string                `mapstructure:"default"`
	Serial  SerialTransportConfig `mapstructure:"serial"`
	TCP     TCPTransportConfig    `mapstructure:"tcp"`
	USB     USBTransportConfig    `mapstructure:"usb"`
}

// SerialTransportConfig configures the go.bug.st/serial connection.
type SerialTransportConfig struct {
	Port     string        `mapstructure:"port"`
	BaudRate int           `mapstructure:"baud_rate"`
	DataBits int           `mapstructure:"data_bits"`
	StopBits int           `mapstructure:"stop_bits"`
	Parity   string        `mapstructure:"parity"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// TCPTransportConfig configures a network-attached printer's raw socket.
type TCPTransportConfig struct {
	Address        string        `mapstructure:"address"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

// USBTransportConfig configures the google/gousb connection.
type USBTransportConfig struct {
	VendorID         uint16        `mapstructure:"vendor_id"`
	ProductID        uint16        `mapstructure:"product_id"`
	Timeout          time.Duration `mapstructure:"timeout"`
	BulkTransferSize int           `mapstructure:"bulk_transfer_size"`
}

// StorageConfig is the lib/pq connection the job store uses to persist
// print jobs.
type StorageConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// LoggingConfig configures the zap + lumberjack logger.
type LoggingConfig struct {
	Level      string `mapstructure:"level" validate:"required"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// AppConfig is application metadata, unrelated to any subsystem.
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Version     string `mapstructure:"version" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required"`
	Debug       bool   `mapstructure:"debug"`
}

// Load reads configuration from config.yaml in the working directory or in
// ./config, and ESCP2RENDER_-prefixed environment variables, applying
// defaults first and validating the result. No other config location is
// searched.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("ESCP2RENDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8088")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	viper.SetDefault("paper.width_inches", 8.5)
	viper.SetDefault("paper.height_inches", 11.0)
	viper.SetDefault("paper.margin_top", 90)
	viper.SetDefault("paper.margin_bottom", 90)
	viper.SetDefault("paper.margin_left", 90)
	viper.SetDefault("paper.margin_right", 90)
	viper.SetDefault("paper.lines_per_page", 66)

	viper.SetDefault("rendering.default_cpi", 10)
	viper.SetDefault("rendering.character_table", 0) // PC437
	viper.SetDefault("rendering.international_charset", 0) // USA
	viper.SetDefault("rendering.max_tree_depth", 64)
	viper.SetDefault("rendering.max_leaf_count", 20000)
	viper.SetDefault("rendering.dither_method", "floyd_steinberg")
	viper.SetDefault("rendering.job_timeout", "30s")

	viper.SetDefault("transport.default", "serial")
	viper.SetDefault("transport.serial.baud_rate", 9600)
	viper.SetDefault("transport.serial.data_bits", 8)
	viper.SetDefault("transport.serial.stop_bits", 1)
	viper.SetDefault("transport.serial.parity", "none")
	viper.SetDefault("transport.serial.timeout", "5s")

	viper.SetDefault("transport.tcp.connect_timeout", "10s")
	viper.SetDefault("transport.tcp.write_timeout", "30s")

	viper.SetDefault("transport.usb.timeout", "5s")
	viper.SetDefault("transport.usb.bulk_transfer_size", 4096)

	viper.SetDefault("storage.enabled", false)
	viper.SetDefault("storage.host", "localhost")
	viper.SetDefault("storage.port", 5432)
	viper.SetDefault("storage.user", "postgres")
	viper.SetDefault("storage.password", "postgres")
	viper.SetDefault("storage.dbname", "escp2render")
	viper.SetDefault("storage.sslmode", "disable")
	viper.SetDefault("storage.max_open_conns", 10)
	viper.SetDefault("storage.max_idle_conns", 2)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 3)
	viper.SetDefault("logging.max_age", 28)
	viper.SetDefault("logging.compress", true)

	viper.SetDefault("app.name", "escp2renderd")
	viper.SetDefault("app.version", "0.1.0")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.debug", false)
}

func validate(cfg *Config) error {
	if cfg.Server.Host == "" {
		return fmt.Errorf("server.host is required")
	}
	if cfg.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if cfg.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}

	validEnvs := []string{"development", "staging", "production", "test"}
	if !contains(validEnvs, cfg.App.Environment) {
		return fmt.Errorf("app.environment must be one of: %v", validEnvs)
	}

	validLevels := []string{"debug", "info", "warn", "error", "fatal"}
	if !contains(validLevels, cfg.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}

	return nil
}

// viperReset clears any state a previous Load or test left in the global
// viper instance, so setDefaults starts from a clean slate.
func viperReset() {
	viper.Reset()
}

// decodeDefaults unmarshals whatever is currently registered in viper
// (defaults plus any overrides) into cfg, without touching config files.
func decodeDefaults(cfg *Config) error {
	return viper.Unmarshal(cfg)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// GetServerAddr returns the address the HTTP server should bind.
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetStorageDSN returns the lib/pq connection string.
func (c *Config) GetStorageDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Storage.Host, c.Storage.Port, c.Storage.User, c.Storage.Password, c.Storage.DBName, c.Storage.SSLMode)
}

// IsProduction reports whether the configured environment is production.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
