package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Cyannimazing/BCSystem-sub000/pkg/pdf"
)

// Config represents the application configuration
type Config struct {
	Env      string         `mapstructure:"env"`
	Server   ServerConfig   `mapstructure:"server"`
	Facility FacilityConfig `mapstructure:"facility"`
	PDF      PDFConfig      `mapstructure:"pdf"`
	Delivery DeliveryConfig `mapstructure:"delivery"`
	Archive  ArchiveConfig  `mapstructure:"archive"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// FacilityConfig is printed on forms whose request omits the facility
type FacilityConfig struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
}

// PDFConfig controls page geometry, in millimetres
type PDFConfig struct {
	PaperSize    string  `mapstructure:"paper_size"`
	MarginTop    float64 `mapstructure:"margin_top"`
	MarginRight  float64 `mapstructure:"margin_right"`
	MarginBottom float64 `mapstructure:"margin_bottom"`
	MarginLeft   float64 `mapstructure:"margin_left"`
	LineHeight   float64 `mapstructure:"line_height"`
	LaborMinRows int     `mapstructure:"labor_min_rows"`
}

// DeliveryConfig points at the external patient documents API
type DeliveryConfig struct {
	Endpoint   string        `mapstructure:"endpoint"`
	APIToken   string        `mapstructure:"api_token"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// ArchiveConfig enables S3 archive copies when Bucket is set
type ArchiveConfig struct {
	Bucket          string        `mapstructure:"bucket"`
	Prefix          string        `mapstructure:"prefix"`
	Region          string        `mapstructure:"region"`
	Endpoint        string        `mapstructure:"endpoint"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	UsePathStyle    bool          `mapstructure:"use_path_style"`
	PresignTTL      time.Duration `mapstructure:"presign_ttl"`
}

// LoggingConfig
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("facility.name", "")
	v.SetDefault("facility.address", "")

	v.SetDefault("pdf.paper_size", "A4")
	v.SetDefault("pdf.margin_top", 15)
	v.SetDefault("pdf.margin_right", 15)
	v.SetDefault("pdf.margin_bottom", 20)
	v.SetDefault("pdf.margin_left", 15)
	v.SetDefault("pdf.line_height", 5)
	v.SetDefault("pdf.labor_min_rows", 15)

	v.SetDefault("delivery.endpoint", "")
	v.SetDefault("delivery.api_token", "")
	v.SetDefault("delivery.timeout", "30s")
	v.SetDefault("delivery.max_retries", 3)
	v.SetDefault("delivery.retry_delay", "1s")

	v.SetDefault("archive.bucket", "")
	v.SetDefault("archive.prefix", "forms")
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("archive.endpoint", "")
	v.SetDefault("archive.access_key_id", "")
	v.SetDefault("archive.secret_access_key", "")
	v.SetDefault("archive.use_path_style", false)
	v.SetDefault("archive.presign_ttl", "0s")

	v.SetDefault("logging.level", "info")
}

// LoadConfig reads an optional config file (JSON, YAML or TOML) and then
// applies BCS_* environment overrides, e.g. BCS_SERVER_PORT or
// BCS_PDF_PAPER_SIZE. A .env file in the working directory is loaded first
// if present.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("BCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Server.CORSOrigins) == 1 && strings.Contains(cfg.Server.CORSOrigins[0], ",") {
		cfg.Server.CORSOrigins = strings.Split(cfg.Server.CORSOrigins[0], ",")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot lay out a page or reach the
// archive.
func (c *Config) Validate() error {
	var errs []error

	size, ok := pdf.PaperSizeByName(c.PDF.PaperSize)
	if !ok {
		errs = append(errs, fmt.Errorf("pdf.paper_size %q is not one of A4, Letter, Legal", c.PDF.PaperSize))
	}
	for name, m := range map[string]float64{
		"pdf.margin_top":    c.PDF.MarginTop,
		"pdf.margin_right":  c.PDF.MarginRight,
		"pdf.margin_bottom": c.PDF.MarginBottom,
		"pdf.margin_left":   c.PDF.MarginLeft,
	} {
		if m < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", name))
		}
	}
	if ok {
		if c.PDF.MarginLeft+c.PDF.MarginRight >= size.Width {
			errs = append(errs, errors.New("horizontal margins leave no content width"))
		}
		if c.PDF.MarginTop+c.PDF.MarginBottom >= size.Height/2 {
			errs = append(errs, errors.New("vertical margins leave too little content height"))
		}
	}
	if c.PDF.LineHeight <= 0 {
		errs = append(errs, errors.New("pdf.line_height must be positive"))
	}
	if c.PDF.LaborMinRows < 0 {
		errs = append(errs, errors.New("pdf.labor_min_rows must not be negative"))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}
	if c.Delivery.MaxRetries < 0 {
		errs = append(errs, errors.New("delivery.max_retries must not be negative"))
	}
	if c.Archive.Bucket == "" && (c.Archive.Endpoint != "" || c.Archive.AccessKeyID != "") {
		errs = append(errs, errors.New("archive.bucket is required when archive credentials or endpoint are set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Layout returns the page layout described by the PDF section. Call it on
// a validated config.
func (c *Config) Layout() pdf.Layout {
	size, ok := pdf.PaperSizeByName(c.PDF.PaperSize)
	if !ok {
		size = pdf.A4Size
	}
	return pdf.Layout{
		Size: size,
		Margins: pdf.Margins{
			Top:    c.PDF.MarginTop,
			Right:  c.PDF.MarginRight,
			Bottom: c.PDF.MarginBottom,
			Left:   c.PDF.MarginLeft,
		},
		LineHeight: c.PDF.LineHeight,
	}
}

// IsDev reports whether the service runs in development mode
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
