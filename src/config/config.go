// Package config loads application settings from .env and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"Backend-FormCraft/src/logger"
)

type Config struct {
	AppPort        string `mapstructure:"appport"`
	AppEnv         string `mapstructure:"appenv"`
	LogLevel       string `mapstructure:"loglevel"`
	AllowedOrigins string `mapstructure:"allowedorigins"`

	MongoURI string `mapstructure:"mongouri"`
	MongoDB  string `mapstructure:"mongodb"`
	RedisURI string `mapstructure:"redisuri"`

	JWTSecret   string `mapstructure:"jwtsecret"`
	JWTTTLHours int    `mapstructure:"jwtttlhours"`

	UploadDir     string `mapstructure:"uploaddir"`
	PublicBaseURL string `mapstructure:"publicbaseurl"`
	ClientURL     string `mapstructure:"clienturl"`
	MaxUploadMB   int    `mapstructure:"maxuploadmb"`

	SMTPHost string `mapstructure:"smtphost"`
	SMTPPort int    `mapstructure:"smtpport"`
	SMTPUser string `mapstructure:"smtpuser"`
	SMTPPass string `mapstructure:"smtppass"`
	SMTPFrom string `mapstructure:"smtpfrom"`

	AnalyticsCacheTTLSeconds int `mapstructure:"analyticscachettlseconds"`
	WorkerConcurrency        int `mapstructure:"workerconcurrency"`
	RateLimitPerMinute       int `mapstructure:"ratelimitperminute"`
}

var (
	cfg     *Config
	loadErr error
	once    sync.Once
)

// Load reads configuration once per process.
func Load() (*Config, error) {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logger.Warnf("⚠️ No .env file found, using process environment")
		}
		cfg, loadErr = fromViper(newViper())
	})
	return cfg, loadErr
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("appport", "8888")
	v.SetDefault("appenv", "development")
	v.SetDefault("loglevel", "info")
	v.SetDefault("allowedorigins", "*")
	v.SetDefault("mongodb", "FormCraftDB")
	v.SetDefault("jwtsecret", "your_secret_key")
	v.SetDefault("jwtttlhours", 24*7)
	v.SetDefault("uploaddir", "uploads")
	v.SetDefault("publicbaseurl", "http://localhost:8888")
	v.SetDefault("clienturl", "http://localhost:5173")
	v.SetDefault("maxuploadmb", 10)
	v.SetDefault("smtpport", 587)
	v.SetDefault("analyticscachettlseconds", 300)
	v.SetDefault("workerconcurrency", 5)
	v.SetDefault("ratelimitperminute", 300)

	_ = v.BindEnv("appport", "APP_PORT")
	_ = v.BindEnv("appenv", "APP_ENV")
	_ = v.BindEnv("loglevel", "LOG_LEVEL")
	_ = v.BindEnv("allowedorigins", "ALLOWED_ORIGINS")
	_ = v.BindEnv("mongouri", "MONGO_URI")
	_ = v.BindEnv("mongodb", "MONGO_DB")
	_ = v.BindEnv("redisuri", "REDIS_URI")
	_ = v.BindEnv("jwtsecret", "JWT_SECRET")
	_ = v.BindEnv("jwtttlhours", "JWT_TTL_HOURS")
	_ = v.BindEnv("uploaddir", "UPLOAD_DIR")
	_ = v.BindEnv("publicbaseurl", "PUBLIC_BASE_URL")
	_ = v.BindEnv("clienturl", "CLIENT_URL")
	_ = v.BindEnv("maxuploadmb", "MAX_UPLOAD_MB")
	_ = v.BindEnv("smtphost", "SMTP_HOST")
	_ = v.BindEnv("smtpport", "SMTP_PORT")
	_ = v.BindEnv("smtpuser", "SMTP_USER")
	_ = v.BindEnv("smtppass", "SMTP_PASS")
	_ = v.BindEnv("smtpfrom", "SMTP_FROM")
	_ = v.BindEnv("analyticscachettlseconds", "ANALYTICS_CACHE_TTL_SECONDS")
	_ = v.BindEnv("workerconcurrency", "WORKER_CONCURRENCY")
	_ = v.BindEnv("ratelimitperminute", "RATE_LIMIT_PER_MINUTE")

	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")
	c.ClientURL = strings.TrimRight(c.ClientURL, "/")
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGO_URI is required"))
	}
	if c.JWTTTLHours <= 0 {
		errs = append(errs, errors.New("JWT_TTL_HOURS must be positive"))
	}
	if c.MaxUploadMB <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_MB must be positive"))
	}
	if c.AnalyticsCacheTTLSeconds < 0 {
		errs = append(errs, errors.New("ANALYTICS_CACHE_TTL_SECONDS must not be negative"))
	}
	if c.WorkerConcurrency <= 0 {
		errs = append(errs, errors.New("WORKER_CONCURRENCY must be positive"))
	}
	if c.RateLimitPerMinute < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

func (c *Config) AnalyticsCacheTTL() time.Duration {
	return time.Duration(c.AnalyticsCacheTTLSeconds) * time.Second
}

// ResultsURL links the owner to a form's responses in the web client.
func (c *Config) ResultsURL(formID string) string {
	return c.ClientURL + "/forms/" + formID + "/responses"
}

// ShareURL is the public fill-in page of a form in the web client.
func (c *Config) ShareURL(formID string) string {
	return c.ClientURL + "/public/" + formID
}

func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort > 0 && c.SMTPFrom != ""
}
