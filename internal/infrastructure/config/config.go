package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/inkfolio/inkfolio/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Admin     sharedConfig.AdminConfig     `mapstructure:"admin"`
	Cookie    sharedConfig.CookieConfig    `mapstructure:"cookie"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Metrics   sharedConfig.MetricsConfig   `mapstructure:"metrics"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from an optional config file, the process
// environment and a .env file in the working directory.
func Load(env string) (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("INKFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindLegacyEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8001)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.idle_timeout", 60)

	// Database defaults
	v.SetDefault("database.driver", sharedConfig.DriverSQLite)
	v.SetDefault("database.path", "inkfolio.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "inkfolio")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Admin defaults
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "")
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("admin.bcrypt_cost", 12)
	v.SetDefault("admin.session_ttl_hours", 24)

	// Cookie defaults
	v.SetDefault("cookie.name", "session_id")
	v.SetDefault("cookie.domain", "")
	v.SetDefault("cookie.path", "/")
	v.SetDefault("cookie.secure", false)
	v.SetDefault("cookie.same_site", "Lax")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Rate limit defaults
	v.SetDefault("ratelimit.login_per_minute", 10)
	v.SetDefault("ratelimit.contact_per_minute", 5)
	v.SetDefault("ratelimit.contact_per_hour", 20)

	// Email defaults
	v.SetDefault("email.enabled", false)
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@inkfolio.local")
	v.SetDefault("email.from_name", "Inkfolio")
	v.SetDefault("email.notify_address", "")

	v.SetDefault("metrics.enabled", true)
}

// bindLegacyEnv keeps ADMIN_USERNAME / ADMIN_PASSWORD working for existing
// deployments. The prefixed variables still win when both are set.
func bindLegacyEnv(v *viper.Viper) {
	if u := os.Getenv("ADMIN_USERNAME"); u != "" && os.Getenv("INKFOLIO_ADMIN_USERNAME") == "" {
		v.SetDefault("admin.username", u)
	}
	if p := os.Getenv("ADMIN_PASSWORD"); p != "" && os.Getenv("INKFOLIO_ADMIN_PASSWORD") == "" {
		v.SetDefault("admin.password", p)
	}
}

func validate(cfg *Config) error {
	switch cfg.Database.Driver {
	case sharedConfig.DriverSQLite, sharedConfig.DriverMySQL:
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if cfg.RateLimit.LoginPerMinute < 0 || cfg.RateLimit.ContactPerMinute < 0 || cfg.RateLimit.ContactPerHour < 0 {
		return fmt.Errorf("ratelimit values must not be negative")
	}
	if cfg.Email.Enabled && cfg.Email.NotifyAddress == "" {
		return fmt.Errorf("email.notify_address is required when email is enabled")
	}
	return nil
}

// ValidateAdmin checks the admin credential section. Only commands that
// authenticate need it, so Load does not enforce it.
func (c *Config) ValidateAdmin() error {
	if strings.TrimSpace(c.Admin.Username) == "" {
		return fmt.Errorf("admin.username must not be empty")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return fmt.Errorf("one of admin.password or admin.password_hash must be set")
	}
	return nil
}
