package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/jt828/perfmon/pkg/severity"
	"github.com/spf13/viper"
)

const EnvPrefix = "PERFMON"

type Config struct {
	Enabled        bool
	Development    bool
	LogLevel       string
	DebugOverride  bool
	MetricsAddr    string
	ReportInterval time.Duration
	CacheSize      int
	CacheTTL       time.Duration
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("development", false)
	v.SetDefault("log_level", "")
	v.SetDefault("debug_override", false)
	v.SetDefault("metrics_addr", ":9090")
	v.SetDefault("report_interval", 30*time.Second)
	v.SetDefault("cache_size", 256)
	v.SetDefault("cache_ttl", 5*time.Minute)
}

// NewViper reads PERFMON_* environment variables and, when cfgFile is set,
// that YAML file on top of the defaults.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// enabled has no default, so AutomaticEnv alone would not see it in IsSet
	if err := v.BindEnv("enabled"); err != nil {
		return nil, err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	return v, nil
}

// Load reads Config from v. Instrumentation follows the development flag
// unless enabled is set explicitly.
func Load(v *viper.Viper) Config {
	cfg := Config{
		Development:    v.GetBool("development"),
		LogLevel:       v.GetString("log_level"),
		DebugOverride:  v.GetBool("debug_override"),
		MetricsAddr:    v.GetString("metrics_addr"),
		ReportInterval: v.GetDuration("report_interval"),
		CacheSize:      v.GetInt("cache_size"),
		CacheTTL:       v.GetDuration("cache_ttl"),
	}

	cfg.Enabled = cfg.Development
	if v.IsSet("enabled") {
		cfg.Enabled = v.GetBool("enabled")
	}
	return cfg
}

func (c Config) Validate() error {
	if c.ReportInterval <= 0 {
		return fmt.Errorf("report_interval must be positive, got %s", c.ReportInterval)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

func (c Config) Severity() severity.Config {
	return severity.Config{
		Development: c.Development,
		LogLevel:    c.LogLevel,
		ForceDebug:  c.DebugOverride,
	}
}
