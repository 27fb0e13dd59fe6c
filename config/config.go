package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	KeyPort                  = "port"
	KeyLogLevel              = "log.level"
	KeyLogFormat             = "log.format"
	KeyMaxProcesses          = "scheduler.max_processes"
	KeyRoundRobinTimeQuantum = "scheduler.round_robin.time_quantum"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	LogFormat             string
	MaxProcesses          int
	RoundRobinTimeQuantum int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml through the global viper instance
// once and returns the shared configuration.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		c, err := Load(viper.GetViper(), "")
		if err != nil {
			logrus.Fatalln(err)
		}
		config = c
	})

	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, 9095)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyMaxProcesses, 1000)
	v.SetDefault(KeyRoundRobinTimeQuantum, 2)
}

// Load reads configuration into v. An empty path searches the working
// directory for config.yaml; a missing file there is not an error, an
// explicit path that cannot be read is. Environment variables prefixed with
// SCHEDULER_ override file values, dots written as underscores
// (SCHEDULER_PORT, SCHEDULER_LOG_LEVEL).
func Load(v *viper.Viper, path string) (*SchedulerConfig, error) {
	setDefaults(v)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		logrus.Debug("no config file found, using defaults")
	}

	c := &SchedulerConfig{
		Port:                  v.GetInt(KeyPort),
		LogLevel:              v.GetString(KeyLogLevel),
		LogFormat:             v.GetString(KeyLogFormat),
		MaxProcesses:          v.GetInt(KeyMaxProcesses),
		RoundRobinTimeQuantum: v.GetInt(KeyRoundRobinTimeQuantum),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("invalid round robin time quantum %d", c.RoundRobinTimeQuantum)
	}
	if c.MaxProcesses <= 0 {
		return fmt.Errorf("invalid max processes %d", c.MaxProcesses)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	return nil
}

// Addr is the listen address for the HTTP service.
func (c *SchedulerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ConfigureLogging applies the log level and format to the global logger.
func (c *SchedulerConfig) ConfigureLogging() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	if strings.ToLower(c.LogFormat) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
