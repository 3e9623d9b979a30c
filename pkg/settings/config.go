package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the queue demo.
type Config struct {
	Demo    Demo    `yaml:"demo"`
	Logger  Logger  `yaml:"logger"`
	Metrics Metrics `yaml:"metrics"`
}

// Demo configures the producer/consumer workload.
type Demo struct {
	Producers     int `yaml:"producers" validate:"min=1"`
	QueueCapacity int `yaml:"queue_capacity" validate:"min=1"`
	// ProduceDelay is the pause between produced items, in microseconds.
	ProduceDelay int `yaml:"produce_delay" validate:"min=0"`
}

// Logger is the configuration for the logger.
type Logger struct {
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `yaml:"file_log_name"`
	MaxBackups  int    `yaml:"max_backups"`
	MaxAge      int    `yaml:"max_age"`
	MaxSize     int    `yaml:"max_size"`
	Compress    bool   `yaml:"compress"`
}

// Metrics is the configuration for the Prometheus endpoint.
type Metrics struct {
	Bind string `yaml:"bind"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Demo: Demo{
			Producers:     5,
			QueueCapacity: 1000,
			ProduceDelay:  100,
		},
		Logger: Logger{
			LogLevel: "info",
		},
		Metrics: Metrics{
			Bind: "127.0.0.1:9220",
		},
	}
}

// Load reads, defaults and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "validate config")
	}
	return nil
}
