package main

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"

	formatText = "text"
	formatJSON = "json"

	defaultLogLevel = "ERROR"
)

type OutputConfig struct {
	Color  string `mapstructure:"color" validate:"required,oneof=auto always never"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Output   *OutputConfig `validate:"required"`
}

func initDefaults() {
	viper.SetDefault("log_level", defaultLogLevel)
	viper.SetDefault("output.color", colorAuto)
	viper.SetDefault("output.format", formatText)
}

func setupFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Config file (TOML)")
	cmd.PersistentFlags().String("log", "", "log level")
	cmd.PersistentFlags().String("color", "", "Color mode: auto, always or never")
	cmd.PersistentFlags().String("format", "", "Output format: text or json")

	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log"))
	_ = viper.BindPFlag("output.color", cmd.PersistentFlags().Lookup("color"))
	_ = viper.BindPFlag("output.format", cmd.PersistentFlags().Lookup("format"))
}

// loadConfig reads cfgFile only when one is given; without it the defaults
// and flags are the only sources.
func loadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		viper.SetConfigType("toml")
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.LogLevel = normalizeLogLevel(cfg.LogLevel)
	if cfg.Output != nil {
		cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.Struct(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalizeLogLevel upper-cases level and maps unknown values to the default.
func normalizeLogLevel(level string) string {
	level = strings.ToUpper(strings.TrimSpace(level))
	switch level {
	case "DEBUG", "INFO", "WARNING", "ERROR":
		return level
	case "WARN":
		return "WARNING"
	default:
		return defaultLogLevel
	}
}
