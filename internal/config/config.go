package config

import (
	"time"

	awsplatform "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws"
	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/log"
	"github.com/olusolaa/teardown-verifier/internal/reporting/text"
)

type Config struct {
	Settings SettingsConfig `mapstructure:"settings"`
	Capture  CaptureConfig  `mapstructure:"capture"`
	Compare  CompareConfig  `mapstructure:"compare"`
	Platform PlatformConfig `mapstructure:"platform"`
}

type SettingsConfig struct {
	LogLevel     log.Level       `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat    log.Format      `mapstructure:"log_format" validate:"oneof=text json"`
	ReporterType string          `mapstructure:"reporter" validate:"oneof=text json"`
	Reporter     ReporterConfigs `mapstructure:"reporter_config"`
}

type ReporterConfigs struct {
	Text text.Config `mapstructure:"text"`
}

type CaptureConfig struct {
	Categories      []string             `mapstructure:"categories" validate:"min=1,dive,required"`
	FailurePolicy   domain.FailurePolicy `mapstructure:"failure_policy" validate:"oneof=fail-fast best-effort"`
	Concurrency     int                  `mapstructure:"concurrency" validate:"gte=1,lte=64"`
	ProviderTimeout time.Duration        `mapstructure:"provider_timeout" validate:"gte=0"`
}

type CompareConfig struct {
	Mode domain.DiffMode `mapstructure:"mode" validate:"oneof=full identity"`
}

type PlatformConfig struct {
	AWS awsplatform.PlatformConfig `mapstructure:"aws"`
}

func (c *Config) LogConfig() log.Config {
	return log.Config{Level: c.Settings.LogLevel, Format: c.Settings.LogFormat}
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:     log.LevelInfo,
			LogFormat:    log.FormatText,
			ReporterType: text.ReporterTypeText,
			Reporter: ReporterConfigs{
				Text: text.Config{NoColor: false},
			},
		},
		Capture: CaptureConfig{
			Categories:    domain.DefaultCategoryKeys(),
			FailurePolicy: domain.FailFast,
			Concurrency:   4,
		},
		Compare: CompareConfig{
			Mode: domain.DiffModeFull,
		},
		Platform: PlatformConfig{
			AWS: awsplatform.DefaultPlatformConfig(),
		},
	}
}
