package config

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/olusolaa/teardown-verifier/internal/errors"
)

const (
	EnvPrefix      = "TEARDOWN"
	ConfigFileName = ".teardown-verifier"
)

// Keys every config source can set. Flags map onto the same keys.
const (
	KeyLogLevel        = "settings.log_level"
	KeyLogFormat       = "settings.log_format"
	KeyReporter        = "settings.reporter"
	KeyNoColor         = "settings.reporter_config.text.no_color"
	KeyCategories      = "capture.categories"
	KeyFailurePolicy   = "capture.failure_policy"
	KeyConcurrency     = "capture.concurrency"
	KeyProviderTimeout = "capture.provider_timeout"
	KeyCompareMode     = "compare.mode"
	KeyRegion          = "platform.aws.region"
	KeyProfile         = "platform.aws.profile"
	KeyMaxAttempts     = "platform.aws.max_attempts"
	KeyRequestsPerSec  = "platform.aws.requests_per_second"
	KeyTagFilters      = "platform.aws.tag_filters"
	KeyIAMPathPrefix   = "platform.aws.iam_path_prefix"
	KeySkipPreflight   = "platform.aws.skip_preflight"
)

// NewViper returns a viper instance that knows every key, so environment
// variables such as TEARDOWN_CAPTURE_FAILURE_POLICY are honoured even when
// no config file mentions the key.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyLogLevel, string(d.Settings.LogLevel))
	v.SetDefault(KeyLogFormat, string(d.Settings.LogFormat))
	v.SetDefault(KeyReporter, d.Settings.ReporterType)
	v.SetDefault(KeyNoColor, d.Settings.Reporter.Text.NoColor)
	v.SetDefault(KeyCategories, d.Capture.Categories)
	v.SetDefault(KeyFailurePolicy, string(d.Capture.FailurePolicy))
	v.SetDefault(KeyConcurrency, d.Capture.Concurrency)
	v.SetDefault(KeyProviderTimeout, d.Capture.ProviderTimeout.String())
	v.SetDefault(KeyCompareMode, string(d.Compare.Mode))
	v.SetDefault(KeyRegion, d.Platform.AWS.Region)
	v.SetDefault(KeyProfile, d.Platform.AWS.Profile)
	v.SetDefault(KeyMaxAttempts, d.Platform.AWS.MaxAttempts)
	v.SetDefault(KeyRequestsPerSec, d.Platform.AWS.RequestsPerSecond)
	// A string default keeps the key visible to AutomaticEnv; the decode hook
	// turns it into a map.
	v.SetDefault(KeyTagFilters, "")
	v.SetDefault(KeyIAMPathPrefix, d.Platform.AWS.IAMPathPrefix)
	v.SetDefault(KeySkipPreflight, d.Platform.AWS.SkipPreflight)
}

// ReadConfigFile loads path, or searches the working and home directories
// for .teardown-verifier.yaml when path is empty. A missing search-path file
// is not an error; a missing explicit file is.
func ReadConfigFile(v *viper.Viper, path, home string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(home)
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return nil
		}
		return errors.WrapUserFacing(err, errors.CodeConfigReadError, "failed to read config file",
			"Check that the config file exists and is valid YAML.")
	}
	return nil
}

// Load decodes and validates the effective configuration. Every key has a
// viper default, so decoding starts from a zero Config.
func Load(ctx context.Context, v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		stringToStringMapHookFunc(),
	)))
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigParseError, "failed to decode configuration",
			"Check value types in the config file and TEARDOWN_* environment variables.")
	}
	normalize(cfg)

	if err := Validate(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func normalize(cfg *Config) {
	categories := make([]string, 0, len(cfg.Capture.Categories))
	for _, c := range cfg.Capture.Categories {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	cfg.Capture.Categories = categories
	cfg.Settings.LogLevel = cfg.Settings.LogLevel.Normalize()
	cfg.Settings.LogFormat = cfg.Settings.LogFormat.Normalize()
}

func Validate(ctx context.Context, cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.StructCtx(ctx, cfg)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.CodeInternal, "configuration validation could not run")
	}
	var errorDetails strings.Builder
	errorDetails.WriteString("Configuration validation failed:")
	for _, fe := range validationErrors {
		errorDetails.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return errors.NewUserFacing(errors.CodeConfigValidation, errorDetails.String(),
		"Please check your configuration file, environment variables or flags.")
}

// stringToStringMapHookFunc decodes "k1=v1,k2=v2" into a map, which is how
// maps arrive from environment variables.
func stringToStringMapHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Map {
			return data, nil
		}
		raw := strings.TrimSpace(reflect.ValueOf(data).String())
		out := make(map[string]string)
		if raw == "" {
			return out, nil
		}
		for _, pair := range strings.Split(raw, ",") {
			k, val, ok := strings.Cut(pair, "=")
			k = strings.TrimSpace(k)
			if !ok || k == "" {
				return nil, fmt.Errorf("invalid key=value pair %q", pair)
			}
			out[k] = strings.TrimSpace(val)
		}
		return out, nil
	}
}
