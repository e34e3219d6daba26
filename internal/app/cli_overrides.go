package app

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/olusolaa/teardown-verifier/internal/config"
	"github.com/olusolaa/teardown-verifier/internal/core/domain"
)

// Flag names shared by the commands.
const (
	FlagLogLevel        = "log-level"
	FlagLogFormat       = "log-format"
	FlagOutput          = "output"
	FlagNoColor         = "no-color"
	FlagCategories      = "categories"
	FlagBestEffort      = "best-effort"
	FlagConcurrency     = "concurrency"
	FlagProviderTimeout = "provider-timeout"
	FlagIdentity        = "identity"
	FlagRegion          = "region"
	FlagProfile         = "profile"
	FlagTag             = "tag"
	FlagSkipPreflight   = "skip-preflight"
)

var flagKeys = map[string]string{
	FlagLogLevel:        config.KeyLogLevel,
	FlagLogFormat:       config.KeyLogFormat,
	FlagOutput:          config.KeyReporter,
	FlagNoColor:         config.KeyNoColor,
	FlagCategories:      config.KeyCategories,
	FlagConcurrency:     config.KeyConcurrency,
	FlagProviderTimeout: config.KeyProviderTimeout,
	FlagRegion:          config.KeyRegion,
	FlagProfile:         config.KeyProfile,
	FlagSkipPreflight:   config.KeySkipPreflight,
}

// ApplyFlagOverrides copies flags the user actually set into v. Unset flags
// never shadow file or environment values.
func ApplyFlagOverrides(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case FlagBestEffort:
			if f.Value.String() == "true" {
				v.Set(config.KeyFailurePolicy, string(domain.BestEffort))
			} else {
				v.Set(config.KeyFailurePolicy, string(domain.FailFast))
			}
		case FlagIdentity:
			if f.Value.String() == "true" {
				v.Set(config.KeyCompareMode, string(domain.DiffModeIdentity))
			} else {
				v.Set(config.KeyCompareMode, string(domain.DiffModeFull))
			}
		case FlagCategories:
			var categories []string
			categories, err = flags.GetStringSlice(f.Name)
			v.Set(config.KeyCategories, categories)
		case FlagTag:
			var tags map[string]string
			tags, err = flags.GetStringToString(f.Name)
			v.Set(config.KeyTagFilters, tags)
		default:
			if key, ok := flagKeys[f.Name]; ok {
				v.Set(key, strings.TrimSpace(f.Value.String()))
			}
		}
	})
	return err
}
