package aws

// PlatformConfig holds the AWS account access settings of one run.
// Credentials themselves always come from the SDK default chain.
type PlatformConfig struct {
	Region            string            `mapstructure:"region"`
	Profile           string            `mapstructure:"profile"`
	MaxAttempts       int               `mapstructure:"max_attempts" validate:"gte=0,lte=20"`
	RequestsPerSecond int               `mapstructure:"requests_per_second" validate:"gte=0,lte=100"`
	TagFilters        map[string]string `mapstructure:"tag_filters"`
	IAMPathPrefix     string            `mapstructure:"iam_path_prefix"`
	SkipPreflight     bool              `mapstructure:"skip_preflight"`
}

func DefaultPlatformConfig() PlatformConfig {
	return PlatformConfig{
		MaxAttempts:       5,
		RequestsPerSecond: 20,
	}
}
