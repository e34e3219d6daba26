package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/viper"

	awsplatform "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/s3"
	"github.com/olusolaa/teardown-verifier/internal/adapters/snapshot"
	"github.com/olusolaa/teardown-verifier/internal/config"
	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
	"github.com/olusolaa/teardown-verifier/internal/core/service"
	"github.com/olusolaa/teardown-verifier/internal/errors"
	"github.com/olusolaa/teardown-verifier/internal/log"
	jsonreport "github.com/olusolaa/teardown-verifier/internal/reporting/json"
	"github.com/olusolaa/teardown-verifier/internal/reporting/text"
)

type buildOptions struct {
	providers ProviderSource
	store     ports.SnapshotStore
	output    io.Writer
	logOutput io.Writer
}

type BuildOption func(*buildOptions)

// WithProviderSource replaces the AWS provider source.
func WithProviderSource(source ProviderSource) BuildOption {
	return func(o *buildOptions) {
		o.providers = source
	}
}

func WithSnapshotStore(store ports.SnapshotStore) BuildOption {
	return func(o *buildOptions) {
		o.store = store
	}
}

// WithOutput sets where reports are written. Defaults to stdout.
func WithOutput(w io.Writer) BuildOption {
	return func(o *buildOptions) {
		o.output = w
	}
}

// WithLogOutput sets where logs are written. Defaults to stderr.
func WithLogOutput(w io.Writer) BuildOption {
	return func(o *buildOptions) {
		o.logOutput = w
	}
}

func BuildApplicationFromViper(ctx context.Context, v *viper.Viper, opts ...BuildOption) (*Application, error) {
	bo := &buildOptions{output: os.Stdout, logOutput: os.Stderr}
	for _, opt := range opts {
		opt(bo)
	}

	cfg, err := config.Load(ctx, v)
	if err != nil {
		return nil, err
	}

	logger, err := log.NewLogger(cfg.LogConfig(), bo.logOutput)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	} else {
		logger.Debugf(ctx, "No configuration file found, using defaults/env/flags.")
	}

	collector, err := service.NewCollector(service.CollectorOptions{
		Policy:          cfg.Capture.FailurePolicy,
		Concurrency:     cfg.Capture.Concurrency,
		ProviderTimeout: cfg.Capture.ProviderTimeout,
	}, logger.WithFields(map[string]any{"component": "collector"}))
	if err != nil {
		return nil, err
	}

	store := bo.store
	if store == nil {
		store = newSnapshotStore(cfg, logger)
	}

	reporter, err := newReporter(ctx, cfg, bo.output, logger)
	if err != nil {
		return nil, err
	}

	providers := bo.providers
	if providers == nil {
		providers = awsProviderSource(cfg, logger)
	}

	logger.Debugf(ctx, "Application bootstrap complete")
	return &Application{
		Collector: collector,
		Differ:    service.NewDiffer(cfg.Compare.Mode),
		Store:     store,
		Reporter:  reporter,
		Logger:    logger,
		Providers: providers,
		Config:    cfg,
	}, nil
}

// newSnapshotStore resolves AWS configuration only when an s3:// location
// is actually used.
func newSnapshotStore(cfg *config.Config, logger ports.Logger) ports.SnapshotStore {
	storeLog := logger.WithFields(map[string]any{"component": "snapshot"})
	objects := s3.NewObjectStore(onceAWSConfig(cfg.Platform.AWS), storeLog)
	return snapshot.NewStore(storeLog, snapshot.WithObjectStore(objects))
}

func onceAWSConfig(cfg awsplatform.PlatformConfig) s3.ConfigLoader {
	var (
		once   sync.Once
		awsCfg aws.Config
		err    error
	)
	return func(ctx context.Context) (aws.Config, error) {
		once.Do(func() {
			awsCfg, err = awsplatform.LoadAWSConfig(ctx, cfg)
		})
		return awsCfg, err
	}
}

func newReporter(ctx context.Context, cfg *config.Config, out io.Writer, logger ports.Logger) (ports.Reporter, error) {
	reportLog := logger.WithFields(map[string]any{"component": "reporter", "type": cfg.Settings.ReporterType})
	switch cfg.Settings.ReporterType {
	case text.ReporterTypeText:
		reporter, err := text.NewReporter(cfg.Settings.Reporter.Text, reportLog, text.WithWriter(out))
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize Text reporter")
		}
		reportLog.Debugf(ctx, "Using Text reporter (Color: %t)", !cfg.Settings.Reporter.Text.NoColor)
		return reporter, nil
	case jsonreport.ReporterTypeJSON:
		reporter, err := jsonreport.NewReporter(reportLog, jsonreport.WithWriter(out))
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize JSON reporter")
		}
		return reporter, nil
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported reporter type: %s", cfg.Settings.ReporterType), "Supported: text, json")
	}
}

func awsProviderSource(cfg *config.Config, logger ports.Logger) ProviderSource {
	return func(ctx context.Context) ([]ports.ResourceProvider, error) {
		provLog := logger.WithFields(map[string]any{"provider": "aws"})
		platform, err := awsplatform.NewProvider(ctx, cfg.Platform.AWS, provLog)
		if err != nil {
			return nil, err
		}
		if cfg.Platform.AWS.SkipPreflight {
			provLog.Debugf(ctx, "Skipping AWS credential preflight")
		} else if _, err := platform.Preflight(ctx); err != nil {
			return nil, err
		}

		registry := service.NewProviderRegistry()
		if err := platform.RegisterAll(registry); err != nil {
			return nil, err
		}
		provLog.Debugf(ctx, "Registered categories: %v", registry.Keys())
		providers, err := registry.Resolve(cfg.Capture.Categories)
		if err != nil {
			return nil, err
		}
		warnUnfilteredCategories(ctx, provLog, cfg.Platform.AWS.TagFilters, providers)
		provLog.Infof(ctx, "Capturing %d categories in region %s", len(providers), platform.Region())
		return providers, nil
	}
}

// Tag filters narrow EC2 listings only.
func warnUnfilteredCategories(ctx context.Context, logger ports.Logger, filters map[string]string, providers []ports.ResourceProvider) {
	if len(filters) == 0 {
		return
	}
	for _, p := range providers {
		switch p.Category() {
		case domain.CategoryEKSCluster, domain.CategoryIAMRole:
			logger.Warnf(ctx, "Tag filters do not apply to %s; all resources in this category are captured", p.Category().Key)
		}
	}
}
