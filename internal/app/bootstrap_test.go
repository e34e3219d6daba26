package app_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/teardown-verifier/internal/adapters/snapshot"
	"github.com/olusolaa/teardown-verifier/internal/app"
	"github.com/olusolaa/teardown-verifier/internal/config"
	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
	portsmocks "github.com/olusolaa/teardown-verifier/internal/core/ports/mocks"
	"github.com/olusolaa/teardown-verifier/internal/errors"
	"github.com/olusolaa/teardown-verifier/internal/testutil"
)

func staticSource(providers ...ports.ResourceProvider) app.ProviderSource {
	return func(context.Context) ([]ports.ResourceProvider, error) {
		return providers, nil
	}
}

func provider(t *testing.T, category domain.Category, records ...domain.Record) *portsmocks.ResourceProvider {
	p := portsmocks.NewResourceProvider(t)
	p.On("Category").Return(category).Maybe()
	p.On("List", mock.Anything).Return(records, nil).Maybe()
	return p
}

func TestBuildApplicationFromViper_CaptureThenCompare(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	store := snapshot.NewStore(testutil.NewQuietLogger(t), snapshot.WithFs(fs))

	vpc := domain.NewRecord("vpc-1", domain.Attribute{Label: domain.LabelState, Value: "available"})
	instance := domain.NewRecord("i-1", domain.Attribute{Label: domain.LabelState, Value: "running"})

	v := config.NewViper()
	v.Set(config.KeyNoColor, true)

	var out bytes.Buffer
	before, err := app.BuildApplicationFromViper(ctx, v,
		app.WithSnapshotStore(store),
		app.WithOutput(&out),
		app.WithLogOutput(&bytes.Buffer{}),
		app.WithProviderSource(staticSource(
			provider(t, domain.CategoryVPC, vpc),
			provider(t, domain.CategoryInstance, instance),
		)),
	)
	require.NoError(t, err)

	summary, err := before.Capture(ctx, "/snapshots/before.json")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Resources)

	after, err := app.BuildApplicationFromViper(ctx, v,
		app.WithSnapshotStore(store),
		app.WithOutput(&out),
		app.WithLogOutput(&bytes.Buffer{}),
		app.WithProviderSource(staticSource(provider(t, domain.CategoryVPC, vpc))),
	)
	require.NoError(t, err)
	_, err = after.Capture(ctx, "/snapshots/after.yaml")
	require.NoError(t, err)

	report, err := after.Compare(ctx, "/snapshots/before.json", "/snapshots/after.yaml")
	require.NoError(t, err)
	assert.Equal(t, []domain.Descriptor{"Instance ID: i-1 - State: running"}, report.Removed)
	assert.Empty(t, report.Added)
	assert.Contains(t, out.String(), "Resources left behind:")
	assert.Contains(t, out.String(), "Instance ID: i-1 - State: running")
}

func TestBuildApplicationFromViper_JSONReporter(t *testing.T) {
	v := config.NewViper()
	v.Set(config.KeyReporter, "json")
	v.Set(config.KeyCompareMode, "identity")

	application, err := app.BuildApplicationFromViper(context.Background(), v,
		app.WithLogOutput(&bytes.Buffer{}), app.WithOutput(&bytes.Buffer{}))

	require.NoError(t, err)
	assert.Equal(t, "json", application.Config.Settings.ReporterType)
	assert.Equal(t, domain.DiffModeIdentity, application.Config.Compare.Mode)
	assert.NotNil(t, application.Providers)
}

func TestBuildApplicationFromViper_InvalidConfig(t *testing.T) {
	v := config.NewViper()
	v.Set(config.KeyFailurePolicy, "sometimes")

	_, err := app.BuildApplicationFromViper(context.Background(), v, app.WithLogOutput(&bytes.Buffer{}))

	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigValidation, errors.GetCode(err))
	msg, _, ok := errors.GetUserFacingMessage(err)
	assert.True(t, ok)
	assert.Contains(t, msg, "FailurePolicy")
}
