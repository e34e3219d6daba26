package json

import (
	"context"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
	apperrors "github.com/olusolaa/teardown-verifier/internal/errors"
)

const ReporterTypeJSON = "json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Reporter struct {
	writer io.Writer
	logger ports.Logger
}

type Option func(*Reporter)

func WithWriter(w io.Writer) Option {
	return func(r *Reporter) {
		if w != nil {
			r.writer = w
		}
	}
}

func NewReporter(logger ports.Logger, opts ...Option) (*Reporter, error) {
	r := &Reporter{
		writer: os.Stdout,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type jsonReport struct {
	Clean    bool               `json:"clean"`
	Mode     domain.DiffMode    `json:"mode"`
	Removed  []string           `json:"resources_left_behind"`
	Added    []string           `json:"newly_created_resources"`
	Modified []jsonModification `json:"modified,omitempty"`
	Summary  jsonSummary        `json:"summary"`
}

type jsonModification struct {
	Identity string   `json:"identity"`
	Before   []string `json:"before"`
	After    []string `json:"after"`
}

type jsonSummary struct {
	LeftBehind        int `json:"left_behind"`
	NewlyCreated      int `json:"newly_created"`
	ChangedAttributes int `json:"changed_attributes"`
}

func toStrings(ds []domain.Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = string(d)
	}
	return out
}

func (r *Reporter) Report(ctx context.Context, report domain.DiffReport) error {
	if err := ctx.Err(); err != nil {
		r.logger.Warnf(ctx, "JSON report generation cancelled.")
		return err
	}

	out := jsonReport{
		Clean:   report.Clean(),
		Mode:    report.Mode,
		Removed: toStrings(report.Removed),
		Added:   toStrings(report.Added),
		Summary: jsonSummary{
			LeftBehind:        len(report.Removed),
			NewlyCreated:      len(report.Added),
			ChangedAttributes: len(report.Modified),
		},
	}
	if out.Mode == "" {
		out.Mode = domain.DiffModeFull
	}
	for _, m := range report.Modified {
		out.Modified = append(out.Modified, jsonModification{
			Identity: m.Identity,
			Before:   toStrings(m.Before),
			After:    toStrings(m.After),
		})
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		r.logger.Errorf(ctx, err, "Failed to encode JSON report")
		return apperrors.Wrap(err, apperrors.CodeReportError, "failed to encode JSON report")
	}

	r.logger.Debugf(ctx, "JSON report successfully generated.")
	return nil
}
