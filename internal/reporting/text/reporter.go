package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
	apperrors "github.com/olusolaa/teardown-verifier/internal/errors"
)

const ReporterTypeText = "text"

const (
	HeadingRemoved  = "Resources left behind:"
	HeadingAdded    = "Newly created resources (unexpected):"
	HeadingModified = "Resources with changed attributes:"
	emptySection    = "(none)"
)

type Config struct {
	NoColor bool `mapstructure:"no_color"`
}

type Reporter struct {
	config Config
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

func NewReporter(cfg Config, logger ports.Logger, opts ...Option) (*Reporter, error) {
	r := &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	if f, ok := r.writer.(*os.File); cfg.NoColor || !ok || !isTerminal(f) {
		color.NoColor = true
	}
	return r, nil
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Report(ctx context.Context, report domain.DiffReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)

	writeSection(tw, HeadingRemoved, report.Removed, red)
	fmt.Fprintln(tw)
	writeSection(tw, HeadingAdded, report.Added, yellow)

	if report.Mode == domain.DiffModeIdentity {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, HeadingModified)
		if len(report.Modified) == 0 {
			fmt.Fprintf(tw, "  %s\n", emptySection)
		}
		for _, m := range report.Modified {
			fmt.Fprintf(tw, "  %s\n", cyan(m.Identity))
			for _, d := range m.Before {
				fmt.Fprintf(tw, "    before: %s\n", d)
			}
			for _, d := range m.After {
				fmt.Fprintf(tw, "    after:  %s\n", d)
			}
		}
	}

	fmt.Fprintln(tw, "\nSummary:")
	fmt.Fprintln(tw, "-------")
	fmt.Fprintf(tw, "Left behind:\t%s\n", red(len(report.Removed)))
	fmt.Fprintf(tw, "Newly created:\t%s\n", yellow(len(report.Added)))
	if report.Mode == domain.DiffModeIdentity {
		fmt.Fprintf(tw, "Changed attributes:\t%s\n", cyan(len(report.Modified)))
	}
	if report.Clean() {
		fmt.Fprintf(tw, "Result:\t%s\n", green("CLEAN"))
	} else {
		fmt.Fprintf(tw, "Result:\t%s\n", red("RESOURCES DIFFER"))
	}

	if err := tw.Flush(); err != nil {
		r.logger.Errorf(ctx, err, "Failed to write text report")
		return apperrors.Wrap(err, apperrors.CodeReportError, "failed to write text report")
	}
	return nil
}

func writeSection(w io.Writer, heading string, descriptors []domain.Descriptor, paint func(a ...interface{}) string) {
	fmt.Fprintln(w, heading)
	if len(descriptors) == 0 {
		fmt.Fprintf(w, "  %s\n", emptySection)
		return
	}
	for _, d := range descriptors {
		fmt.Fprintf(w, "  %s\n", paint(d))
	}
}
