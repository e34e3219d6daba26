package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olusolaa/teardown-verifier/internal/app"
)

func newCaptureCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture <output-location>",
		Short: "Capture the current resource inventory into a snapshot",
		Long: `Capture enumerates every configured resource category and writes the
inventory to a snapshot. The location is a local path or s3://bucket/key;
a .yaml or .yml extension selects YAML, anything else JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := c.build(cmd, "capture")
			if err != nil {
				return err
			}
			summary, err := application.Capture(cmd.Context(), args[0])
			if err != nil {
				return c.fail("capture", err)
			}
			fmt.Fprintf(c.stdout, "Captured %d resources to %s\n", summary.Resources, summary.Location)
			if summary.Partial() {
				fmt.Fprintf(c.stderr, "WARNING: snapshot is partial; categories not captured: %s\n",
					strings.Join(summary.FailedCategories, ", "))
				return &exitError{code: exitPartial}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringSlice(app.FlagCategories, nil, "Resource categories to capture (see 'categories')")
	flags.Bool(app.FlagBestEffort, false, "Save a partial snapshot when some categories fail")
	flags.Int(app.FlagConcurrency, 0, "Maximum number of categories listed at once")
	flags.Duration(app.FlagProviderTimeout, 0, "Time limit for listing one category (0 means none)")
	flags.StringToString(app.FlagTag, nil, "Only capture EC2 resources with these tags (key=value, value * matches any)")
	flags.Bool(app.FlagSkipPreflight, false, "Skip the AWS credential check")
	return cmd
}
