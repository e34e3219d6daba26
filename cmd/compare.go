package main

import (
	"github.com/spf13/cobra"

	"github.com/olusolaa/teardown-verifier/internal/app"
)

func newCompareCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <before-location> <after-location>",
		Short: "Compare two snapshots and report leftover and new resources",
		Long: `Compare loads two snapshots and reports resources present before but not
after (left behind) and resources present after but not before (newly
created). Exits 0 when both lists are empty and 1 otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := c.build(cmd, "compare")
			if err != nil {
				return err
			}
			report, err := application.Compare(cmd.Context(), args[0], args[1])
			if err != nil {
				return c.fail("compare", err)
			}
			if !report.Clean() {
				return &exitError{code: exitDiff}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP(app.FlagOutput, "o", "", "Report format (text, json)")
	flags.Bool(app.FlagNoColor, false, "Disable colored output")
	flags.Bool(app.FlagIdentity, false, "Match resources by identity and report attribute changes separately")
	return cmd
}
