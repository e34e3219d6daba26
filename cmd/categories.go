package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
)

func newCategoriesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the resource categories that can be captured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := make(map[string]bool)
			for _, key := range domain.DefaultCategoryKeys() {
				defaults[key] = true
			}
			w := tabwriter.NewWriter(c.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tDESCRIPTOR PREFIX\tDEFAULT")
			for _, category := range domain.KnownCategories() {
				fmt.Fprintf(w, "%s\t%s %s:\t%t\n", category.Key, category.Name, category.IDLabel, defaults[category.Key])
			}
			return w.Flush()
		},
	}
}
