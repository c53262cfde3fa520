package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDAGCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dag [target]",
		Short: "Print the dependency graph",
		Long: `Print the dependency tree of the named target, one node per line with
nesting markers. Without a target, the trees of all top-level targets
are printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.DAG(cmd.Context(), options(cmd, args), cmd.OutOrStdout())
		},
	}
}
