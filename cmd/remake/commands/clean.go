package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [target]",
		Short: "Remove build artifacts and restore modified files",
		Long: `Delete the named target together with the intermediates below it and
undo the file modifications it depends on. Without a target, every
generated file is deleted, every modified file is restored from its
pristine clone and the state database is removed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Clean(cmd.Context(), options(cmd, args))
		},
	}
}
