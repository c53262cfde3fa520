package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [target]",
		Short: "Bring a target up to date",
		Long: `Build the named target and everything it depends on. Rules whose
target is newer than all of its dependencies are skipped. Without a
target, every rule in the manifest is brought up to date.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options(cmd, args)
			opts.Progress, _ = cmd.Flags().GetBool("progress")
			return c.app.Build(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolP("progress", "p", false, "Render per-target progress on stderr")
	return cmd
}
