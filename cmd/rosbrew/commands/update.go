package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rosbrew/internal/app"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Re-download the dependency rule sources into the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jsonLog, _ := cmd.Flags().GetBool(flagJSON)
			configPath, _ := cmd.Flags().GetString(flagConfig)
			return c.app.Update(cmd.Context(), app.UpdateOptions{
				ConfigPath: configPath,
				JSON:       jsonLog,
			})
		},
	}
	cmd.Flags().Bool(flagJSON, false, "Log in JSON format")
	cmd.Flags().String(flagConfig, "", "Path to a rosbrew.yaml config file")
	return cmd
}
