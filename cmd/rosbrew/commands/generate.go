package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/rosbrew/internal/app"
)

const (
	flagPlace          = "place-template-files"
	flagProcess        = "process-template-files"
	flagDistro         = "ros-distro"
	flagOSVersion      = "os-version"
	flagDebInc         = "deb-inc"
	flagNonInteractive = "non-interactive"
	flagJSON           = "json"
	flagConfig         = "config"
)

// flagAliases maps alternative flag spellings to their canonical names.
var flagAliases = map[string]string{
	"place":     flagPlace,
	"process":   flagProcess,
	"rosdistro": flagDistro,
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [package_path]",
		Aliases: []string{"gen", "homebrew"},
		Short:   "Generate a Homebrew formula for a catkin package",
		Long: "Generate a Homebrew formula for the catkin package at, or contained in, package_path.\n" +
			"By default the formula template is placed and then processed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			flags := cmd.Flags()
			place, _ := flags.GetBool(flagPlace)
			process, _ := flags.GetBool(flagProcess)
			distro, _ := flags.GetString(flagDistro)
			osVersion, _ := flags.GetString(flagOSVersion)
			nonInteractive, _ := flags.GetBool(flagNonInteractive)
			jsonLog, _ := flags.GetBool(flagJSON)
			configPath, _ := flags.GetString(flagConfig)

			opts := app.GenerateOptions{
				ConfigPath:     configPath,
				Distro:         distro,
				OSVersion:      osVersion,
				NonInteractive: nonInteractive,
				Place:          place,
				Process:        process,
				JSON:           jsonLog,
			}
			if flags.Changed(flagDebInc) {
				inc, _ := flags.GetInt(flagDebInc)
				opts.DebIncrement = &inc
			}

			return c.app.Generate(cmd.Context(), path, opts)
		},
	}

	cmd.SetGlobalNormalizationFunc(normalizeFlagName)
	flags := cmd.Flags()
	flags.Bool(flagPlace, false, "Place the formula template only (alias --place)")
	flags.Bool(flagProcess, false, "Process previously placed templates only (alias --process)")
	flags.StringP(flagDistro, "r", "", "ROS distro, e.g. noetic (alias --rosdistro, default $ROS_DISTRO)")
	flags.String(flagOSVersion, "", "OS version dependency rules are resolved for, e.g. mojave")
	flags.Int(flagDebInc, 0, "Increment appended to the package version")
	flags.Bool(flagNonInteractive, false, "Abort on unresolved dependencies instead of prompting")
	flags.Bool(flagJSON, false, "Log in JSON format")
	flags.String(flagConfig, "", "Path to a rosbrew.yaml config file")
	cmd.MarkFlagsMutuallyExclusive(flagPlace, flagProcess)

	return cmd
}
