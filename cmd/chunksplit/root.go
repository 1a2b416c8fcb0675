package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/chunksplit/internal/version"
	"github.com/arthur-debert/chunksplit/pkg/config"
	"github.com/arthur-debert/chunksplit/pkg/logging"
	"github.com/arthur-debert/chunksplit/pkg/plugin"
)

var (
	verbosity   int
	projectRoot string
	strategy    string
	activeHints []string

	rootCmd = &cobra.Command{
		Use:   "chunksplit",
		Short: "Classify third-party dependencies into named chunk groups",
		Long: `chunksplit maps dependency module paths to named output chunk groups,
so large or related libraries are isolated from the generic vendor bundle.
It reads .chunksplit.toml and package.json from the project root, builds
the prioritized matcher list, and classifies module paths against it.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", ".",
		"Project root containing package.json and optional chunksplit config")
	rootCmd.PersistentFlags().StringVar(&strategy, "strategy", "",
		"Override the splitting strategy (aggressive, balanced, conservative)")
	rootCmd.PersistentFlags().StringSliceVar(&activeHints, "plugins", nil,
		"Active build-tool integrations, used for framework hint detection")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)
}

// newPlugin loads configuration for the project root, applies flag
// overrides, and runs one build invocation
func newPlugin() (*plugin.Plugin, error) {
	overrides := map[string]interface{}{}
	if strategy != "" {
		overrides["split.strategy"] = strategy
	}

	opts, err := config.Load(projectRoot, overrides)
	if err != nil {
		return nil, err
	}

	p := plugin.New()
	if err := p.Configure(opts); err != nil {
		return nil, err
	}
	if err := p.BuildStart(projectRoot, activeHints); err != nil {
		return nil, err
	}
	return p, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chunksplit version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
