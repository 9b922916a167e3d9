package main

import (
	"github.com/spf13/cobra"

	"github.com/blockguard-sf/rek/internal/cmd"
	"github.com/blockguard-sf/rek/internal/config"
	"github.com/blockguard-sf/rek/internal/output"
	"github.com/blockguard-sf/rek/internal/prompt"
	"github.com/blockguard-sf/rek/internal/version"
)

var (
	// Global flags
	flagConfig string
	flagDebug  bool
)

// rootCmd is the base command for the REK CLI. Invoked without arguments it
// drives the interactive prompt sequence and generates a package scaffold.
var rootCmd = &cobra.Command{
	Use:   "rek",
	Short: "RoLib Extension Kit",
	Long: `REK makes it easy to create packages for RoLib.

Run without arguments to answer the prompts interactively, or use
'rek new' to generate a package from flags.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: initializeGlobals,
	RunE:              runInteractive,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: REK_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "display extra debugging information")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(cmd.NewNewCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
}

// initializeGlobals sets up logging and config based on global flags.
func initializeGlobals(_ *cobra.Command, _ []string) error {
	output.SetupLogging(flagDebug)

	info := version.GetInfo()
	output.Debug("REK CLI started", "version", info.Version)

	cfg, err := config.NewLoader().Load(flagConfig)
	if err != nil {
		return err
	}
	cmd.SetConfig(cfg)

	return nil
}

func runInteractive(c *cobra.Command, _ []string) error {
	meta, err := prompt.Collect(cmd.GetConfig())
	if err != nil {
		return err
	}

	output.Debug("collected metadata",
		"name", meta.Name,
		"author", meta.Author,
		"license", meta.License,
		"git", meta.GitEnabled,
		"directory", meta.Directory)

	return cmd.RunGenerate(c.Context(), meta)
}
