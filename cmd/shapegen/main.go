// Command shapegen infers a cube, cylinder, cone or pyramid from front, top
// and side silhouette images and writes an OpenSCAD model for it.
package main

import (
	"fmt"
	"io"
	"os"

	"shape-generator/internal/config"
	"shape-generator/internal/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli carries the global flags and the logger shared by all subcommands.
type cli struct {
	verbose    bool
	configPath string
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "shapegen",
		Short: "Generate a 3D primitive model from three silhouette views",
		Long: `shapegen classifies the outline of a front, top and side silhouette as a
polygon (triangle, square, rectangle, pentagon, hexagon or circle), looks the
combination up in a fixed table and writes an OpenSCAD model of the matching
primitive:

  Square    / Square / Square    -> Cube
  Rectangle / Circle / Rectangle -> Cylinder
  Triangle  / Circle / Triangle  -> Cone
  Triangle  / Square / Triangle  -> Pyramid

Silhouettes are expected as a dark shape on a light background.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logCfg := zap.NewProductionConfig()
			logCfg.Encoding = "console"
			logCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			logCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if c.verbose {
				logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := logCfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to a YAML run configuration")

	rootCmd.AddCommand(
		c.generateCmd(),
		c.classifyCmd(),
		c.rulesCmd(),
		c.initConfigCmd(),
		versionCmd(),
	)
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shapegen %s\n", version.String())
		},
	}
}

// loadConfig returns the --config file contents, or defaults when unset.
func (c *cli) loadConfig() (config.Config, error) {
	if c.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(c.configPath)
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
