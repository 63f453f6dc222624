package main

import (
	"fmt"
	"os"

	"shape-generator/internal/config"
	"shape-generator/internal/shape"

	"github.com/spf13/cobra"
)

func (c *cli) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the view combinations that name a shape",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s %-10s %-10s %s\n", "Front", "Top", "Side", "Shape")
			for _, r := range shape.Rules() {
				fmt.Fprintf(out, "%-10s %-10s %-10s %s\n", r.Views.Front, r.Views.Top, r.Views.Side, r.Shape)
			}
			fmt.Fprintf(out, "%-32s %s\n", "(anything else)", shape.NotRecognized)
		},
	}
}

func (c *cli) initConfigCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config PATH",
		Short: "Write a default YAML run configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.Default()
			cfg.Views = config.Views{Front: "front.png", Top: "top.png", Side: "side.png"}
			if err := cfg.Save(path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
