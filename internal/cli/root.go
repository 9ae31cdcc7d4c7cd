// Package cli implements the devscalar developer tool: construct a
// device scalar from a host literal and inspect the result. The library
// packages stay silent; all human/JSON output happens here.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
	Config string // optional yaml config path
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the devscalar CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "devscalar",
		Short: "Inspect device-resident scalar values",
		Long:  "Construct a device scalar from a host literal and describe its type, validity and payload.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Config != "" {
				cfg, err := LoadConfig(opts.Config)
				if err != nil {
					return err
				}
				applyConfig(cfg)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to memory resource config (yaml)")

	// Add subcommands
	cmd.AddCommand(NewMakeCommand(opts))
	cmd.AddCommand(NewTypesCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
