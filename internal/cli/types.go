package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/devscalar/internal/dtype"
)

// TypesOptions holds flags for the types command.
type TypesOptions struct {
	*RootOptions
}

// kindInfo is one row of the types listing.
type kindInfo struct {
	Kind     string `json:"kind"`
	ElemSize int    `json:"elem_size,omitempty"`
	Decimal  bool   `json:"decimal,omitempty"`
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TypesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "types",
		Short:         "List the supported scalar kinds",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(opts, cmd)
		},
	}

	return cmd
}

func runTypes(opts *TypesOptions, cmd *cobra.Command) error {
	kinds := []dtype.Kind{
		dtype.Int8, dtype.Int16, dtype.Int32, dtype.Int64,
		dtype.Uint8, dtype.Uint16, dtype.Uint32, dtype.Uint64,
		dtype.Float32, dtype.Float64, dtype.String,
		dtype.Decimal32, dtype.Decimal64, dtype.Decimal128,
	}

	rows := make([]kindInfo, 0, len(kinds))
	for _, k := range kinds {
		rows = append(rows, kindInfo{
			Kind:     k.String(),
			ElemSize: elemSizeOf(k),
			Decimal:  k.IsDecimal(),
		})
	}

	if opts.Format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(rows)
	}
	for _, r := range rows {
		if r.ElemSize == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s variable\n", r.Kind)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d bytes\n", r.Kind, r.ElemSize)
	}
	return nil
}

func elemSizeOf(k dtype.Kind) int {
	if k.IsDecimal() {
		dt, err := dtype.Decimal(k, 1, 0)
		if err != nil {
			return 0
		}
		return dt.ElemSize()
	}
	return dtype.Primitive(k).ElemSize()
}
