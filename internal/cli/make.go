package cli

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cobra"

	"github.com/roach88/devscalar/internal/devmem"
	"github.com/roach88/devscalar/internal/dtype"
	"github.com/roach88/devscalar/internal/scalar"
)

// MakeOptions holds flags for the make command.
type MakeOptions struct {
	*RootOptions
	Int          int64
	Float        float64
	String       string
	Decimal      string
	DecimalWidth int
}

// NewMakeCommand creates the make command.
func NewMakeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MakeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "make",
		Short: "Construct a device scalar from a literal and describe it",
		Long: `Construct a device scalar from a host literal and describe it.

Exactly one of --int, --float, --string, --decimal must be given.

Example:
  devscalar make --int 42
  devscalar make --decimal 12.34 --decimal-width 64`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMake(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Int, "int", 0, "integral literal")
	cmd.Flags().Float64Var(&opts.Float, "float", 0, "floating-point literal")
	cmd.Flags().StringVar(&opts.String, "string", "", "text literal")
	cmd.Flags().StringVar(&opts.Decimal, "decimal", "", "decimal literal")
	cmd.Flags().IntVar(&opts.DecimalWidth, "decimal-width", 128, "decimal mantissa width (32|64|128)")

	return cmd
}

func runMake(opts *MakeOptions, cmd *cobra.Command) error {
	host, hint, err := hostValue(opts, cmd)
	if err != nil {
		return err
	}

	s, err := scalar.FromHost(host, hint)
	if err != nil {
		return err
	}
	defer s.Release()

	if err := Render(cmd.OutOrStdout(), opts.Format, Describe(s)); err != nil {
		return err
	}

	if tracking, ok := s.Resource().(*devmem.TrackingResource); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "live allocations: %d (%d bytes)\n",
			tracking.LiveCount(), tracking.LiveBytes())
	}
	return nil
}

// hostValue resolves the exactly-one literal flag into the host value
// and optional type hint for the dispatcher.
func hostValue(opts *MakeOptions, cmd *cobra.Command) (any, *dtype.DataType, error) {
	flags := cmd.Flags()
	set := 0
	for _, name := range []string{"int", "float", "string", "decimal"} {
		if flags.Changed(name) {
			set++
		}
	}
	if set != 1 {
		return nil, nil, fmt.Errorf("exactly one of --int, --float, --string, --decimal must be given")
	}

	switch {
	case flags.Changed("int"):
		return opts.Int, nil, nil
	case flags.Changed("float"):
		return opts.Float, nil, nil
	case flags.Changed("string"):
		return opts.String, nil, nil
	default:
		d, _, err := apd.NewFromString(opts.Decimal)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --decimal literal %q: %w", opts.Decimal, err)
		}
		hint, err := decimalWidthHint(opts.DecimalWidth, d)
		if err != nil {
			return nil, nil, err
		}
		return d, hint, nil
	}
}

func decimalWidthHint(width int, d *apd.Decimal) (*dtype.DataType, error) {
	var kind dtype.Kind
	var precision int32
	switch width {
	case 32:
		kind, precision = dtype.Decimal32, 9
	case 64:
		kind, precision = dtype.Decimal64, 18
	case 128:
		kind, precision = dtype.Decimal128, 38
	default:
		return nil, fmt.Errorf("invalid --decimal-width %d: must be 32, 64 or 128", width)
	}
	dt, err := dtype.Decimal(kind, precision, d.Exponent)
	if err != nil {
		return nil, err
	}
	return &dt, nil
}
