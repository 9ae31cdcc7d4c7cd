package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/roach88/devscalar/internal/scalar"
)

// Description is the renderable summary of one scalar.
type Description struct {
	Kind         string `json:"kind"`
	Valid        bool   `json:"valid"`
	Value        string `json:"value"`
	DecimalWidth int    `json:"decimal_width,omitempty"`
	Precision    int32  `json:"precision,omitempty"`
	Scale        int32  `json:"scale,omitempty"`
}

// Describe summarizes a scalar for output.
func Describe(s *scalar.Scalar) Description {
	dt := s.Type()
	d := Description{
		Kind:  dt.ID().String(),
		Valid: s.IsValid(),
		Value: s.String(),
	}
	if dt.ID().IsDecimal() {
		d.DecimalWidth = dt.DecimalWidth()
		d.Precision = dt.Precision()
		d.Scale = dt.Scale()
	}
	return d
}

// Render writes the description in the requested format.
func Render(w io.Writer, format string, d Description) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		return enc.Encode(d)
	}

	fmt.Fprintf(w, "kind: %s\n", d.Kind)
	fmt.Fprintf(w, "valid: %t\n", d.Valid)
	fmt.Fprintf(w, "value: %s\n", d.Value)
	if d.DecimalWidth != 0 {
		fmt.Fprintf(w, "width: %d\n", d.DecimalWidth)
		fmt.Fprintf(w, "precision: %d\n", d.Precision)
		fmt.Fprintf(w, "scale: %d\n", d.Scale)
	}
	return nil
}
