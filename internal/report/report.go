// Package report renders computed statistics for the console.
package report

import (
	"fmt"
	"io"

	"github.com/bft-labs/numstat/internal/app"
)

// Labels used for each output line, in print order.
const (
	LabelMin     = "Minimum"
	LabelMax     = "Maximum"
	LabelSum     = "Sum"
	LabelProduct = "Product"
)

// Write prints r as "<Label>: <value>" lines.
func Write(w io.Writer, r app.Report) error {
	lines := []struct {
		label string
		value interface{}
	}{
		{LabelMin, r.Min},
		{LabelMax, r.Max},
		{LabelSum, r.Sum},
		{LabelProduct, r.Product},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %v\n", l.label, l.value); err != nil {
			return err
		}
	}
	return nil
}
