// Package options holds the command-line options of kmassign and the
// loader for weight documents.
package options

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/pflag"
)

// Input formats accepted by --format.
const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Options is the full set of kmassign flags.
type Options struct {
	// Format of the input document; auto picks by file extension.
	Format string
	// Output selects the report encoding.
	Output string
	// Minimize treats weights as costs.
	Minimize bool
	// Pad turns a rectangular matrix square with PadValue dummy cells.
	Pad bool
	// PadValue is the weight of every dummy cell.
	PadValue float64
	// Verify checks the dual certificate of the result before reporting.
	Verify bool
	// Timeout bounds the solve; 0 disables it. Checked between rounds.
	Timeout time.Duration
}

// NewOptions returns Options with defaults.
func NewOptions() *Options {
	return &Options{
		Format:   FormatAuto,
		Output:   OutputText,
		PadValue: 0,
		Verify:   true,
	}
}

// AddFlags binds the options to fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Format, "format", "f", o.Format, "Input format: auto, json, yaml or toml.")
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Report format: text, json or yaml.")
	fs.BoolVar(&o.Minimize, "minimize", o.Minimize, "Treat weights as costs and minimize the total.")
	fs.BoolVar(&o.Pad, "pad", o.Pad, "Pad a rectangular matrix with dummy rows or columns.")
	fs.Float64Var(&o.PadValue, "pad-value", o.PadValue, "Weight of the dummy cells added by --pad.")
	fs.BoolVar(&o.Verify, "verify", o.Verify, "Verify the optimality certificate before reporting.")
	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "Abort the solve after this long (0 = no limit).")
}

// Validate reports every invalid option.
func (o *Options) Validate() []error {
	var errs []error
	switch o.Format {
	case FormatAuto, FormatJSON, FormatYAML, FormatTOML:
	default:
		errs = append(errs, fmt.Errorf("unknown --format %q", o.Format))
	}
	switch o.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		errs = append(errs, fmt.Errorf("unknown --output %q", o.Output))
	}
	if math.IsNaN(o.PadValue) || math.IsInf(o.PadValue, 0) {
		errs = append(errs, errors.New("--pad-value must be finite"))
	}
	if o.Timeout < 0 {
		errs = append(errs, fmt.Errorf("--timeout must not be negative, got %s", o.Timeout))
	}

	return errs
}
