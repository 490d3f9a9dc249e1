package options_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/kuhnmunkres/cmd/kmassign/app/options"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	o := options.NewOptions()
	assert.Equal(t, options.FormatAuto, o.Format)
	assert.Equal(t, options.OutputText, o.Output)
	assert.True(t, o.Verify)
	assert.False(t, o.Minimize)
	assert.Empty(t, o.Validate())
}

func TestOptions_AddFlags(t *testing.T) {
	o := options.NewOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.AddFlags(fs)

	err := fs.Parse([]string{
		"--format=toml", "-o", "yaml", "--minimize", "--pad",
		"--pad-value=-1.5", "--verify=false", "--timeout=2s",
	})
	require.NoError(t, err)
	assert.Equal(t, &options.Options{
		Format:   options.FormatTOML,
		Output:   options.OutputYAML,
		Minimize: true,
		Pad:      true,
		PadValue: -1.5,
		Verify:   false,
		Timeout:  2 * time.Second,
	}, o)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*options.Options)
		want   int
	}{
		{"bad format", func(o *options.Options) { o.Format = "xml" }, 1},
		{"bad output", func(o *options.Options) { o.Output = "csv" }, 1},
		{"nan pad", func(o *options.Options) { o.PadValue = math.NaN() }, 1},
		{"inf pad", func(o *options.Options) { o.PadValue = math.Inf(-1) }, 1},
		{"negative timeout", func(o *options.Options) { o.Timeout = -time.Second }, 1},
		{"all at once", func(o *options.Options) {
			o.Format, o.Output, o.PadValue, o.Timeout = "x", "y", math.Inf(1), -1
		}, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := options.NewOptions()
			tc.mutate(o)
			assert.Len(t, o.Validate(), tc.want)
		})
	}
}
