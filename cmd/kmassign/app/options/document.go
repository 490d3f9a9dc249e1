package options

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Document is the on-disk description of one assignment instance.
//
//	weights: [[7, 4, 3], [3, 1, 2]]
//	left:    [alice, bob]          # optional row names
//	right:   [red, green, blue]    # optional column names
type Document struct {
	Weights [][]float64 `json:"weights"`
	Left    []string    `json:"left,omitempty"`
	Right   []string    `json:"right,omitempty"`
}

// tomlDocument keeps cells untyped: TOML separates integer and float
// arrays, and either must be accepted as a weight.
type tomlDocument struct {
	Weights [][]interface{} `toml:"weights"`
	Left    []string        `toml:"left"`
	Right   []string        `toml:"right"`
}

// ResolveFormat maps FormatAuto to a concrete format from the file name.
// Standard input and unknown extensions fall back to YAML, which also
// accepts JSON.
func ResolveFormat(path, format string) string {
	if format != FormatAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// LoadDocument reads path ("-" or "" for stdin) and decodes it.
func LoadDocument(path, format string, stdin io.Reader) (*Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", displayName(path))
	}

	doc, err := DecodeDocument(data, ResolveFormat(path, format))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", displayName(path))
	}

	return doc, nil
}

// DecodeDocument decodes data in the given concrete format and checks the
// document shape (non-ragged weights, name counts).
func DecodeDocument(data []byte, format string) (*Document, error) {
	var (
		doc Document
		err error
	)
	switch format {
	case FormatJSON, FormatYAML:
		err = yaml.UnmarshalStrict(data, &doc)
	case FormatTOML:
		err = decodeTOML(data, &doc)
	default:
		err = errors.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if err = doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

func decodeTOML(data []byte, doc *Document) error {
	var raw tomlDocument
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return errors.Wrap(err, "toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("toml: unknown keys %v", undecoded)
	}

	doc.Left, doc.Right = raw.Left, raw.Right
	doc.Weights = make([][]float64, len(raw.Weights))
	for i, row := range raw.Weights {
		doc.Weights[i] = make([]float64, len(row))
		for j, cell := range row {
			switch x := cell.(type) {
			case int64:
				doc.Weights[i][j] = float64(x)
			case float64:
				doc.Weights[i][j] = x
			default:
				return errors.Errorf("toml: weights[%d][%d] is %T, want a number", i, j, cell)
			}
		}
	}

	return nil
}

// validate checks the parts of the document the solver cannot see.
func (d *Document) validate() error {
	if len(d.Weights) == 0 {
		if len(d.Left) > 0 || len(d.Right) > 0 {
			return errors.New("names given for an empty weight matrix")
		}
		return nil
	}
	cols := len(d.Weights[0])
	for i, row := range d.Weights {
		if len(row) != cols {
			return errors.Errorf("weights row %d has %d entries, want %d", i, len(row), cols)
		}
	}
	if len(d.Left) > 0 && len(d.Left) != len(d.Weights) {
		return errors.Errorf("%d left names for %d rows", len(d.Left), len(d.Weights))
	}
	if len(d.Right) > 0 && len(d.Right) != cols {
		return errors.Errorf("%d right names for %d columns", len(d.Right), cols)
	}

	return nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}

	return path
}
