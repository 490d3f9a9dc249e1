package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/kuhnmunkres/cmd/kmassign/app/options"
	"github.com/katalvlaran/kuhnmunkres/hungarian"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Assignment is one real left-right pair of the optimal matching.
type Assignment struct {
	Left   string  `json:"left"`
	Right  string  `json:"right"`
	Weight float64 `json:"weight"`
}

// Report is the printable outcome of one run.
type Report struct {
	Objective   string       `json:"objective"`
	Value       float64      `json:"value"`
	Assignments []Assignment `json:"assignments"`
	// UnassignedLeft and UnassignedRight list vertices matched to padding.
	UnassignedLeft  []string `json:"unassignedLeft,omitempty"`
	UnassignedRight []string `json:"unassignedRight,omitempty"`
	Verified        bool     `json:"verified"`
	Rounds          int      `json:"rounds"`
	Relabels        int      `json:"relabels"`
}

// BuildReport maps a result over a possibly padded k×k instance back onto
// the original rows×cols problem. Pairs touching a dummy row or column are
// reported as unassigned, and Value sums only the real pairs.
func BuildReport(res hungarian.Result, rows, cols int, left, right []string, verified bool) Report {
	rep := Report{
		Objective:   "max",
		Assignments: []Assignment{},
		Verified:    verified,
		Rounds:      res.Stats.Rounds,
		Relabels:    res.Stats.Relabels,
	}
	if res.Minimized {
		rep.Objective = "min"
	}

	for _, p := range res.Pairs {
		switch {
		case p.Left < rows && p.Right < cols:
			rep.Assignments = append(rep.Assignments, Assignment{
				Left:   vertexName(left, "L", p.Left),
				Right:  vertexName(right, "R", p.Right),
				Weight: p.Weight,
			})
			rep.Value += p.Weight
		case p.Left < rows:
			rep.UnassignedLeft = append(rep.UnassignedLeft, vertexName(left, "L", p.Left))
		case p.Right < cols:
			rep.UnassignedRight = append(rep.UnassignedRight, vertexName(right, "R", p.Right))
		}
	}

	return rep
}

func vertexName(names []string, prefix string, i int) string {
	if i < len(names) {
		return names[i]
	}

	return prefix + strconv.Itoa(i)
}

// WriteReport encodes rep to w in the given output format.
func WriteReport(w io.Writer, rep Report, format string) error {
	switch format {
	case options.OutputJSON:
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case options.OutputYAML:
		data, err := yaml.Marshal(rep)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case options.OutputText:
		return writeText(w, rep)
	default:
		return errors.Errorf("unsupported output format %q", format)
	}
}

func writeText(w io.Writer, rep Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEFT\tRIGHT\tWEIGHT")
	for _, a := range rep.Assignments {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Left, a.Right, formatWeight(a.Weight))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, name := range rep.UnassignedLeft {
		fmt.Fprintf(w, "unassigned left: %s\n", name)
	}
	for _, name := range rep.UnassignedRight {
		fmt.Fprintf(w, "unassigned right: %s\n", name)
	}
	_, err := fmt.Fprintf(w, "%s total: %s (verified: %t)\n", rep.Objective, formatWeight(rep.Value), rep.Verified)

	return err
}

func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
