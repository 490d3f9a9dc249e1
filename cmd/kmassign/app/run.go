package app

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/katalvlaran/kuhnmunkres/cmd/kmassign/app/options"
	"github.com/katalvlaran/kuhnmunkres/hungarian"
	"github.com/katalvlaran/kuhnmunkres/matrix"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Run loads the document at path, solves it under opts and writes the
// report to out. Options must already be validated.
func Run(ctx context.Context, opts *options.Options, path string, stdin io.Reader, out io.Writer) error {
	doc, err := options.LoadDocument(path, opts.Format, stdin)
	if err != nil {
		return err
	}
	klog.V(2).InfoS("Loaded document", "source", path, "rows", len(doc.Weights))

	m, err := matrix.NewDenseFromRows(doc.Weights)
	if err != nil {
		return errors.Wrap(err, "building weight matrix")
	}
	rows, cols := m.Shape()

	var in matrix.Matrix = m
	if opts.Pad && rows != cols {
		padded, err := matrix.PadSquare(m, opts.PadValue)
		if err != nil {
			return errors.Wrap(err, "padding weight matrix")
		}
		klog.V(2).InfoS("Padded rectangular matrix", "rows", rows, "cols", cols, "size", padded.Rows())
		in = padded
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	res, err := solve(ctx, in, opts.Minimize)
	if err != nil {
		return errors.Wrap(err, "solving")
	}
	klog.V(2).InfoS("Solved",
		"n", len(res.LeftToRight), "value", res.Value,
		"rounds", res.Stats.Rounds, "treeSteps", res.Stats.TreeSteps,
		"relabels", res.Stats.Relabels, "slackScans", res.Stats.SlackScans)

	if opts.Verify {
		if err = hungarian.Verify(in, res, hungarian.DefaultEps); err != nil {
			return errors.Wrap(err, "verifying result")
		}
		klog.V(2).InfoS("Certificate verified")
	}

	report := BuildReport(res, rows, cols, doc.Left, doc.Right, opts.Verify)

	return errors.Wrap(WriteReport(out, report, opts.Output), "writing report")
}

// solve runs the solver with klog tracing and a between-rounds deadline check.
func solve(ctx context.Context, in matrix.Matrix, minimize bool) (hungarian.Result, error) {
	opts := []hungarian.Option{
		hungarian.WithOnRelabel(func(round int, delta float64) {
			klog.V(5).InfoS("Relabel", "round", round, "delta", delta)
		}),
		hungarian.WithOnAugment(func(round, root, flipped int) error {
			klog.V(4).InfoS("Augmented", "round", round, "root", root, "flipped", flipped)
			return ctx.Err()
		}),
	}
	if minimize {
		return hungarian.AssignMin(in, opts...)
	}

	return hungarian.Assign(in, opts...)
}

func joinErrors(errs []error) error {
	return stderrors.Join(errs...)
}
