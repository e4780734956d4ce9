package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"splitlab/divergence"
	"splitlab/experiment"
	"splitlab/split"
)

// WriteSplitTable renders the chosen split and its diagnostics as an aligned
// text table.
func WriteSplitTable(w io.Writer, result *split.SplitResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "threshold\t%.6f\n", result.Threshold)
	fmt.Fprintf(tw, "left entropy\t%.6f\n", result.LeftEntropy)
	fmt.Fprintf(tw, "right entropy\t%.6f\n", result.RightEntropy)
	fmt.Fprintf(tw, "combined score\t%.6f\n", result.Combined)
	fmt.Fprintf(tw, "candidate splits\t%d\n", len(result.Curve))
	return tw.Flush()
}

// WriteSplitCurveCSV dumps the per-candidate entropy curve for plotting.
func WriteSplitCurveCSV(w io.Writer, curve split.ScoreCurve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"position", "left", "right", "combined"}); err != nil {
		return err
	}
	for _, point := range curve {
		record := []string{
			formatFloat(point.Position),
			formatFloat(point.Left),
			formatFloat(point.Right),
			formatFloat(point.Combined),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDivergenceCSV dumps a JS divergence curve for plotting.
func WriteDivergenceCSV(w io.Writer, curve divergence.ScoreCurve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"position", "js"}); err != nil {
		return err
	}
	for _, point := range curve {
		if err := cw.Write([]string{formatFloat(point.Position), formatFloat(point.Score)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCells renders sweep results as an aligned table, one row per cell.
func WriteCells(w io.Writer, cells []experiment.CellResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "separation\tsample size\tbins\tentropy thr\tdivergence thr\tbinned thr\tdisagreement")
	for _, cell := range cells {
		fmt.Fprintf(tw, "%.2f\t%d\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			cell.Separation, cell.SampleSize, cell.Bins,
			cell.EntropyThreshold, cell.DivergenceThreshold,
			cell.BinnedThreshold, cell.Disagreement)
	}
	return tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
