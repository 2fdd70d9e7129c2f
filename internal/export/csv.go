package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/trace"
)

var csvHeader = []string{
	"step", "kind", "seq", "origin", "key", "compare", "min", "pivot", "i", "j",
	"swap_a", "swap_b", "final", "low", "high", "sorted_up_to", "sorted_from",
	"node", "depth", "text",
}

// WriteCSV writes one row per step. Sequences are space separated and
// unset indices are -1.
func WriteCSV(w io.Writer, lg *trace.Log) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for i, s := range lg.Steps {
		row := []string{
			strconv.Itoa(i),
			s.Kind.String(),
			joinInts(s.Seq),
			joinInts(s.Origin),
		}
		for _, v := range []int{s.Key, s.Compare, s.Min, s.Pivot, s.I, s.J, s.SwapA, s.SwapB,
			s.Final, s.Low, s.High, s.SortedUpTo, s.SortedFrom, s.Node, s.Depth} {
			row = append(row, strconv.Itoa(v))
		}
		row = append(row, s.Text)
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
