package analysis

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/algoviz/internal/step"
)

// WriteCSV writes one row per sample: size, total steps, then one column
// per operation in ops.
func WriteCSV(w io.Writer, samples []Sample, ops []step.Operation) error {
	cw := csv.NewWriter(w)

	header := []string{"size", "steps"}
	for _, op := range ops {
		header = append(header, string(op))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range samples {
		row := []string{strconv.Itoa(s.Size), strconv.Itoa(s.Steps)}
		for _, op := range ops {
			row = append(row, strconv.Itoa(s.Count(op)))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
