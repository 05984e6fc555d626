package diffusion

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// TrialResult is one row of the output table.
type TrialResult struct {
	RT          float64 // non-decision time plus accumulated decision time
	SpeededResp int     // 1 if the upper boundary absorbed the walk, else 0
	DelayedResp int     // 1 if the evidence sample exceeded the active criterion, else 0
}

// Table is the dense output of one simulation call: row i holds trial i.
type Table []TrialResult

// RTs returns the reaction time column.
func (t Table) RTs() []float64 {
	out := make([]float64, len(t))
	for i, row := range t {
		out[i] = row.RT
	}
	return out
}

// WriteCSV writes the table with the column header used by the fitting
// driver: RT, speeded_resp, delayed_resp.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"RT", "speeded_resp", "delayed_resp"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, row := range t {
		rec := []string{
			strconv.FormatFloat(row.RT, 'g', -1, 64),
			strconv.Itoa(row.SpeededResp),
			strconv.Itoa(row.DelayedResp),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
