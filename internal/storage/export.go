package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"qubitsim/internal/engine"
)

// ExportData bundles a run's metadata and series for JSON export.
type ExportData struct {
	RunMetadata
	Days        []float64 `json:"days"`
	FidelitySC  []float64 `json:"fidelity_sc"`
	FidelityTI  []float64 `json:"fidelity_ti"`
	Temperature []float64 `json:"temperature"`
}

// ExportJSON writes a saved run as one indented JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, res *engine.Result) error {
	data := ExportData{
		RunMetadata: *meta,
		Days:        res.Days,
		FidelitySC:  res.FidelitySC,
		FidelityTI:  res.FidelityTI,
		Temperature: res.Temperature,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a run's series in the same column layout the store
// persists.
func ExportCSV(w io.Writer, res *engine.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"day", "fidelity_sc", "fidelity_ti", "temperature"}); err != nil {
		return err
	}
	for i := range res.Days {
		row := []string{
			strconv.FormatFloat(res.Days[i], 'f', 6, 64),
			strconv.FormatFloat(res.FidelitySC[i], 'f', 6, 64),
			strconv.FormatFloat(res.FidelityTI[i], 'f', 6, 64),
			strconv.FormatFloat(res.Temperature[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
