package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// featureResult is the JSON output envelope.
type featureResult struct {
	Input      string      `json:"input"`
	Transform  string      `json:"transform"`
	SampleRate int         `json:"sample_rate"`
	NumFrames  int         `json:"num_frames"`
	Data       [][]float64 `json:"data"`
}

// writeResult serializes res to the path and format selected by the global
// flags. CSV emits one row per frame with no header.
func writeResult(res *featureResult) error {
	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "csv":
		cw := csv.NewWriter(w)
		record := make([]string, 0, 64)
		for _, row := range res.Data {
			record = record[:0]
			for _, v := range row {
				record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing csv: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("unknown output format %q (want json or csv)", outputFormat)
	}
}

// vectorResult wraps a per-frame scalar feature as a single-column matrix.
func vectorResult(v []float64) [][]float64 {
	out := make([][]float64, len(v))
	for i, x := range v {
		out[i] = []float64{x}
	}
	return out
}
