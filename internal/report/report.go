// Package report turns a comparison matrix into plain data for machine
// readable output. Values are masked before they enter a report.
package report

import (
	"encoding/json"
	"io"

	"github.com/xmazu/envdiff/internal/diff"
)

type Row struct {
	Key       string            `json:"key"`
	Values    map[string]string `json:"values"`
	Missing   []string          `json:"missing,omitempty"`
	Diverging bool              `json:"diverging"`
}

// Matrix is the full key by file view.
type Matrix struct {
	Summary diff.Summary `json:"summary"`
	Files   []string     `json:"files"`
	Rows    []Row        `json:"rows"`
}

type PresenceRow struct {
	Key     string   `json:"key"`
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// Presence carries no values at all, only where each key is defined.
type Presence struct {
	Summary diff.Summary  `json:"summary"`
	Files   []string      `json:"files"`
	Rows    []PresenceRow `json:"rows"`
}

// Summary holds only the keys that need attention.
type Summary struct {
	Summary    diff.Summary                 `json:"summary"`
	Files      []string                     `json:"files"`
	Incomplete map[string][]string          `json:"incomplete"`
	Diverging  map[string]map[string]string `json:"diverging"`
}

func BuildMatrix(m diff.Matrix, masker diff.Masker) Matrix {
	out := Matrix{
		Summary: m.Summary(),
		Files:   m.Files,
		Rows:    make([]Row, 0, len(m.Rows)),
	}

	for _, r := range m.Rows {
		row := Row{Key: r.Key, Values: make(map[string]string), Diverging: r.Diverging()}
		for i, v := range r.Values {
			if v == nil {
				row.Missing = append(row.Missing, m.Files[i])
				continue
			}
			row.Values[m.Files[i]] = masker.Mask(v.Value)
		}
		out.Rows = append(out.Rows, row)
	}

	return out
}

func BuildPresence(m diff.Matrix) Presence {
	out := Presence{
		Summary: m.Summary(),
		Files:   m.Files,
		Rows:    make([]PresenceRow, 0, len(m.Rows)),
	}

	for _, r := range m.Rows {
		row := PresenceRow{Key: r.Key, Present: []string{}, Missing: []string{}}
		for i, v := range r.Values {
			if v == nil {
				row.Missing = append(row.Missing, m.Files[i])
			} else {
				row.Present = append(row.Present, m.Files[i])
			}
		}
		out.Rows = append(out.Rows, row)
	}

	return out
}

func BuildSummary(m diff.Matrix, masker diff.Masker) Summary {
	diverging := diff.DivergingDetails(m.Rows, m.Files)
	for _, perFile := range diverging {
		for f, v := range perFile {
			perFile[f] = masker.Mask(v)
		}
	}

	return Summary{
		Summary:    m.Summary(),
		Files:      m.Files,
		Incomplete: diff.IncompleteDetails(m.Rows, m.Files),
		Diverging:  diverging,
	}
}

func Write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
