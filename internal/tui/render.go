package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/xmazu/envdiff/internal/diff"
	"github.com/xmazu/envdiff/internal/report"
)

const (
	absentCell  = "—"
	presentMark = "✅"
	missingMark = "❌"
)

// Renderer draws the views of a comparison.
type Renderer interface {
	Summary(m diff.Matrix) error
	Values(m diff.Matrix) error
	Presence(m diff.Matrix) error
}

// Terminal draws the views as styled panels and tables.
type Terminal struct {
	w      io.Writer
	masker diff.Masker
}

// NewTerminal returns a Terminal writing to w and masking values with masker.
func NewTerminal(w io.Writer, masker diff.Masker) *Terminal {
	return &Terminal{w: w, masker: masker}
}

func (t *Terminal) Summary(m diff.Matrix) error {
	s := m.Summary()

	stats := []string{
		statLine("Total Files:", Success(fmt.Sprint(s.Files))),
		statLine("Unique Keys:", Label(fmt.Sprint(s.Keys))),
		statLine("Incomplete Keys:", Error(fmt.Sprint(s.Incomplete))),
		statLine("Diverging Values:", Warning(fmt.Sprint(s.Diverging))),
	}
	width := 0
	for _, l := range stats {
		width = max(width, lipgloss.Width(l))
	}
	body := append([]string{Header("SUMMARY"), Muted(strings.Repeat("─", width))}, stats...)

	blocks := []string{Panel(lipgloss.JoinVertical(lipgloss.Left, body...), colorDim)}

	if s.Incomplete > 0 {
		blocks = append(blocks, Panel(t.incompleteDetails(m), colorMissing))
	}
	if s.Diverging > 0 {
		blocks = append(blocks, Panel(t.divergingDetails(m), colorDiverge))
	}

	_, err := fmt.Fprintln(t.w, strings.Join(blocks, "\n"))
	return err
}

func statLine(label, value string) string {
	return bold.Render(fmt.Sprintf("%-20s", label)) + value
}

func (t *Terminal) incompleteDetails(m diff.Matrix) string {
	var groups []string
	for _, r := range m.Rows {
		if !r.Incomplete() {
			continue
		}
		lines := []string{"• " + Error(r.Key) + " is missing in:"}
		for i, v := range r.Values {
			if v == nil {
				lines = append(lines, Muted("  ↳ "+m.Files[i]))
			}
		}
		groups = append(groups, strings.Join(lines, "\n"))
	}
	return Error("Incomplete Key Details") + "\n\n" + strings.Join(groups, "\n\n")
}

func (t *Terminal) divergingDetails(m diff.Matrix) string {
	var groups []string
	for _, r := range m.Rows {
		if !r.Diverging() {
			continue
		}
		lines := []string{"• " + Warning(r.Key)}
		for i, v := range r.Values {
			if v != nil {
				lines = append(lines, Muted("  ↳ "+m.Files[i]+":")+" "+Key(t.masker.Mask(v.Value)))
			}
		}
		groups = append(groups, strings.Join(lines, "\n"))
	}
	return Warning("Diverging Value Details") + "\n\n" + strings.Join(groups, "\n\n")
}

func (t *Terminal) Values(m diff.Matrix) error {
	return t.table(m, false, func(v *diff.Entry) string {
		if v == nil {
			return Error(absentCell)
		}
		return t.masker.Mask(v.Value)
	})
}

func (t *Terminal) Presence(m diff.Matrix) error {
	return t.table(m, true, func(v *diff.Entry) string {
		if v == nil {
			return missingMark
		}
		return presentMark
	})
}

func (t *Terminal) table(m diff.Matrix, center bool, cell func(*diff.Entry) string) error {
	rows := make([][]string, 0, len(m.Rows))
	for _, r := range m.Rows {
		row := make([]string, 0, len(r.Values)+1)
		row = append(row, r.Key)
		for _, v := range r.Values {
			row = append(row, cell(v))
		}
		rows = append(rows, row)
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(MutedStyle).
		Headers(append([]string{"VARIABLE"}, m.Files...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == 0:
				return CellStyle.Bold(true)
			case center:
				return CellStyle.Align(lipgloss.Center)
			}
			return CellStyle.Inherit(KeyStyle)
		})

	_, err := fmt.Fprintln(t.w, tbl.String())
	return err
}

// JSON writes the views as indented JSON documents.
type JSON struct {
	w      io.Writer
	masker diff.Masker
}

// NewJSON returns a JSON renderer writing to w and masking values with masker.
func NewJSON(w io.Writer, masker diff.Masker) *JSON {
	return &JSON{w: w, masker: masker}
}

func (j *JSON) Summary(m diff.Matrix) error {
	return report.Write(j.w, report.BuildSummary(m, j.masker))
}

func (j *JSON) Values(m diff.Matrix) error {
	return report.Write(j.w, report.BuildMatrix(m, j.masker))
}

func (j *JSON) Presence(m diff.Matrix) error {
	return report.Write(j.w, report.BuildPresence(m))
}
