// Package report renders a daily record as a printable PDF.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/DPT/internal/models"
)

// FileName is the report name for date.
func FileName(date string) string {
	return fmt.Sprintf("report_%s.pdf", date)
}

// Write renders r as a PDF into w.
func Write(w io.Writer, r *models.DailyRecord) error {
	pdf := render(r)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report %s: %w", r.Date, err)
	}
	return nil
}

// Generate writes the report for r into dir and returns its absolute path.
func Generate(r *models.DailyRecord, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(r.Date))
	pdf := render(r)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}

func render(r *models.DailyRecord) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Daily report "+r.Date, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Daily Report: %s", r.Date))
	pdf.Ln(12)

	progress := r.Progress()
	overall := progress.Overall()
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Completed %d of %d items (%d%%)", overall.Done, overall.Total, overall.Percent()))
	pdf.Ln(10)

	section(pdf, "Goals", len(r.Goals))
	for _, g := range r.Goals {
		line(pdf, tr, 0, g.Status, g.Title)
		for _, ts := range g.TimeSlots {
			slot := fmt.Sprintf("%s - %s", models.FormatClock12(ts.StartTime), models.FormatClock12(ts.EndTime))
			line(pdf, tr, 1, ts.Status, slot)
		}
	}

	section(pdf, "Priorities", len(r.Priorities))
	for _, p := range r.Priorities {
		line(pdf, tr, 0, p.Status, p.Title)
	}

	section(pdf, "Overdue", len(r.OverdueTasks))
	for _, t := range r.OverdueTasks {
		title := t.Title
		if t.IsAuto() && t.OriginalDate != "" {
			title += fmt.Sprintf(" (from %s)", t.OriginalDate)
		}
		line(pdf, tr, 0, t.Status, title)
	}

	if strings.TrimSpace(r.Journal.Content) != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, fmt.Sprintf("Journal (%d words)", r.Journal.WordCount))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(r.Journal.Content), "", "", false)
	}
	return pdf
}

func section(pdf *fpdf.Fpdf, name string, n int) {
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, name)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if n == 0 {
		pdf.Cell(0, 8, "  - None.")
		pdf.Ln(8)
	}
}

func line(pdf *fpdf.Fpdf, tr func(string) string, level int, status models.Status, text string) {
	indent := strings.Repeat("    ", level)
	pdf.Cell(0, 8, fmt.Sprintf("%s  %s %s", indent, checkbox(status), tr(text)))
	pdf.Ln(6)
}

func checkbox(s models.Status) string {
	switch s {
	case models.StatusDone:
		return "[x]"
	case models.StatusNotDone:
		return "[-]"
	default:
		return "[ ]"
	}
}
