package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/testutil"
)

func sampleRecord() *models.DailyRecord {
	return testutil.NewRecord("2024-01-02").
		WithGoal("g1", "Write report", models.StatusDone).
		WithTimeSlot("g1", "t1", "09:00", "10:30", models.StatusDone).
		WithPriority("p1", "Café meeting", models.StatusNotDone).
		WithAutoTask("a1", "Old goal", models.StatusNeutral, models.ReferenceKey{Date: "2024-01-01", Type: models.ItemGoal, ID: "g0"}).
		WithJournal("A productive day.").
		Build()
}

func TestWriteProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleRecord()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestGenerateWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	path, err := Generate(sampleRecord(), dir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if filepath.Base(path) != "report_2024-01-02.pdf" {
		t.Fatalf("unexpected file name %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat report: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("report is empty")
	}
}

func TestEmptyRecordStillRenders(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, models.NewRecord("2024-01-05", testutil.Epoch)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
}

func TestCheckbox(t *testing.T) {
	cases := map[models.Status]string{
		models.StatusDone:    "[x]",
		models.StatusNotDone: "[-]",
		models.StatusNeutral: "[ ]",
	}
	for status, want := range cases {
		if got := checkbox(status); got != want {
			t.Fatalf("checkbox(%s) = %q, want %q", status, got, want)
		}
	}
}
