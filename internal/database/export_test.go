package database

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/testutil"
)

var exportStamp = time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

func goldenRecord() *models.DailyRecord {
	return testutil.NewRecord("2024-01-01").
		WithGoal("g1", "Write report", models.StatusNeutral).
		WithTimeSlot("g1", "s1", "09:00", "10:00", models.StatusDone).
		WithPriority("p1", "Call bank", models.StatusDone).
		WithAutoTask("o1", "Pay rent", models.StatusNotDone,
			models.ReferenceKey{Date: "2023-12-31", Type: models.ItemPriority, ID: "p0"}).
		WithJournal("first day").
		Build()
}

func TestEncodeRecordGolden(t *testing.T) {
	payload, err := EncodeRecord(goldenRecord(), ExportOptions{Now: exportStamp})
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "record_export", append(payload, '\n'))
}

func TestExportBackup(t *testing.T) {
	db := NewTestDataBuilder(t).
		WithRecord(goldenRecord()).
		WithDays("2024-01-02").
		Build()
	ctx := context.Background()

	payload, err := db.ExportBackup(ctx, ExportOptions{Now: exportStamp})
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}
	var export BackupExport
	if err := json.Unmarshal(payload, &export); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if export.Version != ExportVersion {
		t.Fatalf("expected version %s, got %s", ExportVersion, export.Version)
	}
	if len(export.Records) != 2 {
		t.Fatalf("expected 2 records in export, got %d", len(export.Records))
	}
	if !export.ExportDate.Equal(exportStamp) {
		t.Fatalf("unexpected export date %v", export.ExportDate)
	}
}

func TestExportRecordForEmptyDay(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	payload, err := db.ExportRecord(ctx, "2024-03-01", ExportOptions{Now: exportStamp})
	if err != nil {
		t.Fatalf("ExportRecord failed: %v", err)
	}
	var doc RecordExport
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if doc.Record == nil || doc.Record.ID != "record-2024-03-01" || !doc.Record.IsEmpty() {
		t.Fatalf("expected empty record, got %+v", doc.Record)
	}
}

func TestImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := NewTestDataBuilder(t).
		WithRecord(goldenRecord()).
		WithDays("2024-01-02", "2024-01-03").
		Build()
	payload, err := src.ExportBackup(ctx, ExportOptions{})
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}

	dst := setupTestDB(t, ctx)
	n, err := dst.Import(ctx, payload, "")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 imported records, got %d", n)
	}
	got, err := dst.GetByDate(ctx, "2024-01-01")
	if err != nil || got == nil {
		t.Fatalf("GetByDate after import failed: %v", err)
	}
	if len(got.OverdueTasks) != 1 || !got.OverdueTasks[0].IsAuto() || got.OverdueTasks[0].OriginalID != "p0" {
		t.Fatalf("overdue provenance lost in import: %+v", got.OverdueTasks)
	}
}

func TestDecodeImportShapes(t *testing.T) {
	single, err := EncodeRecord(goldenRecord(), ExportOptions{Now: exportStamp})
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}
	records, err := DecodeImport(single, "")
	if err != nil || len(records) != 1 || records[0].Date != "2024-01-01" {
		t.Fatalf("single record import = %v, %v", records, err)
	}

	bare := []byte(`[{"date":"2024-05-01","goals":null,"overdue_tasks":[{"id":"x","title":"t","status":"done"}]}]`)
	records, err = DecodeImport(bare, "")
	if err != nil || len(records) != 1 {
		t.Fatalf("bare array import = %v, %v", records, err)
	}
	if records[0].ID != "record-2024-05-01" || records[0].Goals == nil || records[0].OverdueTasks[0].Source != models.SourceManual {
		t.Fatalf("bare record not normalized: %+v", records[0])
	}

	if _, err := DecodeImport([]byte(`{"foo":1}`), ""); !errors.Is(err, ErrUnsupportedImport) {
		t.Fatalf("expected ErrUnsupportedImport, got %v", err)
	}
	if _, err := DecodeImport([]byte(`not json`), ""); !errors.Is(err, ErrUnsupportedImport) {
		t.Fatalf("expected ErrUnsupportedImport for garbage, got %v", err)
	}
}
