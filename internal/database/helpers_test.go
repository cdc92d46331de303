package database

import "testing"

func TestNullableHelpers(t *testing.T) {
	if got := nullableString(""); got.Valid {
		t.Fatalf("expected nullableString(\"\") to be invalid, got valid")
	}
	if got := nullableString("note"); !got.Valid || got.String != "note" {
		t.Fatalf("expected nullableString(\"note\") to be valid, got %+v", got)
	}
}

func TestRecordQueryBuild(t *testing.T) {
	query, args := NewRecordQuery().WhereBetween("2024-01-01", "").Limit(5).Build()
	want := "SELECT id, date, payload FROM records WHERE date >= ? ORDER BY date ASC LIMIT 5"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if len(args) != 1 || args[0] != "2024-01-01" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestOpErrorFormatting(t *testing.T) {
	err := wrapErr(EntityRecord, "put", "record-2024-01-01", ErrDuplicateDate)
	if err.Error() != "put record record-2024-01-01: a record already exists for this date" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if wrapErr(EntityRecord, "put", "x", nil) != nil {
		t.Fatalf("wrapping nil should return nil")
	}
}
