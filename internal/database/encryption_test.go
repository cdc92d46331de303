package database

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestEncryptedExportRoundTrip(t *testing.T) {
	opts := ExportOptions{EncryptOutput: true, Passphrase: "Pass1234", Now: exportStamp}
	payload, err := EncodeRecord(goldenRecord(), opts)
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}
	if strings.Contains(string(payload), "Write report") {
		t.Fatalf("encrypted payload leaks plaintext")
	}
	var envelope encryptedExport
	if err := json.Unmarshal(payload, &envelope); err != nil {
		t.Fatalf("envelope is not JSON: %v", err)
	}
	if !envelope.Encrypted || envelope.Salt == "" || envelope.Nonce == "" {
		t.Fatalf("incomplete envelope %+v", envelope)
	}

	if _, err := DecodeImport(payload, ""); !errors.Is(err, ErrPassphraseRequired) {
		t.Fatalf("expected ErrPassphraseRequired, got %v", err)
	}
	if _, err := DecodeImport(payload, "wrong1234"); !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("expected ErrWrongPassphrase, got %v", err)
	}
	records, err := DecodeImport(payload, "Pass1234")
	if err != nil {
		t.Fatalf("DecodeImport failed: %v", err)
	}
	if len(records) != 1 || records[0].Goals[0].Title != "Write report" {
		t.Fatalf("unexpected decrypted records %+v", records)
	}
}

func TestEncryptWithoutPassphrase(t *testing.T) {
	_, err := EncodeBackup(nil, ExportOptions{EncryptOutput: true})
	if !errors.Is(err, ErrPassphraseRequired) {
		t.Fatalf("expected ErrPassphraseRequired, got %v", err)
	}
}
