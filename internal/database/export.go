package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/DPT/internal/models"
)

// ExportVersion is stamped on every exported document.
const ExportVersion = "1.0.0"

var ErrPassphraseRequired = errors.New("document is encrypted; a passphrase is required")

// RecordExport is the single-day export document.
type RecordExport struct {
	Record     *models.DailyRecord `json:"record"`
	ExportDate time.Time           `json:"exportDate"`
	Version    string              `json:"version"`
}

// BackupExport holds every record.
type BackupExport struct {
	Records    []*models.DailyRecord `json:"records"`
	ExportDate time.Time             `json:"exportDate"`
	Version    string                `json:"version"`
}

type ExportOptions struct {
	EncryptOutput bool
	Passphrase    string
	// Now stamps exportDate; zero means the wall clock.
	Now time.Time
}

func (o ExportOptions) now() time.Time {
	if o.Now.IsZero() {
		return time.Now().UTC()
	}
	return o.Now
}

func (o ExportOptions) finish(doc interface{}) ([]byte, error) {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	if !o.EncryptOutput {
		return payload, nil
	}
	if o.Passphrase == "" {
		return nil, ErrPassphraseRequired
	}
	return encryptData(payload, o.Passphrase)
}

// EncodeRecord renders one record as an export document.
func EncodeRecord(record *models.DailyRecord, opts ExportOptions) ([]byte, error) {
	return opts.finish(RecordExport{Record: record, ExportDate: opts.now(), Version: ExportVersion})
}

// EncodeBackup renders records as a backup document.
func EncodeBackup(records []*models.DailyRecord, opts ExportOptions) ([]byte, error) {
	if records == nil {
		records = []*models.DailyRecord{}
	}
	return opts.finish(BackupExport{Records: records, ExportDate: opts.now(), Version: ExportVersion})
}

// ExportRecord exports the record for date. A day without a record exports
// as an empty record.
func (d *Database) ExportRecord(ctx context.Context, date string, opts ExportOptions) ([]byte, error) {
	r, err := d.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = models.NewRecord(date, opts.now())
	}
	return EncodeRecord(r, opts)
}

// ExportBackup exports every record.
func (d *Database) ExportBackup(ctx context.Context, opts ExportOptions) ([]byte, error) {
	records, err := d.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return EncodeBackup(records, opts)
}

// DecodeImport accepts a backup document, a single-record document, a bare
// array of records, or an encrypted envelope around any of them.
func DecodeImport(data []byte, passphrase string) ([]*models.DailyRecord, error) {
	var probe struct {
		Encrypted bool             `json:"encrypted"`
		Record    *json.RawMessage `json:"record"`
		Records   *json.RawMessage `json:"records"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		var bare []*models.DailyRecord
		if errArr := json.Unmarshal(data, &bare); errArr == nil {
			return normalizeImported(bare)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImport, err)
	}
	switch {
	case probe.Encrypted:
		if passphrase == "" {
			return nil, ErrPassphraseRequired
		}
		plain, err := decryptData(data, passphrase)
		if err != nil {
			return nil, err
		}
		return DecodeImport(plain, "")
	case probe.Records != nil:
		var doc BackupExport
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedImport, err)
		}
		return normalizeImported(doc.Records)
	case probe.Record != nil:
		var doc RecordExport
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedImport, err)
		}
		return normalizeImported([]*models.DailyRecord{doc.Record})
	}
	return nil, ErrUnsupportedImport
}

func normalizeImported(records []*models.DailyRecord) ([]*models.DailyRecord, error) {
	out := make([]*models.DailyRecord, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if err := models.ValidateDate(r.Date); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedImport, err)
		}
		r.ID = models.RecordID(r.Date)
		r.Normalize()
		out = append(out, r)
	}
	return out, nil
}

// Import decodes data and writes its records in one transaction, replacing
// records for the same dates. It returns the number of records written.
func (d *Database) Import(ctx context.Context, data []byte, passphrase string) (int, error) {
	records, err := DecodeImport(data, passphrase)
	if err != nil {
		return 0, err
	}
	if err := d.PutAll(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
