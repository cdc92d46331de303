package database

import (
	"context"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/util"
)

// Hit is one item matched by Search.
type Hit struct {
	Date   string          `json:"date"`
	Type   models.ItemType `json:"type,omitempty"`
	ID     string          `json:"id,omitempty"`
	Title  string          `json:"title"`
	Status models.Status   `json:"status,omitempty"`
}

// journalHit marks a Hit that matched the journal rather than an item.
const journalHit = "journal"

// IsJournal reports whether the hit is the day's journal.
func (h Hit) IsJournal() bool { return h.ID == journalHit }

// Search matches query against item titles and journals, ignoring case and
// diacritics. The query accepts status:<status> and type:<type> filters;
// type:journal limits the search to journals. Hits are ordered by date.
func (d *Database) Search(ctx context.Context, query string) ([]Hit, error) {
	records, err := d.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return SearchRecords(records, util.ParseSearchQuery(query)), nil
}

// SearchRecords applies a parsed query to records already in memory.
func SearchRecords(records []*models.DailyRecord, q util.SearchQuery) []Hit {
	wantType := func(t string) bool { return len(q.Type) == 0 || contains(q.Type, t) }
	wantStatus := func(s models.Status) bool { return len(q.Status) == 0 || contains(q.Status, string(s)) }

	hits := []Hit{}
	add := func(date string, typ models.ItemType, id, title string, status models.Status) {
		if wantType(string(typ)) && wantStatus(status) && util.MatchesAll(title, q.Text) {
			hits = append(hits, Hit{Date: date, Type: typ, ID: id, Title: title, Status: status})
		}
	}
	for _, r := range records {
		for _, g := range r.Goals {
			add(r.Date, models.ItemGoal, g.ID, g.Title, g.Status)
		}
		for _, p := range r.Priorities {
			add(r.Date, models.ItemPriority, p.ID, p.Title, p.Status)
		}
		for _, t := range r.OverdueTasks {
			add(r.Date, models.ItemOverdue, t.ID, t.Title, t.Status)
		}
		if len(q.Text) > 0 && len(q.Status) == 0 && wantType(journalHit) &&
			r.Journal.Content != "" && util.MatchesAll(r.Journal.Content, q.Text) {
			hits = append(hits, Hit{Date: r.Date, ID: journalHit, Title: excerpt(r.Journal.Content, 60)})
		}
	}
	return hits
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
