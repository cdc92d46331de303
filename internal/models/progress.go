package models

// Tally counts items and how many are done.
type Tally struct {
	Total int `json:"total"`
	Done  int `json:"done"`
}

func (t *Tally) add(s Status) {
	t.Total++
	if s == StatusDone {
		t.Done++
	}
}

// Percent returns the done share rounded down, or 0 for an empty tally.
func (t Tally) Percent() int {
	if t.Total == 0 {
		return 0
	}
	return t.Done * 100 / t.Total
}

// Progress summarizes one record for calendars and reports.
type Progress struct {
	Date       string `json:"date"`
	Goals      Tally  `json:"goals"`
	Priorities Tally  `json:"priorities"`
	Overdue    Tally  `json:"overdue"`
	TimeSlots  Tally  `json:"timeSlots"`
	HasJournal bool   `json:"hasJournal"`
	WordCount  int    `json:"wordCount"`
}

// Overall combines goals, priorities and overdue tasks.
func (p Progress) Overall() Tally {
	return Tally{
		Total: p.Goals.Total + p.Priorities.Total + p.Overdue.Total,
		Done:  p.Goals.Done + p.Priorities.Done + p.Overdue.Done,
	}
}

// Progress tallies the record.
func (r *DailyRecord) Progress() Progress {
	p := Progress{Date: r.Date, WordCount: r.Journal.WordCount}
	for _, g := range r.Goals {
		p.Goals.add(g.Status)
		for _, ts := range g.TimeSlots {
			p.TimeSlots.add(ts.Status)
		}
	}
	for _, it := range r.Priorities {
		p.Priorities.add(it.Status)
	}
	for _, t := range r.OverdueTasks {
		p.Overdue.add(t.Status)
	}
	p.HasJournal = r.Journal.WordCount > 0
	return p
}
