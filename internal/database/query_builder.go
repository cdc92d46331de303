package database

import (
	"fmt"
	"strings"
)

const recordColumns = "id, date, payload"

type RecordQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewRecordQuery() *RecordQuery {
	return &RecordQuery{columns: recordColumns, orderBy: "date ASC"}
}

func (q *RecordQuery) Where(filter string, args ...interface{}) *RecordQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *RecordQuery) WhereDate(date string) *RecordQuery {
	return q.Where("date = ?", date)
}

func (q *RecordQuery) WhereID(id string) *RecordQuery {
	return q.Where("id = ?", id)
}

// WhereBetween keeps dates in [start, end]; an empty bound is open.
func (q *RecordQuery) WhereBetween(start, end string) *RecordQuery {
	if start != "" {
		q.Where("date >= ?", start)
	}
	if end != "" {
		q.Where("date <= ?", end)
	}
	return q
}

func (q *RecordQuery) OrderBy(orderBy string) *RecordQuery {
	q.orderBy = orderBy
	return q
}

func (q *RecordQuery) Limit(limit int) *RecordQuery {
	q.limit = limit
	return q
}

func (q *RecordQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM records", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
