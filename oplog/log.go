package oplog

import (
	"strings"
)

// Log is an append only sequence of records. There is no way to remove or rewrite a record once appended.
type Log struct {
	records []Record
	currLsn LSN
}

func New() *Log {
	return &Log{
		records: make([]Record, 0, 64),
		currLsn: ZeroLSN,
	}
}

// Append stamps a new record with the next lsn and returns that lsn.
func (l *Log) Append(command string, result Result, details string) LSN {
	l.currLsn++
	l.records = append(l.records, Record{
		Lsn:     l.currLsn,
		Command: command,
		Result:  result,
		Details: details,
	})

	return l.currLsn
}

func (l *Log) Success(command, details string) LSN {
	return l.Append(command, ResultSuccess, details)
}

func (l *Log) Error(command, details string) LSN {
	return l.Append(command, ResultError, details)
}

// Records returns a copy of all records in append order.
func (l *Log) Records() []Record {
	res := make([]Record, len(l.records))
	copy(res, l.records)
	return res
}

func (l *Log) Len() int {
	return len(l.records)
}

// LastLSN returns ZeroLSN if nothing has been appended yet.
func (l *Log) LastLSN() LSN {
	return l.currLsn
}

// String renders every record, separated by a blank line.
func (l *Log) String() string {
	parts := make([]string, 0, len(l.records))
	for _, r := range l.records {
		parts = append(parts, r.String())
	}

	return strings.Join(parts, "\n")
}
