package oplog

import (
	"fmt"
)

type Result uint8

const (
	ResultInvalid Result = iota
	ResultSuccess
	ResultError
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "Success"
	case ResultError:
		return "Error"
	default:
		return "Invalid"
	}
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// LSN is the sequence number of a record in the log. First appended record gets 1.
type LSN uint64

const ZeroLSN LSN = 0

// Record is the outcome of one invoked operation. Records are never modified after they are appended.
type Record struct {
	Lsn     LSN    `json:"lsn"`
	Command string `json:"command"`
	Result  Result `json:"result"`
	Details string `json:"details"`
}

func (r Record) String() string {
	return fmt.Sprintf("Command: %s\nResult: %s\nDetails: %s\n", r.Command, r.Result, r.Details)
}
