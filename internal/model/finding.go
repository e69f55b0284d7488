package model

import "time"

// Finding is the outcome of decoding one payload with one contract.
// Entity, Field, Key, Path, Token and Reason are filled only when Err is a contract violation.
// Key is the wire key of Field as it appears in the payload.
type Finding struct {
	Endpoint  string
	Version   int
	Source    string
	Status    string
	Entity    string
	Field     string
	Key       string
	Path      string
	Token     string
	Reason    string
	Err       error
	CheckedAt time.Time
}

func (f Finding) OK() bool {
	return f.Err == nil
}

// DriftSummary counts findings of one check run.
type DriftSummary struct {
	Total    int
	Failed   int
	Findings []Finding
}
