package model

import "time"

// SkipBreakdown tells invalid rows apart by the reason they were dropped.
// The source format conflates these into a single ignored count; keeping the
// split makes a bad upload diagnosable without re-reading the file.
type SkipBreakdown struct {
	InvalidDate         int `json:"invalid_date"`
	InvalidAmount       int `json:"invalid_amount"`
	MissingRegistration int `json:"missing_registration"`
	UnknownOperator     int `json:"unknown_operator"`
}

// IngestReport is the result of one ingestion run. Every field is always
// populated; IgnoredRecords == TotalProcessed - ValidRecords.
type IngestReport struct {
	Success          bool          `json:"success"`
	TotalProcessed   int           `json:"total_processed"`
	ValidRecords     int           `json:"valid_records"`
	IgnoredRecords   int           `json:"ignored_records"`
	UnknownOperators []string      `json:"unknown_operators"`
	Skipped          SkipBreakdown `json:"skipped"`
	ProcessingDate   time.Time     `json:"processing_date"`
	IsReplacement    bool          `json:"is_replacement"`
}
