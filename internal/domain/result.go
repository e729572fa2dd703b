package domain

import "time"

// Status is the terminal state of a case
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
)

func (s Status) String() string {
	if s == StatusPassed {
		return "pass"
	}
	return "fail"
}

// Result represents the outcome of running a single case.
// It is finalized once the case body and its defers have completed.
type Result struct {
	Status  Status
	Elapsed time.Duration
	Message string // failure message, empty for passed cases
}

// Passed reports whether the case succeeded
func (r Result) Passed() bool {
	return r.Status == StatusPassed
}

// Summary counts completed cases
type Summary struct {
	Passed int
	Total  int
}

// Record adds a finished case to the counters
func (s *Summary) Record(r Result) {
	s.Total++
	if r.Passed() {
		s.Passed++
	}
}

// Failed returns the number of failed cases
func (s Summary) Failed() int {
	return s.Total - s.Passed
}

// OK reports whether every case passed. An empty run is OK.
func (s Summary) OK() bool {
	return s.Passed == s.Total
}

// Report is everything an engine run produces
type Report struct {
	Summary
	Cases    []CaseRecord
	Started  time.Time
	Duration time.Duration
}

// Failures returns the records of failed cases in execution order
func (r *Report) Failures() []CaseRecord {
	var failed []CaseRecord
	for _, c := range r.Cases {
		if !c.Result.Passed() {
			failed = append(failed, c)
		}
	}
	return failed
}

// RunMeta contains metadata about a stored run
type RunMeta struct {
	TotalCases      int     `json:"total_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunRecord is the persisted form of a run
type RunRecord struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseFailure `json:"details"`
}

// NewRunRecord converts a report into its stored form
func NewRunRecord(r *Report) *RunRecord {
	record := &RunRecord{
		Meta: RunMeta{
			TotalCases:      r.Total,
			PassedCases:     r.Passed,
			FailedCases:     r.Failed(),
			Duration:        r.Duration.String(),
			DurationSeconds: r.Duration.Seconds(),
			Timestamp:       r.Started.Format(time.RFC3339),
		},
		Details: []CaseFailure{},
	}
	for _, c := range r.Failures() {
		record.Details = append(record.Details, CaseFailure{
			CaseName:        c.Name,
			GroupPath:       c.GroupPath(),
			Message:         c.Result.Message,
			DurationSeconds: c.Result.Elapsed.Seconds(),
		})
	}
	return record
}
