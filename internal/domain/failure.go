package domain

// CaseFailure represents a failed case in a stored run
type CaseFailure struct {
	CaseName        string  `json:"case_name"`
	GroupPath       string  `json:"group_path"`
	Message         string  `json:"message"`
	DurationSeconds float64 `json:"duration_seconds"`
	Resolved        bool    `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
