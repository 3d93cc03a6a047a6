package models

import "time"

// ModuleStatus is the completion state of one curriculum module.
type ModuleStatus string

const (
	StatusNotStarted ModuleStatus = "Not Started"
	StatusInProgress ModuleStatus = "In Progress"
	StatusCompleted  ModuleStatus = "Completed"
)

// Valid reports whether s is one of the three known statuses.
func (s ModuleStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ProgressRecord tracks one member's standing in one curriculum module.
// StartDate and CompletedDate are nil until the corresponding transition
// happens; a backward transition deliberately leaves them in place.
type ProgressRecord struct {
	ID                 string       `json:"id"`
	MemberID           string       `json:"member_id"`
	Year               int          `json:"year"`
	Module             string       `json:"module"`
	Status             ModuleStatus `json:"status"`
	StartDate          *time.Time   `json:"start_date,omitempty"`
	CompletedDate      *time.Time   `json:"completed_date,omitempty"`
	Notes              string       `json:"notes"`
	InstructorApproval string       `json:"instructor_approval"`
}
