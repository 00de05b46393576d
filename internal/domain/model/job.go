//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
)

// JobStatus is the lifecycle status of a job posting.
type JobStatus string

const (
	JobStatusDraft   JobStatus = "draft"
	JobStatusActive  JobStatus = "active"
	JobStatusClosed  JobStatus = "closed"
	JobStatusExpired JobStatus = "expired"
)

// Valid reports whether the job status is supported.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusDraft, JobStatusActive, JobStatusClosed, JobStatusExpired:
		return true
	default:
		return false
	}
}

// ParseJobStatus normalizes a status string and reports whether it is supported.
func ParseJobStatus(value string) (JobStatus, bool) {
	status := JobStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// AdminTransitionAllowed reports whether an admin may move a posting from
// its current status to target. The back-office exposes exactly two moves:
// closing an active posting, and (re)activating a draft, closed, or expired one.
func (s JobStatus) AdminTransitionAllowed(target JobStatus) bool {
	switch target {
	case JobStatusClosed:
		return s == JobStatusActive
	case JobStatusActive:
		return s == JobStatusDraft || s == JobStatusClosed || s == JobStatusExpired
	default:
		return false
	}
}

// Job represents a job posting row as stored.
type Job struct {
	ID         int64     `json:"id"          db:"id"`
	Title      string    `json:"title"       db:"title"`
	EmployerID int64     `json:"employer_id" db:"employer_id"`
	CategoryID int64     `json:"category_id" db:"category_id"`
	City       string    `json:"city"        db:"city"`
	State      string    `json:"state"       db:"state"`
	JobType    string    `json:"job_type"    db:"job_type"`
	Status     JobStatus `json:"status"      db:"status"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"  db:"updated_at"`
}

// JobRow is a job posting joined with its display aggregates: the employer's
// company name, the category name, and the number of applications received.
type JobRow struct {
	ID               int64     `json:"id"                db:"id"`
	Title            string    `json:"title"             db:"title"`
	CompanyName      string    `json:"company_name"      db:"company_name"`
	CategoryName     string    `json:"category_name"     db:"category_name"`
	City             string    `json:"city"              db:"city"`
	State            string    `json:"state"             db:"state"`
	JobType          string    `json:"job_type"          db:"job_type"`
	Status           JobStatus `json:"status"            db:"status"`
	ApplicationCount int       `json:"application_count" db:"application_count"`
	CreatedAt        time.Time `json:"created_at"        db:"created_at"`
}

// JobListOptions controls filtering and paging for the jobs listing.
// Notes:
//   - Search matches title OR employer company name via ILIKE substring.
//   - Status and CategoryID match exactly.
//   - Absent (nil/empty) filters contribute no predicate.
type JobListOptions struct {
	Search     string
	Status     *JobStatus
	CategoryID *int64
	Limit      int
	Offset     int
}

// JobCategory is read-only reference data used for filtering.
type JobCategory struct {
	ID   int64  `json:"id"   db:"id"`
	Name string `json:"name" db:"name"`
}
