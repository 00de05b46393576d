package core

import (
	"context"
	"time"

	"github.com/jobdesk/jobdesk/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// Service implementations depend on these interfaces, not on the pgx-backed
// repositories in internal/data.

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	// List returns a page of job rows matching the filter options.
	List(ctx context.Context, opts *model.JobListOptions) ([]*model.JobRow, error)
	// Count returns the total number of jobs matching the same filters,
	// ignoring Limit and Offset.
	Count(ctx context.Context, opts *model.JobListOptions) (int, error)
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	// UpdateStatus sets the job status and stamps updated_at. It reports
	// whether a row was actually updated.
	UpdateStatus(ctx context.Context, id int64, status model.JobStatus) (bool, error)
}

// JobCategoryRepository lists the categories used to populate list filters.
type JobCategoryRepository interface {
	List(ctx context.Context) ([]*model.JobCategory, error)
}

// PremiumRequestRepository defines the interface for premium CV request data operations.
type PremiumRequestRepository interface {
	List(ctx context.Context, opts *model.PremiumRequestListOptions) ([]*model.PremiumRequestRow, error)
	Count(ctx context.Context, opts *model.PremiumRequestListOptions) (int, error)
	// UpdateStatusNotes overwrites status and admin notes.
	UpdateStatusNotes(ctx context.Context, id int64, status model.RequestStatus, notes string) (bool, error)
	// ScheduleConsultation sets the consultation time and moves the request to in_progress.
	ScheduleConsultation(ctx context.Context, id int64, at time.Time) (bool, error)
	// SetDelivery records the promised delivery date without touching status.
	SetDelivery(ctx context.Context, id int64, date time.Time) (bool, error)
	// MarkCompleted sets status to completed and delivery_date to now.
	MarkCompleted(ctx context.Context, id int64) (bool, error)
}
