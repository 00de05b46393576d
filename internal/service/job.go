package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jobdesk/jobdesk/internal/core"
	"github.com/jobdesk/jobdesk/internal/data"
	"github.com/jobdesk/jobdesk/internal/domain/model"
	apperrors "github.com/jobdesk/jobdesk/internal/errors"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Jobs       core.JobRepository
	Categories core.JobCategoryRepository
}

// JobService orchestrates job posting listings and moderation.
type JobService struct {
	jobs       core.JobRepository
	categories core.JobCategoryRepository
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	return &JobService{jobs: opts.Jobs, categories: opts.Categories}
}

// JobListPage is one page of job rows plus the unwindowed total.
type JobListPage struct {
	Rows  []*model.JobRow
	Total int
}

// List returns a page of jobs and the total matching count. The page and count
// queries share the same filters and run concurrently.
func (s *JobService) List(ctx context.Context, opts *model.JobListOptions) (*JobListPage, error) {
	var page JobListPage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.jobs.List(gctx, opts)
		if err != nil {
			return fmt.Errorf("list jobs: %w", err)
		}
		page.Rows = rows
		return nil
	})
	g.Go(func() error {
		total, err := s.jobs.Count(gctx, opts)
		if err != nil {
			return fmt.Errorf("count jobs: %w", err)
		}
		page.Total = total
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}

// Categories returns all job categories for filter dropdowns.
func (s *JobService) Categories(ctx context.Context) ([]*model.JobCategory, error) {
	return s.categories.List(ctx)
}

// UpdateStatus applies a moderation status change to a job. Closing requires
// the job to be active; reactivating requires draft, closed, or expired.
func (s *JobService) UpdateStatus(ctx context.Context, action model.UpdateJobStatusAction) error {
	job, err := s.jobs.GetByID(ctx, action.JobID)
	if err != nil {
		if errors.Is(err, data.ErrJobNotFound) {
			return apperrors.NotFoundf("job %d not found", action.JobID)
		}
		return fmt.Errorf("get job: %w", err)
	}

	if !job.Status.AdminTransitionAllowed(action.Status) {
		return apperrors.Validationf("cannot change job status from %s to %s", job.Status, action.Status)
	}

	affected, err := s.jobs.UpdateStatus(ctx, action.JobID, action.Status)
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	if !affected {
		// The row disappeared between the read and the update.
		return apperrors.NotFoundf("job %d not found", action.JobID)
	}
	return nil
}
