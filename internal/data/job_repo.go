package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jobdesk/jobdesk/internal/data/database"
	"github.com/jobdesk/jobdesk/internal/data/pgxutil"
	"github.com/jobdesk/jobdesk/internal/domain/model"
	apperrors "github.com/jobdesk/jobdesk/internal/errors"
)

// ErrJobNotFound is returned when a job posting is not found.
var ErrJobNotFound = errors.New("job not found")

// JobRepo provides database operations for job postings.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewJobRepo creates a new JobRepo with real time provider.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewJobRepoWithTimeProvider creates a new JobRepo with a custom time provider (useful for tests).
func NewJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobRepo {
	return &JobRepo{DB: db, timeProvider: tp}
}

// jobListFrom joins postings with their employer and category so the list
// view needs no follow-up queries.
const jobListFrom = `jobs j
	JOIN employer_profiles e ON e.id = j.employer_id
	JOIN job_categories c ON c.id = j.category_id`

// jobRowColumns match the db tags on model.JobRow.
func jobRowColumns() []string {
	return []string{
		"j.id",
		"j.title",
		"e.company_name",
		"c.name AS category_name",
		"j.city",
		"j.state",
		"j.job_type",
		"j.status",
		"(SELECT COUNT(*) FROM job_applications a WHERE a.job_id = j.id) AS application_count",
		"j.created_at",
	}
}

// buildJobListQuery accumulates the active filters once; both Count and List
// render from the query it returns.
func buildJobListQuery(opts *model.JobListOptions) *database.ListQuery {
	q := database.NewListQuery(jobListFrom, jobRowColumns()...)
	q.WhereSearch(opts.Search, "j.title", "e.company_name")
	if opts.Status != nil {
		q.WhereEqual("j.status", *opts.Status)
	}
	if opts.CategoryID != nil {
		q.WhereEqual("j.category_id", *opts.CategoryID)
	}
	q.OrderBy("j.created_at DESC, j.id DESC")
	return q
}

// normalizeWindow clamps limit/offset to sane bounds.
func normalizeWindow(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// List retrieves one page of job postings matching the given options.
func (r *JobRepo) List(ctx context.Context, opts *model.JobListOptions) ([]*model.JobRow, error) {
	if opts == nil {
		opts = &model.JobListOptions{}
	}

	q := buildJobListQuery(opts)
	limit, offset := normalizeWindow(opts.Limit, opts.Offset)
	if err := q.Window(limit, offset); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	query, args := q.PageSQL()

	var jobs []*model.JobRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(pgxConn *pgx.Conn) error {
		rows, err := pgxConn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		jobs, err = pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.JobRow])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", apperrors.MapDBError(err))
	}

	return jobs, nil
}

// Count returns the total number of job postings matching the given options,
// using the same predicates as List.
func (r *JobRepo) Count(ctx context.Context, opts *model.JobListOptions) (int, error) {
	if opts == nil {
		opts = &model.JobListOptions{}
	}

	query, args := buildJobListQuery(opts).CountSQL()

	var total int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count jobs: %w", apperrors.MapDBError(err))
	}
	return total, nil
}

// GetByID retrieves a job posting by ID.
func (r *JobRepo) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	const query = `
		SELECT id, title, employer_id, category_id, city, state, job_type, status, created_at, updated_at
		FROM jobs WHERE id = $1`

	var job model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(pgxConn *pgx.Conn) error {
		rows, err := pgxConn.Query(ctx, query, id)
		if err != nil {
			return err
		}
		defer rows.Close()

		job, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job by id: %w", apperrors.MapDBError(err))
	}

	return &job, nil
}

// UpdateStatus moves a posting to the given status and stamps updated_at.
// It reports whether a row was actually updated.
func (r *JobRepo) UpdateStatus(ctx context.Context, id int64, status model.JobStatus) (bool, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3`,
		status, r.timeProvider.Now().UTC(), id,
	)
	if err != nil {
		return false, fmt.Errorf("update job status: %w", apperrors.MapDBError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update job status: rows affected: %w", err)
	}
	return affected > 0, nil
}
