package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jobdesk/jobdesk/internal/data/database"
	"github.com/jobdesk/jobdesk/internal/data/pgxutil"
	"github.com/jobdesk/jobdesk/internal/domain/model"
	apperrors "github.com/jobdesk/jobdesk/internal/errors"
)

// ErrRequestNotFound is returned when a premium CV request is not found.
var ErrRequestNotFound = errors.New("premium request not found")

// PremiumRequestRepo provides database operations for premium CV requests.
// Requests are created by the client-facing flow; this repo only lists and
// mutates lifecycle fields, and never deletes.
type PremiumRequestRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPremiumRequestRepo creates a new PremiumRequestRepo with real time provider.
func NewPremiumRequestRepo(db *sql.DB) *PremiumRequestRepo {
	return &PremiumRequestRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPremiumRequestRepoWithTimeProvider creates a PremiumRequestRepo with a custom time provider.
func NewPremiumRequestRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PremiumRequestRepo {
	return &PremiumRequestRepo{DB: db, timeProvider: tp}
}

const premiumRequestListFrom = `premium_cv_requests r
	JOIN users u ON u.id = r.user_id`

func premiumRequestRowColumns() []string {
	return []string{
		"r.id",
		"r.user_id",
		"r.plan_type",
		"r.amount",
		"r.status",
		"r.payment_status",
		"r.consultation_scheduled",
		"r.delivery_date",
		"r.admin_notes",
		"r.created_at",
		"r.updated_at",
		"u.name AS user_name",
		"u.email AS user_email",
	}
}

func buildPremiumRequestListQuery(opts *model.PremiumRequestListOptions) *database.ListQuery {
	q := database.NewListQuery(premiumRequestListFrom, premiumRequestRowColumns()...)
	if opts.Status != nil {
		q.WhereEqual("r.status", *opts.Status)
	}
	if opts.PaymentStatus != nil {
		q.WhereEqual("r.payment_status", *opts.PaymentStatus)
	}
	q.OrderBy("r.created_at DESC, r.id DESC")
	return q
}

// List retrieves one page of premium requests matching the given options.
func (r *PremiumRequestRepo) List(
	ctx context.Context,
	opts *model.PremiumRequestListOptions,
) ([]*model.PremiumRequestRow, error) {
	if opts == nil {
		opts = &model.PremiumRequestListOptions{}
	}

	q := buildPremiumRequestListQuery(opts)
	limit, offset := normalizeWindow(opts.Limit, opts.Offset)
	if err := q.Window(limit, offset); err != nil {
		return nil, fmt.Errorf("list premium requests: %w", err)
	}
	query, args := q.PageSQL()

	var requests []*model.PremiumRequestRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(pgxConn *pgx.Conn) error {
		rows, err := pgxConn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		requests, err = pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.PremiumRequestRow])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list premium requests: %w", apperrors.MapDBError(err))
	}

	return requests, nil
}

// Count returns the total number of premium requests matching the given
// options, using the same predicates as List.
func (r *PremiumRequestRepo) Count(
	ctx context.Context,
	opts *model.PremiumRequestListOptions,
) (int, error) {
	if opts == nil {
		opts = &model.PremiumRequestListOptions{}
	}

	query, args := buildPremiumRequestListQuery(opts).CountSQL()

	var total int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count premium requests: %w", apperrors.MapDBError(err))
	}
	return total, nil
}

// UpdateStatusNotes overwrites a request's status and admin notes. Any
// status may replace any other; the back-office deliberately enforces no
// transition adjacency here.
func (r *PremiumRequestRepo) UpdateStatusNotes(
	ctx context.Context,
	id int64,
	status model.RequestStatus,
	notes string,
) (bool, error) {
	return r.exec(ctx, "update premium request status",
		`UPDATE premium_cv_requests SET status = $1, admin_notes = $2, updated_at = $3 WHERE id = $4`,
		status, notes, r.timeProvider.Now().UTC(), id,
	)
}

// ScheduleConsultation records a consultation time and forces the request
// into in_progress.
func (r *PremiumRequestRepo) ScheduleConsultation(ctx context.Context, id int64, at time.Time) (bool, error) {
	return r.exec(ctx, "schedule consultation",
		`UPDATE premium_cv_requests
		 SET consultation_scheduled = $1, status = $2, updated_at = $3 WHERE id = $4`,
		at.UTC(), model.RequestStatusInProgress, r.timeProvider.Now().UTC(), id,
	)
}

// SetDelivery records a delivery date; status is untouched.
func (r *PremiumRequestRepo) SetDelivery(ctx context.Context, id int64, date time.Time) (bool, error) {
	return r.exec(ctx, "set delivery date",
		`UPDATE premium_cv_requests SET delivery_date = $1, updated_at = $2 WHERE id = $3`,
		date.UTC(), r.timeProvider.Now().UTC(), id,
	)
}

// MarkCompleted completes a request and stamps delivery_date to the call
// time, regardless of prior status.
func (r *PremiumRequestRepo) MarkCompleted(ctx context.Context, id int64) (bool, error) {
	now := r.timeProvider.Now().UTC()
	return r.exec(ctx, "mark completed",
		`UPDATE premium_cv_requests
		 SET status = $1, delivery_date = $2, updated_at = $3 WHERE id = $4`,
		model.RequestStatusCompleted, now, now, id,
	)
}

// exec runs a single-row update and reports whether a row was affected.
func (r *PremiumRequestRepo) exec(ctx context.Context, op, query string, args ...any) (bool, error) {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, apperrors.MapDBError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: rows affected: %w", op, err)
	}
	return affected > 0, nil
}
