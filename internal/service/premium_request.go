package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jobdesk/jobdesk/internal/core"
	"github.com/jobdesk/jobdesk/internal/domain/model"
	apperrors "github.com/jobdesk/jobdesk/internal/errors"
)

// PremiumRequestServiceOptions groups dependencies for PremiumRequestService.
type PremiumRequestServiceOptions struct {
	Requests core.PremiumRequestRepository
}

// PremiumRequestService orchestrates premium CV request listings and the
// admin actions that move requests through their lifecycle.
type PremiumRequestService struct {
	requests core.PremiumRequestRepository
}

// NewPremiumRequestService constructs a new PremiumRequestService.
func NewPremiumRequestService(opts PremiumRequestServiceOptions) *PremiumRequestService {
	return &PremiumRequestService{requests: opts.Requests}
}

// PremiumRequestListPage is one page of request rows plus the unwindowed total.
type PremiumRequestListPage struct {
	Rows  []*model.PremiumRequestRow
	Total int
}

// List returns a page of premium requests and the total matching count. The
// page and count queries share the same filters and run concurrently.
func (s *PremiumRequestService) List(
	ctx context.Context,
	opts *model.PremiumRequestListOptions,
) (*PremiumRequestListPage, error) {
	var page PremiumRequestListPage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.requests.List(gctx, opts)
		if err != nil {
			return fmt.Errorf("list premium requests: %w", err)
		}
		page.Rows = rows
		return nil
	})
	g.Go(func() error {
		total, err := s.requests.Count(gctx, opts)
		if err != nil {
			return fmt.Errorf("count premium requests: %w", err)
		}
		page.Total = total
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}

// Apply executes a premium request admin action. Each variant maps to a single
// UPDATE; the repository reports whether a row was touched so a stale ID
// surfaces as not found instead of silent success.
func (s *PremiumRequestService) Apply(ctx context.Context, action model.AdminAction) error {
	var (
		affected  bool
		err       error
		requestID int64
	)

	switch a := action.(type) {
	case model.UpdateRequestStatusAction:
		requestID = a.RequestID
		affected, err = s.requests.UpdateStatusNotes(ctx, a.RequestID, a.Status, a.Notes)
	case model.ScheduleConsultationAction:
		requestID = a.RequestID
		affected, err = s.requests.ScheduleConsultation(ctx, a.RequestID, a.At)
	case model.SetDeliveryAction:
		requestID = a.RequestID
		affected, err = s.requests.SetDelivery(ctx, a.RequestID, a.Date)
	case model.MarkCompletedAction:
		requestID = a.RequestID
		affected, err = s.requests.MarkCompleted(ctx, a.RequestID)
	default:
		return apperrors.Validationf("unsupported premium request action %T", action)
	}

	if err != nil {
		return fmt.Errorf("apply premium request action: %w", err)
	}
	if !affected {
		return apperrors.NotFoundf("premium request %d not found", requestID)
	}
	return nil
}
