package httpx

import (
	"net/http"

	"github.com/jobdesk/jobdesk/internal/domain/model"
)

type premiumRequestsPageData struct {
	Title           string
	Active          string
	CSRFToken       string
	UserEmail       string
	Filters         PremiumRequestFilters
	Statuses        []model.RequestStatus
	PaymentStatuses []model.PaymentStatus
	Rows            []*model.PremiumRequestRow
	Pagination      Pagination
}

// PremiumRequests renders the filtered, paginated premium CV request listing.
// GET /admin/premium-requests?status=&payment=&page=.
func (h *UIHandlers) PremiumRequests(w http.ResponseWriter, r *http.Request) {
	filters := ParsePremiumRequestFilters(r)
	pager := PagerFromRequest(r, h.PageSize)

	page, err := h.Requests.List(r.Context(), filters.ListOptions(pager))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := premiumRequestsPageData{
		Title:     "Premium CV Requests",
		Active:    "premium",
		CSRFToken: GetCSRFToken(r),
		UserEmail: sessionEmail(r),
		Filters:   filters,
		Statuses: []model.RequestStatus{
			model.RequestStatusPending,
			model.RequestStatusInProgress,
			model.RequestStatusCompleted,
			model.RequestStatusCancelled,
		},
		PaymentStatuses: []model.PaymentStatus{model.PaymentStatusPaid, model.PaymentStatusPending},
		Rows:            page.Rows,
		Pagination:      pager.Paginate(page.Total, "/admin/premium-requests", r.URL.Query()),
	}
	if renderErr := h.T.Render(w, "premium_requests", data); renderErr != nil {
		h.renderError(w, r, renderErr)
	}
}
