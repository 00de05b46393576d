package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jobdesk/jobdesk/internal/domain/model"
)

// JobFilters holds the parsed query parameters of the jobs listing.
// Raw values are kept for echoing back into the filter form.
type JobFilters struct {
	Search     string
	Status     *model.JobStatus
	CategoryID *int64

	RawStatus   string
	RawCategory string
}

// ParseJobFilters reads search, status, and category query parameters.
// Unknown status values and non-numeric category IDs are dropped rather than
// rejected so a hand-edited URL still renders the listing.
func ParseJobFilters(r *http.Request) JobFilters {
	q := r.URL.Query()
	f := JobFilters{
		Search:      strings.TrimSpace(q.Get("search")),
		RawStatus:   q.Get("status"),
		RawCategory: q.Get("category"),
	}

	if status, ok := model.ParseJobStatus(f.RawStatus); ok {
		f.Status = &status
	}
	if id, err := strconv.ParseInt(strings.TrimSpace(f.RawCategory), 10, 64); err == nil && id > 0 {
		f.CategoryID = &id
	}
	return f
}

// ListOptions converts the filters into repository list options for one page.
func (f JobFilters) ListOptions(pager Pager) *model.JobListOptions {
	return &model.JobListOptions{
		Search:     f.Search,
		Status:     f.Status,
		CategoryID: f.CategoryID,
		Limit:      pager.PageSize,
		Offset:     pager.Offset(),
	}
}

// PremiumRequestFilters holds the parsed query parameters of the premium
// request listing.
type PremiumRequestFilters struct {
	Status        *model.RequestStatus
	PaymentStatus *model.PaymentStatus

	RawStatus        string
	RawPaymentStatus string
}

// ParsePremiumRequestFilters reads status and payment query parameters,
// dropping values outside the known enums.
func ParsePremiumRequestFilters(r *http.Request) PremiumRequestFilters {
	q := r.URL.Query()
	f := PremiumRequestFilters{
		RawStatus:        q.Get("status"),
		RawPaymentStatus: q.Get("payment"),
	}

	if status, ok := model.ParseRequestStatus(f.RawStatus); ok {
		f.Status = &status
	}
	if payment, ok := model.ParsePaymentStatus(f.RawPaymentStatus); ok {
		f.PaymentStatus = &payment
	}
	return f
}

// ListOptions converts the filters into repository list options for one page.
func (f PremiumRequestFilters) ListOptions(pager Pager) *model.PremiumRequestListOptions {
	return &model.PremiumRequestListOptions{
		Status:        f.Status,
		PaymentStatus: f.PaymentStatus,
		Limit:         pager.PageSize,
		Offset:        pager.Offset(),
	}
}
