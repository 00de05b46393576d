package httpx

import (
	"log/slog"
	"net/http"

	"github.com/jobdesk/jobdesk/internal/domain/model"
	"github.com/jobdesk/jobdesk/internal/service"
)

// UIHandlers serves the server-rendered admin pages.
type UIHandlers struct {
	T        *TemplateRenderer
	Jobs     *service.JobService
	Requests *service.PremiumRequestService
	PageSize int
	Logger   *slog.Logger
}

func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// renderError logs the failure and sends a plain 500; the data is already gone.
func (h *UIHandlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().ErrorContext(r.Context(), "page render failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

type jobsPageData struct {
	Title      string
	Active     string
	CSRFToken  string
	UserEmail  string
	Filters    JobFilters
	Statuses   []model.JobStatus
	Categories []*model.JobCategory
	Rows       []*model.JobRow
	Pagination Pagination
}

// JobsList renders the filtered, paginated job postings listing.
// GET /admin/jobs?search=&status=&category=&page=.
func (h *UIHandlers) JobsList(w http.ResponseWriter, r *http.Request) {
	filters := ParseJobFilters(r)
	pager := PagerFromRequest(r, h.PageSize)

	page, err := h.Jobs.List(r.Context(), filters.ListOptions(pager))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	categories, err := h.Jobs.Categories(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := jobsPageData{
		Title:      "Job Postings",
		Active:     "jobs",
		CSRFToken:  GetCSRFToken(r),
		UserEmail:  sessionEmail(r),
		Filters:    filters,
		Statuses:   []model.JobStatus{model.JobStatusDraft, model.JobStatusActive, model.JobStatusClosed, model.JobStatusExpired},
		Categories: categories,
		Rows:       page.Rows,
		Pagination: pager.Paginate(page.Total, "/admin/jobs", r.URL.Query()),
	}
	if renderErr := h.T.Render(w, "jobs", data); renderErr != nil {
		h.renderError(w, r, renderErr)
	}
}

func sessionEmail(r *http.Request) string {
	if s := GetSessionFromContext(r.Context()); s != nil {
		return s.Email
	}
	return ""
}
