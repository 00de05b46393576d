package httpx

import (
	"net/http"
	"net/url"

	"github.com/jobdesk/jobdesk/internal/domain/model"
)

type dashboardPageData struct {
	Title           string
	Active          string
	CSRFToken       string
	UserEmail       string
	ActiveJobs      int
	PendingRequests int
}

// Dashboard renders the admin landing page with open-work counts.
// GET /admin.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	active := model.JobStatusActive
	activeJobs, err := h.Jobs.List(r.Context(), &model.JobListOptions{Status: &active, Limit: 1})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	pending := model.RequestStatusPending
	pendingRequests, err := h.Requests.List(r.Context(), &model.PremiumRequestListOptions{Status: &pending, Limit: 1})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := dashboardPageData{
		Title:           "Dashboard",
		Active:          "dashboard",
		CSRFToken:       GetCSRFToken(r),
		UserEmail:       sessionEmail(r),
		ActiveJobs:      activeJobs.Total,
		PendingRequests: pendingRequests.Total,
	}
	if renderErr := h.T.Render(w, "dashboard", data); renderErr != nil {
		h.renderError(w, r, renderErr)
	}
}

// Index redirects the bare root to the dashboard.
// GET /.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

type signedOutPageData struct {
	Title       string
	RedirectURI string
}

// SignedOut renders the post-logout page with a sign-in link.
// GET /auth/signed-out?redirect_uri=.
func (h *UIHandlers) SignedOut(w http.ResponseWriter, r *http.Request) {
	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	data := signedOutPageData{
		Title:       "Signed out",
		RedirectURI: url.QueryEscape(redirectURI),
	}
	if renderErr := h.T.Render(w, "signed_out", data); renderErr != nil {
		h.renderError(w, r, renderErr)
	}
}
