package httpx

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jobdesk/jobdesk/internal/domain/model"
	apperrors "github.com/jobdesk/jobdesk/internal/errors"
	"github.com/jobdesk/jobdesk/internal/service"
)

// ActionHandlers serves the admin mutation endpoint. Every status change in
// the back office funnels through one POST route carrying a discriminated
// "action" field, submitted either as a form or as a JSON body.
type ActionHandlers struct {
	Jobs     *service.JobService
	Requests *service.PremiumRequestService
	Logger   *slog.Logger
}

// actionResponse is the JSON shape returned to AJAX callers.
type actionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Apply handles the admin action endpoint.
// POST /admin/actions (form-encoded or JSON: action=<kind>&...).
func (h *ActionHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	input, ok := h.parseActionInput(w, r)
	if !ok {
		return
	}

	action, err := model.ParseAdminAction(input)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	switch a := action.(type) {
	case model.UpdateJobStatusAction:
		err = h.Jobs.UpdateStatus(r.Context(), a)
	default:
		err = h.Requests.Apply(r.Context(), action)
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondSuccess(w, r)
}

// parseActionInput normalizes the request body into form values. JSON callers
// send a flat object whose fields mirror the form fields.
func (h *ActionHandlers) parseActionInput(w http.ResponseWriter, r *http.Request) (url.Values, bool) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var payload map[string]any
		if !DecodeJSON(w, r, &payload) {
			return nil, false
		}
		values := make(url.Values, len(payload))
		for key, val := range payload {
			switch v := val.(type) {
			case string:
				values.Set(key, v)
			case float64:
				values.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
			case bool:
				values.Set(key, strconv.FormatBool(v))
			case nil:
				// absent field
			default:
				values.Set(key, fmt.Sprint(v))
			}
		}
		return values, true
	}

	if err := r.ParseForm(); err != nil {
		h.respondError(w, r, apperrors.Validation("malformed form body"))
		return nil, false
	}
	return r.PostForm, true
}

func (h *ActionHandlers) respondSuccess(w http.ResponseWriter, r *http.Request) {
	if IsBrowserRequest(r) {
		// Plain form posts go back to the listing they came from.
		http.Redirect(w, r, formReturnPath(r), http.StatusSeeOther)
		return
	}
	WriteJSON(w, http.StatusOK, actionResponse{Success: true, Message: "action applied"})
}

// respondError answers with the application error's message, or a generic one
// for internal failures, whose cause goes to the server log only.
func (h *ActionHandlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	message := "internal error"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && !apperrors.IsInternal(err) {
		message = appErr.Message
	} else if h.Logger != nil {
		h.Logger.Error("admin action failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	if IsBrowserRequest(r) {
		returnPath := formReturnPath(r)
		sep := "?"
		if u, parseErr := url.Parse(returnPath); parseErr == nil && u.RawQuery != "" {
			sep = "&"
		}
		http.Redirect(w, r, returnPath+sep+"error="+url.QueryEscape(message), http.StatusSeeOther)
		return
	}

	WriteJSON(w, statusForError(err), actionResponse{Success: false, Message: message})
}

// formReturnPath picks the page to send a browser back to after an action.
func formReturnPath(r *http.Request) string {
	referer := r.Header.Get("Referer")
	if referer == "" {
		return "/admin"
	}
	u, err := url.Parse(referer)
	if err != nil {
		return "/admin"
	}
	return safeRedirectPath(u.RequestURI())
}
