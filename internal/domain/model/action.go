package model

import (
	"net/url"
	"strconv"
	"time"

	apperrors "github.com/jobdesk/jobdesk/internal/errors"
)

// AdminAction is a closed set of back-office mutations. Each variant carries
// its own typed payload; handlers switch over the concrete types exhaustively
// instead of re-dispatching on raw action strings.
type AdminAction interface {
	isAdminAction()
}

// UpdateJobStatusAction moves a job posting to a target status, subject to
// the admin transition rules on JobStatus.
type UpdateJobStatusAction struct {
	JobID  int64
	Status JobStatus
}

// UpdateRequestStatusAction overwrites a premium request's status and admin
// notes. Any of the four statuses may be set regardless of the current one.
type UpdateRequestStatusAction struct {
	RequestID int64
	Status    RequestStatus
	Notes     string
}

// ScheduleConsultationAction records a consultation time and forces the
// request into in_progress.
type ScheduleConsultationAction struct {
	RequestID int64
	At        time.Time
}

// SetDeliveryAction records a delivery date without touching status.
type SetDeliveryAction struct {
	RequestID int64
	Date      time.Time
}

// MarkCompletedAction completes a request and stamps delivery to the call
// time, unconditionally.
type MarkCompletedAction struct {
	RequestID int64
}

func (UpdateJobStatusAction) isAdminAction()      {}
func (UpdateRequestStatusAction) isAdminAction()  {}
func (ScheduleConsultationAction) isAdminAction() {}
func (SetDeliveryAction) isAdminAction()          {}
func (MarkCompletedAction) isAdminAction()        {}

const (
	actionUpdateJobStatus      = "update_job_status"
	actionUpdateStatus         = "update_status"
	actionScheduleConsultation = "schedule_consultation"
	actionSetDelivery          = "set_delivery"
	actionMarkCompleted        = "mark_completed"

	// Accepted by the HTML datetime-local input.
	consultationTimeLayout = "2006-01-02T15:04"
	deliveryDateLayout     = "2006-01-02"
)

// ParseAdminAction converts a form-encoded action request into a typed
// AdminAction variant. Unknown action codes and malformed payloads yield
// validation errors.
func ParseAdminAction(form url.Values) (AdminAction, error) {
	switch form.Get("action") {
	case actionUpdateJobStatus:
		return parseUpdateJobStatus(form)
	case actionUpdateStatus:
		return parseUpdateRequestStatus(form)
	case actionScheduleConsultation:
		return parseScheduleConsultation(form)
	case actionSetDelivery:
		return parseSetDelivery(form)
	case actionMarkCompleted:
		id, err := parseIDField(form, "request_id")
		if err != nil {
			return nil, err
		}
		return MarkCompletedAction{RequestID: id}, nil
	default:
		return nil, apperrors.Validationf("unknown action %q", form.Get("action"))
	}
}

func parseUpdateJobStatus(form url.Values) (AdminAction, error) {
	id, err := parseIDField(form, "job_id")
	if err != nil {
		return nil, err
	}
	status, ok := ParseJobStatus(form.Get("status"))
	if !ok {
		return nil, apperrors.ValidationField("status", "invalid job status")
	}
	return UpdateJobStatusAction{JobID: id, Status: status}, nil
}

func parseUpdateRequestStatus(form url.Values) (AdminAction, error) {
	id, err := parseIDField(form, "request_id")
	if err != nil {
		return nil, err
	}
	status, ok := ParseRequestStatus(form.Get("status"))
	if !ok {
		return nil, apperrors.ValidationField("status", "invalid request status")
	}
	return UpdateRequestStatusAction{
		RequestID: id,
		Status:    status,
		Notes:     form.Get("notes"),
	}, nil
}

func parseScheduleConsultation(form url.Values) (AdminAction, error) {
	id, err := parseIDField(form, "request_id")
	if err != nil {
		return nil, err
	}
	at, err := time.Parse(consultationTimeLayout, form.Get("consultation_datetime"))
	if err != nil {
		return nil, apperrors.ValidationField("consultation_datetime", "invalid consultation date/time")
	}
	return ScheduleConsultationAction{RequestID: id, At: at}, nil
}

func parseSetDelivery(form url.Values) (AdminAction, error) {
	id, err := parseIDField(form, "request_id")
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(deliveryDateLayout, form.Get("delivery_date"))
	if err != nil {
		return nil, apperrors.ValidationField("delivery_date", "invalid delivery date")
	}
	return SetDeliveryAction{RequestID: id, Date: date}, nil
}

func parseIDField(form url.Values, field string) (int64, error) {
	id, err := strconv.ParseInt(form.Get(field), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ValidationField(field, "must be a positive integer")
	}
	return id, nil
}
