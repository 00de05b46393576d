package model

import (
	"strings"
	"time"
)

// RequestStatus is the processing status of a premium CV request.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// Valid reports whether the request status is supported.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

// ParseRequestStatus normalizes a status string and reports whether it is supported.
func ParseRequestStatus(value string) (RequestStatus, bool) {
	status := RequestStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// PaymentStatus tracks payment independently of processing status.
// A request may be completed while its payment is still pending; the two
// axes are deliberately not coupled.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
)

// Valid reports whether the payment status is supported.
func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPaid || s == PaymentStatusPending
}

// ParsePaymentStatus normalizes a payment status string and reports whether it is supported.
func ParsePaymentStatus(value string) (PaymentStatus, bool) {
	status := PaymentStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// PlanType identifies the purchased premium CV plan.
type PlanType string

const (
	PlanCVPro           PlanType = "cv_pro"
	PlanCVProPlus       PlanType = "cv_pro_plus"
	PlanRemoteWorkingCV PlanType = "remote_working_cv"
)

// DisplayName returns the human-readable plan name shown in list views.
func (p PlanType) DisplayName() string {
	switch p {
	case PlanCVPro:
		return "CV Pro"
	case PlanCVProPlus:
		return "CV Pro Plus"
	case PlanRemoteWorkingCV:
		return "Remote Working CV"
	default:
		return string(p)
	}
}

// PremiumRequest represents a premium CV service request as stored.
// Requests are created by the client-facing flow and mutated exclusively
// by the admin action handler; they are never deleted.
type PremiumRequest struct {
	ID                    int64         `json:"id"                               db:"id"`
	UserID                int64         `json:"user_id"                          db:"user_id"`
	PlanType              PlanType      `json:"plan_type"                        db:"plan_type"`
	Amount                float64       `json:"amount"                           db:"amount"`
	Status                RequestStatus `json:"status"                           db:"status"`
	PaymentStatus         PaymentStatus `json:"payment_status"                   db:"payment_status"`
	ConsultationScheduled *time.Time    `json:"consultation_scheduled,omitempty" db:"consultation_scheduled"`
	DeliveryDate          *time.Time    `json:"delivery_date,omitempty"          db:"delivery_date"`
	AdminNotes            string        `json:"admin_notes"                      db:"admin_notes"`
	CreatedAt             time.Time     `json:"created_at"                       db:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"                       db:"updated_at"`
}

// PremiumRequestRow is a premium request joined with the requesting user's
// name and email for display.
type PremiumRequestRow struct {
	PremiumRequest
	UserName  string `json:"user_name"  db:"user_name"`
	UserEmail string `json:"user_email" db:"user_email"`
}

// PlanDisplayName is exposed for templates which only see the row.
func (r PremiumRequestRow) PlanDisplayName() string { return r.PlanType.DisplayName() }

// PremiumRequestListOptions controls filtering and paging for the request listing.
// Status and PaymentStatus match exactly; absent filters contribute no predicate.
type PremiumRequestListOptions struct {
	Status        *RequestStatus
	PaymentStatus *PaymentStatus
	Limit         int
	Offset        int
}
