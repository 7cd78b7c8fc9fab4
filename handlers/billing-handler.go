package handlers

import (
	"net/http"

	"time-tracker/backend/models"
	"time-tracker/backend/services"
)

type BillingHandler struct {
	Service *services.BillingService
}

func NewBillingHandler(service *services.BillingService) *BillingHandler {
	return &BillingHandler{Service: service}
}

func (h *BillingHandler) AddBilling(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin); err != nil {
		forbidden(w)
		return
	}

	var billing models.Billing
	if err := decodeBody(r, &billing); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Service.CreateBilling(r.Context(), billing)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "Billing record created successfully", created)
}

// GetBillings answers with live totals; totalHour and totalAmount on each row
// reflect the time logs as of this request.
func (h *BillingHandler) GetBillings(w http.ResponseWriter, r *http.Request) {
	billings, err := h.Service.GetBillings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Billing records fetched successfully", billings)
}
