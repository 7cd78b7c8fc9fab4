package handlers

import (
	"net/http"

	"time-tracker/backend/models"
	"time-tracker/backend/services"
)

type StatusHandler struct {
	Service *services.StatusService
}

func NewStatusHandler(service *services.StatusService) *StatusHandler {
	return &StatusHandler{Service: service}
}

func (h *StatusHandler) GetAllStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.Service.GetAllStatuses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Statuses fetched successfully", statuses)
}

func (h *StatusHandler) GetStatusByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	status, err := h.Service.GetStatusByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Status fetched successfully", status)
}

func (h *StatusHandler) CreateStatus(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin); err != nil {
		forbidden(w)
		return
	}

	var status models.Status
	if err := decodeBody(r, &status); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Service.CreateStatus(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "Status created successfully", created)
}

func (h *StatusHandler) DeleteStatus(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.DeleteStatus(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Status deleted successfully", nil)
}
