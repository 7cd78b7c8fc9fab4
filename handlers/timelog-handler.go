package handlers

import (
	"net/http"

	"time-tracker/backend/models"
	"time-tracker/backend/services"
)

type TimeLogHandler struct {
	Service *services.TimeLogService
}

func NewTimeLogHandler(service *services.TimeLogService) *TimeLogHandler {
	return &TimeLogHandler{Service: service}
}

func (h *TimeLogHandler) AddTimeLog(w http.ResponseWriter, r *http.Request) {
	var log models.TimeLog
	if err := decodeBody(r, &log); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Service.CreateTimeLog(r.Context(), log)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "Time log created successfully", created)
}

func (h *TimeLogHandler) GetTimeLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Service.GetTimeLogs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Time logs fetched successfully", logs)
}

func (h *TimeLogHandler) DeleteTimeLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.DeleteTimeLog(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Time log deleted successfully", nil)
}
