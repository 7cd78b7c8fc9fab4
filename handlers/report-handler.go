package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"time-tracker/backend/models"
	"time-tracker/backend/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin); err != nil {
		forbidden(w)
		return
	}

	var request struct {
		ProjectID primitive.ObjectID `json:"projectId"`
		UserID    primitive.ObjectID `json:"userId"`
		TaskID    primitive.ObjectID `json:"taskId"`
	}
	if err := decodeBody(r, &request); err != nil {
		writeError(w, err)
		return
	}

	report, err := h.Service.GenerateReport(r.Context(), request.ProjectID, request.UserID, request.TaskID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "Report generated successfully", report)
}

func (h *ReportHandler) GetReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Service.GetReports(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Reports fetched successfully", reports)
}
