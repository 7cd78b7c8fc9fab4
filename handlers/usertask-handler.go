package handlers

import (
	"net/http"
	"time"

	"time-tracker/backend/models"
	"time-tracker/backend/services"
)

type UserTaskHandler struct {
	Service *services.UserTaskService
}

func NewUserTaskHandler(service *services.UserTaskService) *UserTaskHandler {
	return &UserTaskHandler{Service: service}
}

func (h *UserTaskHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	var assignment models.UserTask
	if err := decodeBody(r, &assignment); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Service.AssignTask(r.Context(), assignment)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "Task assigned successfully", created)
}

func (h *UserTaskHandler) GetUserTasks(w http.ResponseWriter, r *http.Request) {
	userTasks, err := h.Service.GetUserTasks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "User tasks fetched successfully", userTasks)
}

func (h *UserTaskHandler) GetUserTasksByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}

	userTasks, err := h.Service.GetUserTasksByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "User tasks fetched successfully", userTasks)
}

func (h *UserTaskHandler) GetUserTaskByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	userTask, err := h.Service.GetUserTaskByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "User task fetched successfully", userTask)
}

func (h *UserTaskHandler) UpdateUserTask(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var request struct {
		WorkedHr *float64   `json:"workedHr"`
		LogDate  *time.Time `json:"logDate"`
	}
	if err := decodeBody(r, &request); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.Service.UpdateUserTask(r.Context(), id, request.WorkedHr, request.LogDate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "User task updated successfully", updated)
}

func (h *UserTaskHandler) DeleteUserTask(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.DeleteUserTask(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "User task deleted successfully", nil)
}
