package handlers

import (
	"net/http"

	"time-tracker/backend/models"
	"time-tracker/backend/services"
)

type TaskHandler struct {
	Service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{Service: service}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	var task models.Task
	if err := decodeBody(r, &task); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Service.CreateTask(r.Context(), task)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "Task added successfully", created)
}

func (h *TaskHandler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Service.GetAllTasks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Tasks fetched successfully", tasks)
}

func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	task, err := h.Service.GetTaskByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Task fetched successfully", task)
}

func (h *TaskHandler) GetTasksByModule(w http.ResponseWriter, r *http.Request) {
	moduleID, err := pathID(r, "moduleId")
	if err != nil {
		writeError(w, err)
		return
	}

	tasks, err := h.Service.GetTasksByModule(r.Context(), moduleID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Tasks fetched successfully", tasks)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var task models.Task
	if err := decodeBody(r, &task); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.Service.UpdateTask(r.Context(), id, task)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Task updated successfully", updated)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.DeleteTask(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Task deleted successfully", nil)
}
