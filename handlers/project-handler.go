package handlers

import (
	"net/http"

	"time-tracker/backend/models"
	"time-tracker/backend/services"
)

type ProjectHandler struct {
	Service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{Service: service}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	var project models.Project
	if err := decodeBody(r, &project); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Service.CreateProject(r.Context(), project)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "Project added successfully", created)
}

func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Service.GetProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Projects fetched successfully", projects)
}

func (h *ProjectHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	project, err := h.Service.GetProjectByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Project details", project)
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var project models.Project
	if err := decodeBody(r, &project); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.Service.UpdateProject(r.Context(), id, project)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Project updated successfully", updated)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.DeleteProject(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Project deleted successfully", nil)
}
