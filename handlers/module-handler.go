package handlers

import (
	"net/http"

	"time-tracker/backend/models"
	"time-tracker/backend/services"
)

type ModuleHandler struct {
	Service *services.ModuleService
}

func NewModuleHandler(service *services.ModuleService) *ModuleHandler {
	return &ModuleHandler{Service: service}
}

func (h *ModuleHandler) CreateModule(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	var module models.ProjectModule
	if err := decodeBody(r, &module); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Service.CreateModule(r.Context(), module)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "Project module added successfully", created)
}

func (h *ModuleHandler) GetAllModules(w http.ResponseWriter, r *http.Request) {
	modules, err := h.Service.GetAllModules(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Project modules fetched successfully", modules)
}

func (h *ModuleHandler) GetModuleByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	module, err := h.Service.GetModuleByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Project module fetched successfully", module)
}

func (h *ModuleHandler) GetModulesByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectId")
	if err != nil {
		writeError(w, err)
		return
	}

	modules, err := h.Service.GetModulesByProject(r.Context(), projectID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Modules for project fetched successfully", modules)
}

func (h *ModuleHandler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "moduleId")
	if err != nil {
		writeError(w, err)
		return
	}

	var module models.ProjectModule
	if err := decodeBody(r, &module); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.Service.UpdateModule(r.Context(), id, module)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Project module updated successfully", updated)
}

func (h *ModuleHandler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.DeleteModule(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Project module deleted successfully", nil)
}
