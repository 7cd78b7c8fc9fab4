package handlers

import (
	"net/http"

	"time-tracker/backend/models"
	"time-tracker/backend/services"
)

type RoleHandler struct {
	Service *services.RoleService
}

func NewRoleHandler(service *services.RoleService) *RoleHandler {
	return &RoleHandler{Service: service}
}

func (h *RoleHandler) GetAllRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Service.GetAllRoles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Roles fetched successfully", roles)
}

func (h *RoleHandler) GetRoleByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	role, err := h.Service.GetRoleByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Role fetched successfully", role)
}

func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin); err != nil {
		forbidden(w)
		return
	}

	var role models.Role
	if err := decodeBody(r, &role); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Service.CreateRole(r.Context(), role)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "Role created successfully", created)
}

func (h *RoleHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.DeleteRole(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Role deleted successfully", nil)
}
