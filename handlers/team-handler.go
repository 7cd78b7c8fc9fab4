package handlers

import (
	"net/http"

	"time-tracker/backend/models"
	"time-tracker/backend/services"
)

type TeamHandler struct {
	Service *services.TeamService
}

func NewTeamHandler(service *services.TeamService) *TeamHandler {
	return &TeamHandler{Service: service}
}

func (h *TeamHandler) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	var member models.ProjectTeam
	if err := decodeBody(r, &member); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Service.AddTeamMember(r.Context(), member)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "Project team member added successfully", created)
}

func (h *TeamHandler) GetAllTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Service.GetAllTeamMembers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Project teams fetched successfully", members)
}

func (h *TeamHandler) GetTeamMemberByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	member, err := h.Service.GetTeamMemberByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Project team member fetched successfully", member)
}

func (h *TeamHandler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin, models.RoleManager); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.DeleteTeamMember(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Project team member deleted successfully", nil)
}
