package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"time-tracker/backend/models"
	"time-tracker/backend/services"
)

type UserHandler struct {
	Service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeBody(r, &user); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Service.Signup(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "User created successfully", created)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &request); err != nil {
		writeError(w, err)
		return
	}

	user, token, err := h.Service.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Login successful", map[string]any{
		"user":  user,
		"token": token,
	})
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	roleFilter := r.URL.Query().Get("role")

	users, err := h.Service.GetAllUsers(r.Context(), roleFilter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Users fetched successfully", users)
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.Service.GetUserByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "User fetched successfully", user)
}

func (h *UserHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin); err != nil {
		forbidden(w)
		return
	}

	var user models.User
	if err := decodeBody(r, &user); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Service.AddUser(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "User created successfully", created)
}

func (h *UserHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var request struct {
		RoleID primitive.ObjectID `json:"roleId"`
	}
	if err := decodeBody(r, &request); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.Service.UpdateUserRole(r.Context(), id, request.RoleID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "User role updated successfully", updated)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleAdmin); err != nil {
		forbidden(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.DeleteUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "User deleted successfully", nil)
}

func (h *UserHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email string `json:"email"`
	}
	if err := decodeBody(r, &request); err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.ForgotPassword(r.Context(), request.Email); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Reset password link sent to your email", nil)
}

func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &request); err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.ResetPassword(r.Context(), request.Token, request.Password); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Password updated successfully", nil)
}
