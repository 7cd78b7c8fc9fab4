package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"time-tracker/backend/logging"
	"time-tracker/backend/middleware"
	"time-tracker/backend/services"
)

// apiResponse is the envelope every endpoint answers with.
type apiResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Message: message, Data: data})
}

// writeError maps the service error taxonomy onto HTTP status codes in one
// place. Store failures pass their message through as a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case services.IsNotFound(err):
		status = http.StatusNotFound
	case services.IsConflict(err):
		status = http.StatusConflict
	case services.IsValidation(err):
		status = http.StatusBadRequest
	case services.IsUnauthorized(err):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		logging.Logger.Errorf("Event ID: REQUEST_FAILED, Description: %v", err)
	}

	writeJSON(w, status, err.Error(), nil)
}

// checkRole verifies the authenticated role from the validated token claims.
func checkRole(r *http.Request, allowedRoles ...string) error {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		return fmt.Errorf("missing authentication claims")
	}
	for _, role := range allowedRoles {
		if role == claims.Role {
			return nil
		}
	}
	return fmt.Errorf("access forbidden: user does not have the required role")
}

func forbidden(w http.ResponseWriter) {
	writeJSON(w, http.StatusForbidden, "Access forbidden: insufficient permissions", nil)
}

// pathID extracts and parses an ObjectID path variable.
func pathID(r *http.Request, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)[name])
	if err != nil {
		return primitive.NilObjectID, services.Invalid("invalid %s format", name)
	}
	return id, nil
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return services.Invalid("invalid request payload")
	}
	return nil
}
