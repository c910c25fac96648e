package handler

import (
	"encoding/json"
	"go-auth-api/common"
	"net/http"
)

// UserHandler serves user-scoped endpoints behind the access token guard.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// TestAuth godoc
// @Summary      Probe endpoint for a valid access token
// @Tags         user
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  common.AppError
// @Security     BearerAuth
// @Router       /user/test [get]
func (h *UserHandler) TestAuth(w http.ResponseWriter, r *http.Request) *common.AppError {
	if _, ok := r.Context().Value(UserIDKey).(int); !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Authenticated user"})

	return nil
}
