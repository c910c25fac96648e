// file: handler/permission_handler.go

package handler

import (
	"encoding/json"
	"go-auth-api/common"
	"go-auth-api/logger"
	"go-auth-api/service"
	"net/http"

	"github.com/sirupsen/logrus"
)

type PermissionHandler struct {
	service *service.PermissionService
}

func NewPermissionHandler(service *service.PermissionService) *PermissionHandler {
	return &PermissionHandler{service: service}
}

// PermissionsByGroup godoc
// @Summary      List permissions for the caller's group
// @Tags         permission
// @Produce      json
// @Success      200  {array}   model.Permission
// @Failure      401  {object}  common.AppError
// @Security     BearerAuth
// @Router       /permission/group [get]
func (h *PermissionHandler) PermissionsByGroup(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	group, ok := r.Context().Value(UserGroupKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user group in token", nil)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"group":   group,
	})
	log.Info("List permissions request received")

	permissions, err := h.service.PermissionsByGroup(group)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve permissions", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(permissions)

	return nil
}
