package handler

import (
	"net/http"

	"github.com/Baaaki/trainergo/internal/service"
	"github.com/Baaaki/trainergo/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	authService *service.AuthService
}

func NewAdminHandler(authService *service.AuthService) *AdminHandler {
	return &AdminHandler{
		authService: authService,
	}
}

// ListUsers returns every account without password hashes
// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	logger.Log.Info("Admin fetching all users",
		zap.String("admin_id", caller.UserID.String()),
	)

	users, err := h.authService.ListUsers(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
	})
}
