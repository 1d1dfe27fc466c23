package handler

import (
	"net/http"

	"github.com/Baaaki/trainergo/internal/middleware"
	"github.com/Baaaki/trainergo/internal/models"
	"github.com/Baaaki/trainergo/internal/service"
	"github.com/Baaaki/trainergo/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var statusByKind = map[service.Kind]int{
	service.KindValidation:   http.StatusBadRequest,
	service.KindUnauthorized: http.StatusUnauthorized,
	service.KindForbidden:    http.StatusForbidden,
	service.KindNotFound:     http.StatusNotFound,
	service.KindConflict:     http.StatusConflict,
}

// respondError maps domain errors to their status and hides everything else behind a 500.
func respondError(c *gin.Context, err error) {
	if kind, ok := service.KindOf(err); ok {
		c.JSON(statusByKind[kind], gin.H{"message": err.Error()})
		return
	}

	_ = c.Error(err)
	logger.Log.Error("Unhandled error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

// callerFrom reads the identity AuthMiddleware stored on the context.
func callerFrom(c *gin.Context) (service.Caller, bool) {
	uid, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return service.Caller{}, false
	}
	role, ok := c.Get(middleware.ContextRole)
	if !ok {
		return service.Caller{}, false
	}

	userID, ok := uid.(uuid.UUID)
	if !ok {
		return service.Caller{}, false
	}
	roleName, ok := role.(models.RoleName)
	if !ok {
		return service.Caller{}, false
	}
	return service.Caller{UserID: userID, Role: roleName}, true
}

// mustCaller writes a 401 and returns false when the context has no identity.
func mustCaller(c *gin.Context) (service.Caller, bool) {
	caller, ok := callerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
	}
	return caller, ok
}

// uuidParam parses a path parameter, writing a 400 on failure.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
