package handler

import (
	"context"
	"net"
	"net/http"

	"github.com/Baaaki/trainergo/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IPBanner is the ban list the auth rate limiter consults.
type IPBanner interface {
	BanIP(ctx context.Context, ip string) error
	UnbanIP(ctx context.Context, ip string) error
}

type IPBanHandler struct {
	banner IPBanner
}

func NewIPBanHandler(banner IPBanner) *IPBanHandler {
	return &IPBanHandler{banner: banner}
}

type BanIPRequest struct {
	IP string `json:"ip" binding:"required"`
}

// Ban handles POST /api/admin/banned-ips
func (h *IPBanHandler) Ban(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var req BanIPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	ip := net.ParseIP(req.IP)
	if ip == nil {
		badRequest(c, "invalid ip")
		return
	}

	if err := h.banner.BanIP(c.Request.Context(), ip.String()); err != nil {
		respondError(c, err)
		return
	}

	logger.Log.Info("IP banned",
		zap.String("ip", ip.String()),
		zap.String("admin_id", caller.UserID.String()),
	)
	c.JSON(http.StatusOK, gin.H{"message": "IP banned", "ip": ip.String()})
}

// Unban handles DELETE /api/admin/banned-ips/:ip
func (h *IPBanHandler) Unban(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	ip := net.ParseIP(c.Param("ip"))
	if ip == nil {
		badRequest(c, "invalid ip")
		return
	}

	if err := h.banner.UnbanIP(c.Request.Context(), ip.String()); err != nil {
		respondError(c, err)
		return
	}

	logger.Log.Info("IP unbanned",
		zap.String("ip", ip.String()),
		zap.String("admin_id", caller.UserID.String()),
	)
	c.Status(http.StatusNoContent)
}
