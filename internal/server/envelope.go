package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/errors"
)

// respond stamps the payload with the request time and writes it. Every
// handler funnels through here so the timestamp contract holds everywhere.
func respond(c *gin.Context, status int, payload gin.H) {
	payload["timestamp"] = time.Now().Format(time.RFC3339)
	c.JSON(status, payload)
}

func respondOK(c *gin.Context, payload gin.H) {
	if _, ok := payload["success"]; !ok {
		payload["success"] = true
	}
	respond(c, http.StatusOK, payload)
}

func respondError(c *gin.Context, status int, err *apperrors.StandardError) {
	respond(c, status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    err.Code,
			"message": err.Message,
			"details": err.Details,
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	respondOK(c, gin.H{
		"status":  "ok",
		"service": s.deps.Config.App.Name,
		"version": s.deps.Config.App.Version,
	})
}
