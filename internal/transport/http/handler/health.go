package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"odontobot/internal/transport/http/response"
)

type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

func (h *HealthHandler) Check(c *gin.Context) {
	response.OK(c, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	})
}
