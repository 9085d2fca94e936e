package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"animalovers-backend/internal/domains/stats"
	"animalovers-backend/internal/shared/response"
)

type StatsHandler struct {
	service stats.Service
}

func NewStatsHandler(svc stats.Service) *StatsHandler {
	return &StatsHandler{service: svc}
}

// Overview handles GET /admin/stats.
func (h *StatsHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, http.StatusOK, overview)
}
