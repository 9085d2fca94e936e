package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"animalovers-backend/internal/domains/settings"
	"animalovers-backend/internal/shared/response"
)

type SettingsHandler struct {
	service settings.Service
}

func NewSettingsHandler(svc settings.Service) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	entity, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Fail(c, settings.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

// Update handles PUT /admin/settings. A stale version answers 409; the
// client re-reads and retries.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req settings.UpdateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, settings.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}
