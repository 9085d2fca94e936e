package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"animalovers-backend/internal/domains/user"
	"animalovers-backend/internal/shared/response"
	"animalovers-backend/internal/shared/utils"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// List handles GET /admin/users?role=&active=.
func (h *UserHandler) List(c *gin.Context) {
	pagination, err := utils.ParsePagination(c.Query("limit"), c.Query("offset"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	active, err := utils.ParseBoolParam(c.Query("active"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	filter := &user.Filter{
		Pagination: pagination,
		Role:       utils.OptionalString(c.Query("role")),
		IsActive:   active,
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, user.StatusCode(err), err.Error())
		return
	}

	response.List(c, items, len(items))
}
