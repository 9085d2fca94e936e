package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"animalovers-backend/internal/domains/adoption"
	"animalovers-backend/internal/shared/response"
	"animalovers-backend/internal/shared/utils"
)

type AdoptionHandler struct {
	service adoption.Service
}

func NewAdoptionHandler(svc adoption.Service) *AdoptionHandler {
	return &AdoptionHandler{service: svc}
}

// PublicList handles GET /adoptions. Visitors only see available
// animals.
func (h *AdoptionHandler) PublicList(c *gin.Context) {
	h.list(c, true)
}

func (h *AdoptionHandler) List(c *gin.Context) {
	h.list(c, false)
}

func (h *AdoptionHandler) list(c *gin.Context, availableOnly bool) {
	pagination, err := utils.ParsePagination(c.Query("limit"), c.Query("offset"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	featured, err := utils.ParseBoolParam(c.Query("featured"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	filter := &adoption.Filter{
		Pagination:    pagination,
		AvailableOnly: availableOnly,
		Category:      utils.OptionalString(c.Query("category")),
		AgeRange:      utils.OptionalString(c.Query("age")),
		IsFeatured:    featured,
		Search:        utils.OptionalString(c.Query("search")),
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, adoption.StatusCode(err), err.Error())
		return
	}

	response.List(c, items, len(items))
}

func (h *AdoptionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid animal id")
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, adoption.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

// Reserve handles POST /adoptions/:id/reserve.
func (h *AdoptionHandler) Reserve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid animal id")
		return
	}

	entity, err := h.service.Reserve(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, adoption.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *AdoptionHandler) Create(c *gin.Context) {
	var req adoption.CreateAnimalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, adoption.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, entity)
}

func (h *AdoptionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid animal id")
		return
	}

	var req adoption.UpdateAnimalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Fail(c, adoption.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *AdoptionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid animal id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, adoption.StatusCode(err), err.Error())
		return
	}

	response.Message(c, http.StatusOK, "animal deleted")
}
