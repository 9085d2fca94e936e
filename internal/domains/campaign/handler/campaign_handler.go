package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"animalovers-backend/internal/domains/campaign"
	"animalovers-backend/internal/shared/response"
	"animalovers-backend/internal/shared/utils"
)

type CampaignHandler struct {
	service campaign.Service
}

func NewCampaignHandler(svc campaign.Service) *CampaignHandler {
	return &CampaignHandler{service: svc}
}

// PublicList handles GET /campaigns?featured=true|false. Visitors only
// see active campaigns.
func (h *CampaignHandler) PublicList(c *gin.Context) {
	h.list(c, true)
}

func (h *CampaignHandler) List(c *gin.Context) {
	h.list(c, false)
}

func (h *CampaignHandler) list(c *gin.Context, activeOnly bool) {
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

	filter := &campaign.Filter{
		Pagination: pagination,
		ActiveOnly: activeOnly,
		Featured:   featured,
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, campaign.StatusCode(err), err.Error())
		return
	}

	response.List(c, items, len(items))
}

func (h *CampaignHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid campaign id")
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, campaign.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *CampaignHandler) GetBySlug(c *gin.Context) {
	entity, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Fail(c, campaign.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var req campaign.CreateCampaignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, campaign.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, entity)
}

func (h *CampaignHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var req campaign.UpdateCampaignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Fail(c, campaign.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *CampaignHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid campaign id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, campaign.StatusCode(err), err.Error())
		return
	}

	response.Message(c, http.StatusOK, "campaign deleted")
}
