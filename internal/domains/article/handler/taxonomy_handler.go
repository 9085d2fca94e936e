package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"animalovers-backend/internal/domains/article"
	"animalovers-backend/internal/shared/response"
	"animalovers-backend/internal/shared/utils"
)

// TaxonomyHandler serves the admin CRUD for one lookup table (article
// categories or tags). Two instances are wired, one per table.
type TaxonomyHandler struct {
	repo article.TaxonomyRepository
	kind string // "category" or "tag", used in messages
}

func NewTaxonomyHandler(repo article.TaxonomyRepository, kind string) *TaxonomyHandler {
	return &TaxonomyHandler{repo: repo, kind: kind}
}

func (h *TaxonomyHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Fail(c, article.StatusCode(err), err.Error())
		return
	}
	response.List(c, items, len(items))
}

func (h *TaxonomyHandler) Create(c *gin.Context) {
	var req article.TaxonomyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	item, err := h.repo.Create(c.Request.Context(), req.Name, slug, req.Color)
	if err != nil {
		response.Fail(c, article.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, item)
}

func (h *TaxonomyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, fmt.Sprintf("invalid %s id", h.kind))
		return
	}

	var req article.TaxonomyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Slug == "" {
		req.Slug = utils.GenerateSlug(req.Name)
	}

	item, err := h.repo.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Fail(c, article.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, item)
}

func (h *TaxonomyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, fmt.Sprintf("invalid %s id", h.kind))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, article.StatusCode(err), err.Error())
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("article %s deleted", h.kind))
}
