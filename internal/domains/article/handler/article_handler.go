package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"animalovers-backend/internal/domains/article"
	"animalovers-backend/internal/shared/response"
	"animalovers-backend/internal/shared/utils"
)

type ArticleHandler struct {
	service article.Service
}

func NewArticleHandler(svc article.Service) *ArticleHandler {
	return &ArticleHandler{service: svc}
}

// PublicList handles GET /articles. Visitors only ever see published
// articles, whatever the query says.
func (h *ArticleHandler) PublicList(c *gin.Context) {
	status := article.StatusPublished
	h.list(c, &status)
}

// List handles GET /admin/articles with an optional status filter.
func (h *ArticleHandler) List(c *gin.Context) {
	h.list(c, utils.OptionalString(c.Query("status")))
}

func (h *ArticleHandler) list(c *gin.Context, status *string) {
	pagination, err := utils.ParsePagination(c.Query("limit"), c.Query("offset"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	filter := &article.Filter{
		Pagination:   pagination,
		CategorySlug: utils.OptionalString(c.Query("category")),
		Species:      utils.OptionalString(c.Query("species")),
		AgeRange:     utils.OptionalString(c.Query("age")),
		Search:       utils.OptionalString(c.Query("search")),
		Status:       status,
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, article.StatusCode(err), err.Error())
		return
	}

	response.List(c, items, len(items))
}

func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid article id")
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, article.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	entity, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Fail(c, article.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req article.CreateArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, article.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, entity)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid article id")
		return
	}

	var req article.UpdateArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Fail(c, article.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid article id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, article.StatusCode(err), err.Error())
		return
	}

	response.Message(c, http.StatusOK, "article deleted")
}
