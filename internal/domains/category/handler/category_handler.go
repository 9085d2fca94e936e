package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"animalovers-backend/internal/domains/category"
	"animalovers-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// GetHierarchy handles GET /categories. Query params select the mode:
// ?roots=true for top-level only, ?parent=<id> for children of one
// parent, neither for the full tree. The two are mutually exclusive.
func (h *CategoryHandler) GetHierarchy(c *gin.Context) {
	rootsOnly := c.Query("roots") == "true"
	parentStr := c.Query("parent")

	if rootsOnly && parentStr != "" {
		response.Fail(c, http.StatusBadRequest, "roots and parent are mutually exclusive")
		return
	}

	q := category.HierarchyQuery{Mode: category.ModeTree}
	switch {
	case rootsOnly:
		q.Mode = category.ModeRoots
	case parentStr != "":
		parentID, err := uuid.Parse(parentStr)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "invalid parent id")
			return
		}
		q.Mode = category.ModeChildren
		q.ParentID = parentID
	}

	nodes, err := h.service.GetHierarchy(c.Request.Context(), q)
	if err != nil {
		response.FailWithDetails(c, category.StatusCode(err), err.Error(), nil)
		return
	}

	response.List(c, nodes, len(nodes))
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid category id")
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, category.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	entity, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Fail(c, category.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, category.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, entity)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var req category.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Fail(c, category.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, category.StatusCode(err), err.Error())
		return
	}

	response.Message(c, http.StatusOK, "category deleted")
}
