package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"animalovers-backend/internal/domains/product"
	"animalovers-backend/internal/shared/response"
	"animalovers-backend/internal/shared/utils"
)

type ProductHandler struct {
	service product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{service: svc}
}

// List handles GET /products. The public router forces is_active=true
// via PublicList; the admin route sees everything.
func (h *ProductHandler) List(c *gin.Context) {
	h.list(c, nil)
}

func (h *ProductHandler) PublicList(c *gin.Context) {
	active := true
	h.list(c, &active)
}

func (h *ProductHandler) list(c *gin.Context, forceActive *bool) {
	filter, err := parseFilter(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if forceActive != nil {
		filter.IsActive = forceActive
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, product.StatusCode(err), err.Error())
		return
	}

	response.List(c, items, len(items))
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, product.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *ProductHandler) GetBySlug(c *gin.Context) {
	entity, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Fail(c, product.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req product.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, product.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, entity)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	var req product.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Fail(c, product.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, product.StatusCode(err), err.Error())
		return
	}

	response.Message(c, http.StatusOK, "product deleted")
}

func parseFilter(c *gin.Context) (*product.Filter, error) {
	pagination, err := utils.ParsePagination(c.Query("limit"), c.Query("offset"))
	if err != nil {
		return nil, err
	}

	filter := &product.Filter{
		Pagination: pagination,
		Species:    utils.OptionalString(c.Query("species")),
		Search:     utils.OptionalString(c.Query("search")),
	}

	if raw := c.Query("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = &categoryID
	}

	for param, dest := range map[string]**bool{
		"featured":   &filter.IsFeatured,
		"bestseller": &filter.IsBestseller,
		"new":        &filter.IsNew,
		"active":     &filter.IsActive,
	} {
		b, err := utils.ParseBoolParam(c.Query(param))
		if err != nil {
			return nil, err
		}
		*dest = b
	}

	for param, dest := range map[string]**decimal.Decimal{
		"price_min": &filter.PriceMin,
		"price_max": &filter.PriceMax,
	} {
		if raw := c.Query(param); raw != "" {
			d, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, err
			}
			*dest = &d
		}
	}

	return filter, nil
}
