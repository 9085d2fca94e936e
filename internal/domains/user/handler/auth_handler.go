package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"animalovers-backend/internal/domains/user"
	"animalovers-backend/internal/shared/middleware"
	"animalovers-backend/internal/shared/response"
)

type AuthHandler struct {
	service user.Service
}

func NewAuthHandler(svc user.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login handles POST /admin/login. The token rides at the top level of
// the body, next to the user, not inside a data wrapper.
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, user.StatusCode(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	})
}

// VerifyAuth handles GET /admin/verify-auth. The Auth middleware has
// already validated the token; this resolves it to the current account.
func (h *AuthHandler) VerifyAuth(c *gin.Context) {
	account, err := h.service.Verify(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.FailWithReason(c, http.StatusUnauthorized, "account no longer valid", "invalid")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    account,
	})
}
