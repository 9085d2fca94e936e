package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"animalovers-backend/internal/domains/donation"
	"animalovers-backend/internal/domains/payment/kkiapay"
	"animalovers-backend/internal/shared/response"
	"animalovers-backend/internal/shared/utils"
	"animalovers-backend/pkg/logger"
)

// Verifier checks a gateway transaction id against the payment provider
// before the callback payload is trusted.
type Verifier interface {
	VerifyTransaction(ctx context.Context, transactionID string) (*kkiapay.Transaction, error)
}

type DonationHandler struct {
	service  donation.Service
	verifier Verifier
	siteURL  string
}

func NewDonationHandler(svc donation.Service, verifier Verifier, siteURL string) *DonationHandler {
	return &DonationHandler{service: svc, verifier: verifier, siteURL: siteURL}
}

// Process handles POST /donations. The donor-facing response is a
// receipt message, never the stored record.
func (h *DonationHandler) Process(c *gin.Context) {
	var req donation.ProcessDonationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := h.service.ProcessDonation(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, donation.StatusCode(err), err.Error())
		return
	}

	response.Message(c, http.StatusCreated, receipt.Message)
}

// Callback handles GET /donations/kkiapay-callback, the redirect the
// payment widget sends the donor through. The donation details ride in
// the url-encoded "data" parameter; the transaction id is verified
// against the gateway before anything is recorded. The route always
// ends in a redirect back to the site, never a JSON body.
func (h *DonationHandler) Callback(c *gin.Context) {
	transactionID := c.Query("transactionId")
	status := c.Query("status")

	if transactionID == "" || status != kkiapay.StatusSuccess {
		h.redirectError(c)
		return
	}

	tx, err := h.verifier.VerifyTransaction(c.Request.Context(), transactionID)
	if err != nil {
		logger.Error("payment verification failed", err)
		h.redirectError(c)
		return
	}
	if !tx.IsSuccessful() {
		logger.Warn("callback status contradicted by gateway", map[string]interface{}{
			"transaction_id": transactionID,
			"status":         tx.Status,
		})
		h.redirectError(c)
		return
	}

	var req donation.ProcessDonationReq
	if err := json.Unmarshal([]byte(c.Query("data")), &req); err != nil {
		logger.Error("malformed callback data payload", err)
		h.redirectError(c)
		return
	}
	req.TransactionID = &transactionID

	if _, err := h.service.ProcessDonation(c.Request.Context(), &req); err != nil {
		logger.Error("failed to record verified donation", err)
		h.redirectError(c)
		return
	}

	c.Redirect(http.StatusFound, h.siteURL+"/don/merci")
}

func (h *DonationHandler) redirectError(c *gin.Context) {
	c.Redirect(http.StatusFound, h.siteURL+"/don/erreur")
}

// List handles GET /admin/donations with optional status and campaign
// filters.
func (h *DonationHandler) List(c *gin.Context) {
	pagination, err := utils.ParsePagination(c.Query("limit"), c.Query("offset"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	filter := &donation.Filter{
		Pagination: pagination,
		Status:     utils.OptionalString(c.Query("status")),
	}
	if raw := c.Query("campaign"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "invalid campaign id")
			return
		}
		filter.CampaignID = &id
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, donation.StatusCode(err), err.Error())
		return
	}

	response.List(c, items, len(items))
}

func (h *DonationHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid donation id")
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, donation.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

func (h *DonationHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Fail(c, donation.StatusCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, stats)
}
