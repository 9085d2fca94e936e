package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animalovers-backend/internal/domains/donation"
	"animalovers-backend/internal/domains/payment/kkiapay"
)

const siteURL = "https://animalovers.example"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeService struct {
	processed []*donation.ProcessDonationReq
	err       error
}

func (f *fakeService) ProcessDonation(ctx context.Context, req *donation.ProcessDonationReq) (*donation.Receipt, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.processed = append(f.processed, req)
	return &donation.Receipt{Message: "thank you for your donation"}, nil
}

func (f *fakeService) GetByID(ctx context.Context, id uuid.UUID) (*donation.Donation, error) {
	return nil, donation.ErrNotFound
}

func (f *fakeService) List(ctx context.Context, filter *donation.Filter) ([]donation.Donation, error) {
	return []donation.Donation{}, nil
}

func (f *fakeService) Stats(ctx context.Context) (*donation.Stats, error) {
	return &donation.Stats{}, nil
}

type fakeVerifier struct {
	status string
	err    error
	asked  []string
}

func (f *fakeVerifier) VerifyTransaction(ctx context.Context, transactionID string) (*kkiapay.Transaction, error) {
	f.asked = append(f.asked, transactionID)
	if f.err != nil {
		return nil, f.err
	}
	return &kkiapay.Transaction{TransactionID: transactionID, Status: f.status}, nil
}

func setup(svc *fakeService, verifier *fakeVerifier) *gin.Engine {
	h := NewDonationHandler(svc, verifier, siteURL)
	router := gin.New()
	router.POST("/donations", h.Process)
	router.GET("/donations/kkiapay-callback", h.Callback)
	return router
}

func TestProcessReturnsMessageEnvelope(t *testing.T) {
	svc := &fakeService{}
	router := setup(svc, &fakeVerifier{})

	body := `{"amount": 1000, "email": "donor@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/donations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["message"])
	assert.NotContains(t, resp, "data")
	require.Len(t, svc.processed, 1)
}

func TestProcessValidationError(t *testing.T) {
	svc := &fakeService{err: donation.ErrValidation}
	router := setup(svc, &fakeVerifier{})

	req := httptest.NewRequest(http.MethodPost, "/donations", strings.NewReader(`{"amount": 0}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func callbackURL(txID, status string, data interface{}) string {
	raw, _ := json.Marshal(data)
	q := url.Values{}
	q.Set("transactionId", txID)
	q.Set("status", status)
	q.Set("data", string(raw))
	return "/donations/kkiapay-callback?" + q.Encode()
}

func TestCallbackVerifiedSuccess(t *testing.T) {
	svc := &fakeService{}
	verifier := &fakeVerifier{status: kkiapay.StatusSuccess}
	router := setup(svc, verifier)

	campaignID := uuid.New()
	target := callbackURL("kkp-42", "SUCCESS", gin.H{
		"amount":     "2500",
		"email":      "donor@example.com",
		"campaignId": campaignID.String(),
	})

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, siteURL+"/don/merci", w.Header().Get("Location"))

	assert.Equal(t, []string{"kkp-42"}, verifier.asked)
	require.Len(t, svc.processed, 1)
	require.NotNil(t, svc.processed[0].TransactionID)
	assert.Equal(t, "kkp-42", *svc.processed[0].TransactionID)
	assert.True(t, svc.processed[0].Amount.Equal(decimal.NewFromInt(2500)))
}

func TestCallbackNonSuccessStatusSkipsVerification(t *testing.T) {
	svc := &fakeService{}
	verifier := &fakeVerifier{status: kkiapay.StatusSuccess}
	router := setup(svc, verifier)

	req := httptest.NewRequest(http.MethodGet, callbackURL("kkp-1", "FAILED", gin.H{}), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, siteURL+"/don/erreur", w.Header().Get("Location"))
	assert.Empty(t, verifier.asked)
	assert.Empty(t, svc.processed)
}

func TestCallbackGatewayContradicts(t *testing.T) {
	svc := &fakeService{}
	verifier := &fakeVerifier{status: kkiapay.StatusFailed}
	router := setup(svc, verifier)

	req := httptest.NewRequest(http.MethodGet, callbackURL("kkp-2", "SUCCESS", gin.H{}), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, siteURL+"/don/erreur", w.Header().Get("Location"))
	assert.Empty(t, svc.processed)
}

func TestCallbackVerifierError(t *testing.T) {
	svc := &fakeService{}
	verifier := &fakeVerifier{err: errors.New("gateway down")}
	router := setup(svc, verifier)

	req := httptest.NewRequest(http.MethodGet, callbackURL("kkp-3", "SUCCESS", gin.H{}), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, siteURL+"/don/erreur", w.Header().Get("Location"))
	assert.Empty(t, svc.processed)
}
