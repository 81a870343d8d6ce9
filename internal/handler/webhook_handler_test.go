package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"chickenshop/internal/domain/model"
	"chickenshop/internal/inventory"
	"chickenshop/internal/ipn"
	"chickenshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *model.PaymentNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *mockNotificationRepo) FindByTxnID(ctx context.Context, txnID string) (model.PaymentNotification, bool, error) {
	args := m.Called(ctx, txnID)
	return args.Get(0).(model.PaymentNotification), args.Bool(1), args.Error(2)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, to string, orderDetails string) error {
	args := m.Called(ctx, to, orderDetails)
	return args.Error(0)
}

const testMerchantKey = "test-merchant-key"

func newWebhookEcho(repo *mockNotificationRepo, ledger *inventory.Ledger, sender *mockSender) *echo.Echo {
	uc := usecase.NewPaymentUsecase(testMerchantKey, repo, ledger, sender, zerolog.Nop())
	e := echo.New()
	NewWebhookHandler(uc).RegisterRoutes(e)
	return e
}

func postNotify(e *echo.Echo, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func signedForm(fields map[string]string) url.Values {
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	form.Set(ipn.SignatureField, ipn.Sign(testMerchantKey, fields))
	return form
}

func TestWebhook_Notify_Verified(t *testing.T) {
	repo := new(mockNotificationRepo)
	sender := new(mockSender)
	ledger := inventory.New(map[string]int64{"Chicken Wings": 10})
	e := newWebhookEcho(repo, ledger, sender)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	sender.On("Send", mock.Anything, "buyer@example.com", mock.Anything).Return(nil)

	rec := postNotify(e, signedForm(map[string]string{
		"txn_id":        "txn-100",
		"item_name":     "Chicken Wings",
		"quantity":      "2",
		"amount":        "200",
		"email_address": "buyer@example.com",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out usecase.PaymentResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, usecase.PaymentStatusVerified, out.Status)
	assert.Equal(t, int64(8), ledger.Stock("Chicken Wings"))
	repo.AssertExpectations(t)
	sender.AssertExpectations(t)
}

// 署名不一致でもHTTPは200（プロセッサへの再送抑止）。副作用はなし
func TestWebhook_Notify_BadSignature_Still200(t *testing.T) {
	repo := new(mockNotificationRepo)
	sender := new(mockSender)
	ledger := inventory.New(map[string]int64{"Chicken Wings": 10})
	e := newWebhookEcho(repo, ledger, sender)

	form := url.Values{}
	form.Set("txn_id", "txn-101")
	form.Set("item_name", "Chicken Wings")
	form.Set("email_address", "buyer@example.com")
	form.Set(ipn.SignatureField, "deadbeef")

	rec := postNotify(e, form)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out usecase.PaymentResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, usecase.PaymentStatusRejected, out.Status)
	assert.Equal(t, int64(10), ledger.Stock("Chicken Wings"))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestWebhook_Notify_EmptyBody_Still200(t *testing.T) {
	repo := new(mockNotificationRepo)
	sender := new(mockSender)
	e := newWebhookEcho(repo, inventory.New(nil), sender)

	rec := postNotify(e, url.Values{})

	assert.Equal(t, http.StatusOK, rec.Code)
	var out usecase.PaymentResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, usecase.PaymentStatusRejected, out.Status)
}
