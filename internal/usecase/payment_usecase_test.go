package usecase

import (
	"context"
	"testing"

	"chickenshop/internal/domain/model"
	"chickenshop/internal/inventory"
	"chickenshop/internal/ipn"
	repo "chickenshop/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testMerchantKey = "merchant-key"

func signedFields(t *testing.T, fields map[string]string) map[string]string {
	t.Helper()
	fields[ipn.SignatureField] = ipn.Sign(testMerchantKey, fields)
	return fields
}

func newPaymentUC(notifs *MockPaymentNotificationRepository, ledger *inventory.Ledger, sender *MockSender) *PaymentUsecase {
	return NewPaymentUsecase(testMerchantKey, notifs, ledger, sender, zerolog.Nop())
}

func TestPaymentUsecase_Verified(t *testing.T) {
	ctx := context.Background()

	notifs := new(MockPaymentNotificationRepository)
	sender := new(MockSender)
	ledger := inventory.New(map[string]int64{"Chicken Wings": 10})

	fields := signedFields(t, map[string]string{
		"txn_id":        "txn-1",
		"item_name":     "Chicken Wings",
		"amount":        "100",
		"email_address": "buyer@example.com",
	})

	notifs.On("Create", ctx, mock.MatchedBy(func(n *model.PaymentNotification) bool {
		return n.TxnID == "txn-1" && n.ItemName == "Chicken Wings" && n.Quantity == 1
	})).Return(nil)
	sender.On("Send", ctx, "buyer@example.com", "Chicken Wings x1").Return(nil)

	out := newPaymentUC(notifs, ledger, sender).ProcessNotification(ctx, fields)

	assert.Equal(t, PaymentStatusVerified, out.Status)
	assert.False(t, out.Replay)
	assert.Equal(t, int64(9), ledger.Stock("Chicken Wings"))
	notifs.AssertExpectations(t)
	sender.AssertExpectations(t)
}

// 署名が合わなければ副作用ゼロ（在庫もメールも記録も）
func TestPaymentUsecase_BadSignature(t *testing.T) {
	ctx := context.Background()

	notifs := new(MockPaymentNotificationRepository)
	sender := new(MockSender)
	ledger := inventory.New(map[string]int64{"Chicken Wings": 10})

	fields := map[string]string{
		"txn_id":        "txn-1",
		"item_name":     "Chicken Wings",
		"amount":        "100",
		"email_address": "buyer@example.com",
		"signature":     "deadbeef",
	}

	out := newPaymentUC(notifs, ledger, sender).ProcessNotification(ctx, fields)

	assert.Equal(t, PaymentStatusRejected, out.Status)
	assert.Equal(t, int64(10), ledger.Stock("Chicken Wings"))
	notifs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

// 値を変えると署名は通らない（フィールド名だけの検証ではない）
func TestPaymentUsecase_TamperedValueRejected(t *testing.T) {
	ctx := context.Background()

	notifs := new(MockPaymentNotificationRepository)
	sender := new(MockSender)
	ledger := inventory.New(map[string]int64{"Chicken Wings": 10})

	fields := signedFields(t, map[string]string{
		"txn_id":        "txn-1",
		"item_name":     "Chicken Wings",
		"amount":        "100",
		"email_address": "buyer@example.com",
	})
	//署名後に金額を改ざん
	fields["amount"] = "1"

	out := newPaymentUC(notifs, ledger, sender).ProcessNotification(ctx, fields)

	assert.Equal(t, PaymentStatusRejected, out.Status)
	assert.Equal(t, int64(10), ledger.Stock("Chicken Wings"))
}

// 在庫不足でも台帳は変えず、メールは送る
func TestPaymentUsecase_InsufficientStock_MailStillSent(t *testing.T) {
	ctx := context.Background()

	notifs := new(MockPaymentNotificationRepository)
	sender := new(MockSender)
	ledger := inventory.New(map[string]int64{"Chicken Wings": 2})

	fields := signedFields(t, map[string]string{
		"txn_id":        "txn-2",
		"item_name":     "Chicken Wings",
		"quantity":      "5",
		"amount":        "500",
		"email_address": "buyer@example.com",
	})

	notifs.On("Create", ctx, mock.Anything).Return(nil)
	sender.On("Send", ctx, "buyer@example.com", "Chicken Wings x5").Return(nil)

	out := newPaymentUC(notifs, ledger, sender).ProcessNotification(ctx, fields)

	assert.Equal(t, PaymentStatusVerified, out.Status)
	assert.Equal(t, int64(2), ledger.Stock("Chicken Wings"))
	sender.AssertExpectations(t)
}

// 同じtxn_idの再送は在庫もメールも二重に走らせない
func TestPaymentUsecase_ReplaySkipsSideEffects(t *testing.T) {
	ctx := context.Background()

	notifs := new(MockPaymentNotificationRepository)
	sender := new(MockSender)
	ledger := inventory.New(map[string]int64{"Chicken Wings": 10})

	fields := signedFields(t, map[string]string{
		"txn_id":        "txn-3",
		"item_name":     "Chicken Wings",
		"amount":        "100",
		"email_address": "buyer@example.com",
	})

	notifs.On("Create", ctx, mock.Anything).Return(repo.ErrDuplicateTxn)

	out := newPaymentUC(notifs, ledger, sender).ProcessNotification(ctx, fields)

	assert.Equal(t, PaymentStatusVerified, out.Status)
	assert.True(t, out.Replay)
	assert.Equal(t, int64(10), ledger.Stock("Chicken Wings"))
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentUsecase_MissingTxnIDRejected(t *testing.T) {
	ctx := context.Background()

	notifs := new(MockPaymentNotificationRepository)
	sender := new(MockSender)
	ledger := inventory.New(map[string]int64{"Chicken Wings": 10})

	fields := signedFields(t, map[string]string{
		"item_name":     "Chicken Wings",
		"amount":        "100",
		"email_address": "buyer@example.com",
	})

	out := newPaymentUC(notifs, ledger, sender).ProcessNotification(ctx, fields)

	assert.Equal(t, PaymentStatusRejected, out.Status)
	notifs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
