package usecase

import (
	"context"
	"errors"
	"strconv"

	"chickenshop/internal/domain/model"
	"chickenshop/internal/inventory"
	"chickenshop/internal/ipn"
	repo "chickenshop/internal/repository"

	"github.com/rs/zerolog"
)

// 確認メール送信の約束（SMTP実装はinfra/mail）
type NotificationSender interface {
	Send(ctx context.Context, to string, orderDetails string) error
}

const (
	PaymentStatusVerified = "VERIFIED"
	PaymentStatusRejected = "REJECTED"
)

type PaymentResult struct {
	Status string `json:"status"`
	//同じtxn_idの再送だったか
	Replay bool `json:"replay,omitempty"`
}

// PaymentUsecaseは決済プロセッサからのIPNを処理する。
// 検証OKなら在庫減算と確認メールを行う。どちらもベストエフォートで、
// 失敗してもHTTP応答は成功のまま（プロセッサの再送ストームを避ける）。
type PaymentUsecase struct {
	merchantKey   string
	notifications repo.PaymentNotificationRepository
	ledger        *inventory.Ledger
	sender        NotificationSender
	log           zerolog.Logger
}

func NewPaymentUsecase(
	merchantKey string,
	notifications repo.PaymentNotificationRepository,
	ledger *inventory.Ledger,
	sender NotificationSender,
	log zerolog.Logger,
) *PaymentUsecase {
	return &PaymentUsecase{
		merchantKey:   merchantKey,
		notifications: notifications,
		ledger:        ledger,
		sender:        sender,
		log:           log,
	}
}

// ProcessNotificationはIPNペイロードを検証して副作用を実行する。
// 戻り値は業務上の結果だけで、handlerは常に200を返す。
func (u *PaymentUsecase) ProcessNotification(ctx context.Context, fields map[string]string) PaymentResult {
	//署名検証（値を含めたHMAC。形だけ合っていても通らない）
	signature := fields[ipn.SignatureField]
	if !ipn.Verify(u.merchantKey, fields, signature) {
		u.log.Warn().Str("txn_id", fields["txn_id"]).Msg("ipn signature mismatch")
		return PaymentResult{Status: PaymentStatusRejected}
	}

	txnID := fields["txn_id"]
	itemName := fields["item_name"]
	emailAddress := fields["email_address"]

	//プロセッサのトランザクションIDが無いと再送を区別できない
	if txnID == "" || itemName == "" || emailAddress == "" {
		u.log.Warn().Msg("ipn missing required fields")
		return PaymentResult{Status: PaymentStatusRejected}
	}

	//数量は省略時1
	qty := int64(1)
	if v, ok := fields["quantity"]; ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			u.log.Warn().Str("quantity", v).Msg("ipn invalid quantity")
			return PaymentResult{Status: PaymentStatusRejected}
		}
		qty = n
	}

	//処理済みとして記録。txn_id重複＝再送なので副作用はスキップ
	n := &model.PaymentNotification{
		TxnID:        txnID,
		ItemName:     itemName,
		Quantity:     qty,
		Amount:       fields["amount"],
		EmailAddress: emailAddress,
	}

	if err := u.notifications.Create(ctx, n); err != nil {
		if errors.Is(err, repo.ErrDuplicateTxn) {
			u.log.Info().Str("txn_id", txnID).Msg("ipn replay, skipping side effects")
			return PaymentResult{Status: PaymentStatusVerified, Replay: true}
		}
		//記録に失敗したら副作用は行わない（二重減算の方が痛い）
		u.log.Error().Err(err).Str("txn_id", txnID).Msg("ipn record failed")
		return PaymentResult{Status: PaymentStatusVerified}
	}

	//在庫減算。足りなくてもメールは送る（通知と在庫は独立のベストエフォート）
	if err := u.ledger.Decrement(itemName, qty); err != nil {
		u.log.Warn().Err(err).
			Str("item", itemName).
			Int64("quantity", qty).
			Msg("ipn stock decrement failed")
	}

	//確認メール。失敗してもリトライはしない（仕様どおり）
	details := itemName + " x" + strconv.FormatInt(qty, 10)
	if err := u.sender.Send(ctx, emailAddress, details); err != nil {
		u.log.Error().Err(err).Str("to", emailAddress).Msg("ipn confirmation mail failed")
	}

	return PaymentResult{Status: PaymentStatusVerified}
}
