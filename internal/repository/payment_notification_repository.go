package repository

import (
	"context"
	"errors"

	"chickenshop/internal/domain/model"
)

// 同じtxn_idがすでに処理済み
var ErrDuplicateTxn = errors.New("duplicate txn")

type PaymentNotificationRepository interface {
	//処理済みとして記録（txn_id重複ならErrDuplicateTxn）
	Create(ctx context.Context, n *model.PaymentNotification) error
	FindByTxnID(ctx context.Context, txnID string) (model.PaymentNotification, bool, error)
}
