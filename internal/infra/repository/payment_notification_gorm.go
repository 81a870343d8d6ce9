package repository

import (
	"context"
	"errors"

	"chickenshop/internal/domain/model"
	repo "chickenshop/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type PaymentNotificationGormRepository struct {
	db *gorm.DB
}

func NewPaymentNotificationGormRepository(db *gorm.DB) *PaymentNotificationGormRepository {
	return &PaymentNotificationGormRepository{db: db}
}

// 処理済み通知を記録。txn_idが既にあればErrDuplicateTxn
func (r *PaymentNotificationGormRepository) Create(ctx context.Context, n *model.PaymentNotification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repo.ErrDuplicateTxn
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repo.ErrDuplicateTxn
		}
		return err
	}
	return nil
}

func (r *PaymentNotificationGormRepository) FindByTxnID(ctx context.Context, txnID string) (model.PaymentNotification, bool, error) {
	var n model.PaymentNotification
	err := r.db.WithContext(ctx).
		Where("txn_id = ?", txnID).
		First(&n).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PaymentNotification{}, false, nil
	}
	if err != nil {
		return model.PaymentNotification{}, false, err
	}
	return n, true, nil
}
