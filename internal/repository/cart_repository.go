package repository

import (
	"context"

	"chickenshop/internal/domain/model"
)

type CartRepository interface {
	GetOrCreateActiveByUserID(ctx context.Context, userID int64) (model.Cart, error)
	FindActiveByUserID(ctx context.Context, userID int64) (model.Cart, error)
	UpdateStatus(ctx context.Context, cartID int64, status model.CartStatus) error
	Clear(ctx context.Context, cartID int64) error

	// 「追加」1回＝1行。同一商品でも行を増やす
	AppendItem(ctx context.Context, cartID int64, productName string) error
	ListItems(ctx context.Context, cartID int64) ([]model.CartItem, error)
}
