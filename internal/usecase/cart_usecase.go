package usecase

import (
	"context"
	"net/http"

	"chickenshop/internal/domain/menu"
	"chickenshop/internal/domain/model"
	repo "chickenshop/internal/repository"
)

// CartUsecaseはカート閲覧と「カートに追加」の業務ロジック。
// 注文確定（checkout）はOrderUsecase側。
type CartUsecase struct {
	cartRepo repo.CartRepository
}

func NewCartUsecase(cartRepo repo.CartRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo}
}

// CartResponseは追加順の商品名と合計金額。
// 数量の概念は無い（2回追加すれば同じ名前が2回並ぶ）。
type CartResponse struct {
	Items []string `json:"items"`
	Total int64    `json:"total"`
}

// GetCartはカート取得（無ければACTIVEを作って空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return buildCartResponse(itemNames(items)), nil
}

// AddToCartはカートに1件追加する。
// メニューに無い商品名は弾く。同一商品の重複はそのまま行を増やす。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, item string) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if !menu.Contains(item) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "unknown item")
	}

	// ACTIVEカート取得（無ければ作成）
	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.AppendItem(ctx, cart.ID, item); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return buildCartResponse(itemNames(items)), nil
}

func itemNames(items []model.CartItem) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.ProductName)
	}
	return names
}

func buildCartResponse(names []string) CartResponse {
	return CartResponse{
		Items: names,
		Total: int64(len(names)) * menu.UnitPrice,
	}
}
