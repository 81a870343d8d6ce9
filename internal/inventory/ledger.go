package inventory

import (
	"errors"
	"sync"
)

// 在庫不足。減算は行われない
var ErrInsufficientStock = errors.New("insufficient stock")

// メニューに無い商品
var ErrUnknownProduct = errors.New("unknown product")

// Ledgerはプロセス内の在庫台帳。
// DBには置かない（再起動でリセットされる）。
// 同時通知の競合はmutexで直列化する。
type Ledger struct {
	mu    sync.Mutex
	stock map[string]int64
}

// 初期在庫から台帳を作る
func New(initial map[string]int64) *Ledger {
	stock := make(map[string]int64, len(initial))
	for name, qty := range initial {
		stock[name] = qty
	}
	return &Ledger{stock: stock}
}

// 在庫が足りるときだけ減算。足りなければ台帳は変えない
func (l *Ledger) Decrement(productName string, qty int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, ok := l.stock[productName]
	if !ok {
		return ErrUnknownProduct
	}

	if current < qty {
		return ErrInsufficientStock
	}

	l.stock[productName] = current - qty
	return nil
}

// 現在の在庫数を返す（未登録は0）
func (l *Ledger) Stock(productName string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stock[productName]
}

// 在庫の現在値を設定
func (l *Ledger) Set(productName string, qty int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stock[productName] = qty
}
