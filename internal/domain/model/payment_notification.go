package model

import "time"

// 決済プロセッサからのIPN（サーバー間通知）の処理済みレコード。
// txn_idのuniqueIndexで再送（リプレイ）を検知する。
type PaymentNotification struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TxnID     string `gorm:"type:varchar(255);not null;uniqueIndex" json:"txn_id"`
	ItemName  string `gorm:"type:varchar(255);not null" json:"item_name"`
	Quantity  int64  `gorm:"not null" json:"quantity"`
	//金額はプロセッサの表記のまま保存する（小数を作らない）
	Amount       string    `gorm:"type:varchar(32);not null" json:"amount"`
	EmailAddress string    `gorm:"type:varchar(255);not null" json:"email_address"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
