package models

import "time"

// OrderItem adalah snapshot satu baris keranjang saat checkout.
// MenuItemID sengaja tanpa FK constraint: riwayat order harus tetap terbaca
// walaupun menu item atau restorannya sudah dihapus dari katalog.
type OrderItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	Order      Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint      `gorm:"not null" json:"menu_item_id"`
	ItemName   string    `gorm:"type:varchar(50);not null" json:"item_name"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Price      float64   `gorm:"type:decimal(8,2);not null" json:"price"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `json:"-"`
}
