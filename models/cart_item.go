package models

import "time"

type CartItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	CartID     uint     `gorm:"not null;index:idx_cart_menu_item,unique" json:"cart_id"`
	Cart       Cart     `gorm:"foreignKey:CartID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint     `gorm:"not null;index:idx_cart_menu_item,unique" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menu_item"`
	Quantity   int      `gorm:"not null;default:1" json:"quantity"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Subtotal dihitung dari harga katalog saat ini, bukan nilai tersimpan.
func (ci *CartItem) Subtotal() float64 {
	return ci.MenuItem.Price * float64(ci.Quantity)
}
