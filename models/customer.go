package models

import "time"

// Customer menyimpan data profil tambahan untuk satu User.
type Customer struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Mobile    string `gorm:"type:varchar(15)" json:"mobile"`
	Address   string `gorm:"type:varchar(100)" json:"address"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
