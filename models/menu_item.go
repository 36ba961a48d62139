package models

import "time"

type MenuItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name         string     `gorm:"type:varchar(50);not null" json:"name"`
	Description  string     `gorm:"type:varchar(200)" json:"description"`
	Price        float64    `gorm:"type:decimal(8,2);not null" json:"price"`
	IsVeg        bool       `gorm:"not null;default:true" json:"is_veg"`
	ImageURL     string     `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
