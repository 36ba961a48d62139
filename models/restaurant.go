package models

import "time"

type Restaurant struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(50);not null" json:"name"`
	ImageURL  string     `gorm:"type:varchar(255)" json:"image_url"`
	Cuisine   string     `gorm:"type:varchar(200)" json:"cuisine"`
	Rating    float64    `json:"rating"`
	MenuItems []MenuItem `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menu_items,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
