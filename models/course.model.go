package models

import "gorm.io/gorm"

// Course represents a purchasable course listed on the marketplace
type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // price in minor currency units (cents)
	ImageID     string `json:"image_id"`
	ImageURL    string `json:"image_url"`
	CreatorID   uint   `json:"creator_id" gorm:"index;not null"` // admin who created the course
	IsDeleted   bool   `gorm:"default:false"`
}
