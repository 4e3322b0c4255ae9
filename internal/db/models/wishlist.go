package models

import "time"

// WishlistItem is a planned enhancement, entered by hand or promoted from a review.
type WishlistItem struct {
	ID              uint64         `gorm:"column:wishlist_id;primaryKey"`
	Source          string         `gorm:"not null"`
	EnhancementType string         `gorm:"column:enhancement_type;not null"`
	Details         string         `gorm:"type:text;not null"`
	Status          WishlistStatus `gorm:"type:varchar(32);not null;default:not_started;index"`
	Notes           string         `gorm:"type:text"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	Archived        bool           `gorm:"not null;default:false;index"`
}

// TableName keeps the historic table name.
func (WishlistItem) TableName() string { return "wishlist" }
