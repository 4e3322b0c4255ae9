package models

import "time"

// GameFeedback is a star rated review of the game.
type GameFeedback struct {
	ID        uint64         `gorm:"primaryKey"`
	Name      string         `gorm:"not null"`
	Email     string         // optional
	Stars     int            `gorm:"not null"`
	Review    string         `gorm:"type:text;not null"`
	Timestamp time.Time      `gorm:"column:timestamp;autoCreateTime;index"`
	Status    FeedbackStatus `gorm:"type:varchar(32);not null;default:new;index"`
}

// TableName keeps the historic table name.
func (GameFeedback) TableName() string { return "game_feedback" }
