package models

import "time"

// SupportTicket reports a problem with a page of the site.
type SupportTicket struct {
	ID        uint64        `gorm:"primaryKey"`
	Name      string        `gorm:"not null"`
	Email     string        // optional
	Page      string        `gorm:"not null"`
	Issue     string        `gorm:"type:text;not null"`
	Timestamp time.Time     `gorm:"column:timestamp;autoCreateTime;index"`
	Status    SupportStatus `gorm:"type:varchar(32);not null;default:new;index"`
}

// TableName keeps the historic table name.
func (SupportTicket) TableName() string { return "support" }
