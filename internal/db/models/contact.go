// Package models contains database model definitions.
package models

import "time"

// ContactSubmission is a message sent through the public contact form.
type ContactSubmission struct {
	ID        uint64        `gorm:"primaryKey"`
	Name      string        `gorm:"not null"`
	Email     string        `gorm:"not null"`
	Message   string        `gorm:"type:text;not null"`
	Timestamp time.Time     `gorm:"column:timestamp;autoCreateTime;index"`
	Status    ContactStatus `gorm:"type:varchar(32);not null;default:unread;index"`
}

// TableName keeps the historic table name.
func (ContactSubmission) TableName() string { return "contact_me" }
