package models

import "time"

// AppRequest asks for an app or website to be built.
type AppRequest struct {
	ID              uint64           `gorm:"primaryKey"`
	Name            string           `gorm:"not null"`
	Email           string           `gorm:"not null"`
	Phone           string
	Type            string           `gorm:"column:type"`
	ProjectTimeline string           `gorm:"column:project_timeline"`
	Budget          string
	ProjectDetails  string           `gorm:"column:project_details;type:text"`
	Status          AppRequestStatus `gorm:"type:varchar(32);not null;default:new;index"`
	Notes           string           `gorm:"type:text"`
	TimeSubmitted   time.Time        `gorm:"column:time_submitted;autoCreateTime;index"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime"`
	Archived        bool             `gorm:"not null;default:false;index"`
}

// TableName keeps the historic table name.
func (AppRequest) TableName() string { return "app_requests" }
