package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SupportTicket struct {
	gorm.Model
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	OrderNumber string         `gorm:"size:50;default:''" json:"order_number"` // optional link to an order
	Title       string         `gorm:"size:255;not null" json:"title"`
	Subject     string         `gorm:"size:255;default:''" json:"subject"`
	Message     datatypes.JSON `gorm:"type:json" json:"message"` // conversation thread
	Status      string         `gorm:"size:20;default:'OPEN'" json:"status"`
	Priority    string         `gorm:"size:20;default:'MEDIUM'" json:"priority"`
	Category    string         `gorm:"size:50;default:'GENERAL'" json:"category"`
	IsDeleted   bool           `gorm:"default:false" json:"is_deleted"`
}
