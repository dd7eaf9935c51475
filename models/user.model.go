package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage    string `gorm:"default:''"`
	Name            string `gorm:"default:''"`
	Email           string `gorm:"unique;not null"`
	Phone           string `gorm:"default:''"`
	Role            string `gorm:"default:'customer'"` // customer, seller, admin
	Status          string `gorm:"default:'active'"`   // active, suspended
	Password        string `gorm:"not null" json:"-"`
	IsEmailVerified bool   `gorm:"default:false"`

	// Seller fields
	StoreName     string `gorm:"default:''"`
	Address       string `gorm:"default:''"`
	PaymentMethod string `gorm:"default:''"`

	// Browsing history used by the recommendation engine
	SearchHistory datatypes.JSON `gorm:"type:json" json:"searchHistory,omitempty"`
	ProductViews  datatypes.JSON `gorm:"type:json" json:"productViews,omitempty"`

	LastLogin           time.Time  `gorm:"default:NULL"`
	FailedLoginAttempts int        `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	IsDeleted           bool       `gorm:"default:false"`
}

// SearchEntry is one record inside User.SearchHistory
type SearchEntry struct {
	Query       string    `json:"query"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Timestamp   time.Time `json:"timestamp"`
}

// ProductView is one record inside User.ProductViews
type ProductView struct {
	ProductID uint      `json:"productId"`
	Timestamp time.Time `json:"timestamp"`
}
