package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	SellerID    uint           `gorm:"index" json:"sellerId"`
	Name        string         `gorm:"size:255;not null;index" json:"name"`
	Description string         `gorm:"type:text;default:''" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Category    string         `gorm:"size:100;index" json:"category"`
	Subcategory string         `gorm:"size:100;index" json:"subcategory"`
	Images      datatypes.JSON `gorm:"type:json" json:"images"`
	Stock       int            `gorm:"default:0" json:"stock"`
	InStock     bool           `gorm:"default:true" json:"inStock"`
	Status      string         `gorm:"size:20;default:'active'" json:"status"` // active, inactive
	Views       uint           `gorm:"default:0" json:"views"`
	IsDeleted   bool           `gorm:"default:false" json:"is_deleted"`
}
