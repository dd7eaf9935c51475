package models

import "gorm.io/gorm"

// CartItem is one product in a user's cart. Cart state lives server-side
// keyed by the authenticated user, not in browser storage.
type CartItem struct {
	gorm.Model
	UserID    uint `gorm:"not null;index:idx_cart_user_product,unique" json:"user_id"`
	ProductID uint `gorm:"not null;index:idx_cart_user_product,unique" json:"product_id"`
	Quantity  int  `gorm:"default:1" json:"quantity"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// WishlistItem marks a product a user saved for later
type WishlistItem struct {
	gorm.Model
	UserID    uint `gorm:"not null;index:idx_wishlist_user_product,unique" json:"user_id"`
	ProductID uint `gorm:"not null;index:idx_wishlist_user_product,unique" json:"product_id"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
