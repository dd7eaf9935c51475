package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderStatus defines the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentProof is the customer-submitted evidence of an out-of-band payment.
// It is embedded in the order row so the admin queue can filter on the
// verified flag directly.
type PaymentProof struct {
	ImageURL   string     `gorm:"type:text;default:''" json:"imageUrl"`
	UploadedAt *time.Time `json:"uploadedAt"`
	Verified   bool       `gorm:"default:false" json:"verified"`
	VerifiedBy string     `gorm:"default:''" json:"verifiedBy"`
	VerifiedAt *time.Time `json:"verifiedAt"`
}

// Order is retained forever as an audit record; rows are never deleted.
type Order struct {
	gorm.Model
	OrderNumber   string         `gorm:"size:50;uniqueIndex;not null" json:"orderNumber"`
	UserID        uint           `gorm:"index" json:"userId"`
	Status        OrderStatus    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	TotalAmount   float64        `gorm:"not null" json:"totalAmount"`
	PaymentMethod string         `gorm:"size:50;default:''" json:"paymentMethod"`
	CustomerInfo  datatypes.JSON `gorm:"type:json" json:"customerInfo"`
	Items         datatypes.JSON `gorm:"type:json" json:"items"`
	BankDetails   datatypes.JSON `gorm:"type:json" json:"bankDetails"`
	PaymentProof  PaymentProof   `gorm:"embedded;embeddedPrefix:payment_proof_" json:"paymentProof"`
	AdminNotes    string         `gorm:"type:text;default:''" json:"adminNotes"`
}

// CustomerInfo is the shape stored in Order.CustomerInfo
type CustomerInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// OrderItem is one line inside Order.Items
type OrderItem struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

// BankDetails is the shape stored in Order.BankDetails
type BankDetails struct {
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Branch        string `json:"branch,omitempty"`
}
