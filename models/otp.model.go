package models

import (
	"time"

	"gorm.io/gorm"
)

// OTPKind identifies what an issued code is allowed to prove.
type OTPKind string

const (
	OTPKindRegistration  OTPKind = "registration"
	OTPKindPasswordReset OTPKind = "password-reset"
	OTPKindLogin         OTPKind = "login"
)

type OTP struct {
	gorm.Model
	Email     string    `gorm:"size:100;not null;index:idx_otp_email_kind" json:"email"`
	Code      string    `gorm:"size:6;not null" json:"code"`
	Kind      OTPKind   `gorm:"size:20;not null;default:'registration';index:idx_otp_email_kind" json:"kind"`
	Attempts  int       `gorm:"default:0" json:"attempts"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Verified  bool      `gorm:"default:false" json:"verified"`
}
