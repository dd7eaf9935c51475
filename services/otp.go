package services

import (
	"errors"
	"log"
	"strings"
	"time"
	"yafrican/models"
	"yafrican/utils"

	"gorm.io/gorm"
)

const (
	// OTPValidity is how long an issued code stays usable
	OTPValidity = 10 * time.Minute

	// MaxOTPAttempts bounds brute-force guessing per issued code
	MaxOTPAttempts = 5
)

var (
	ErrOTPNotFound     = errors.New("OTP not found")
	ErrOTPExpired      = errors.New("OTP has expired")
	ErrOTPMismatch     = errors.New("invalid OTP")
	ErrTooManyAttempts = errors.New("too many failed attempts")
)

// OTPService issues and verifies one-time passcodes. Delivery of the code to
// the user (email) is the caller's concern; this service only owns the record.
type OTPService struct {
	db *gorm.DB
}

func NewOTPService(db *gorm.DB) *OTPService {
	return &OTPService{db: db}
}

// normalizeEmail lower-cases the identity key so a@B.com and A@b.com share one record
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Issue generates a fresh 6-digit code for (email, kind), invalidating any
// code issued earlier for the same pair. Returns the code for out-of-band
// delivery.
func (s *OTPService) Issue(email string, kind models.OTPKind) (string, error) {
	email = normalizeEmail(email)

	code, err := utils.GenerateOTP()
	if err != nil {
		return "", err
	}

	// Delete-before-insert keeps at most one live code per (email, kind),
	// so requesting a new code closes the window on the old one.
	if err := s.db.Unscoped().Where("email = ? AND kind = ?", email, kind).Delete(&models.OTP{}).Error; err != nil {
		return "", err
	}

	record := models.OTP{
		Email:     email,
		Code:      code,
		Kind:      kind,
		Attempts:  0,
		ExpiresAt: time.Now().Add(OTPValidity),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return "", err
	}

	return code, nil
}

// Verify checks a submitted code against the stored record for (email, kind).
// A wrong code costs one attempt; the record is deleted once MaxOTPAttempts
// is reached so a blocked code cannot be retried. On a match the record is
// marked verified and, when deleteAfterVerify is set, removed so the code is
// single-use. With deleteAfterVerify false the verified record stays behind
// for a later step (registration completion) to re-check.
func (s *OTPService) Verify(email, code string, kind models.OTPKind, deleteAfterVerify bool) error {
	email = normalizeEmail(email)

	var record models.OTP
	err := s.db.Where("email = ? AND kind = ? AND expires_at > ?", email, kind, time.Now()).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Distinguish a stale code from one that never existed
			var expired int64
			s.db.Model(&models.OTP{}).Where("email = ? AND kind = ?", email, kind).Count(&expired)
			if expired > 0 {
				return ErrOTPExpired
			}
			return ErrOTPNotFound
		}
		return err
	}

	if record.Attempts >= MaxOTPAttempts {
		// A blocked code is spent; the user must request a new one
		if err := s.db.Unscoped().Delete(&record).Error; err != nil {
			log.Printf("Error deleting blocked OTP record %d: %v", record.ID, err)
		}
		return ErrTooManyAttempts
	}

	if record.Code != code {
		// Single conditional UPDATE so concurrent guesses serialize in the store
		if err := s.db.Model(&models.OTP{}).Where("id = ?", record.ID).
			UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error; err != nil {
			log.Printf("Error incrementing OTP attempts for record %d: %v", record.ID, err)
		}
		return ErrOTPMismatch
	}

	if deleteAfterVerify {
		return s.db.Unscoped().Delete(&record).Error
	}

	// Guard on the code in the WHERE clause; a concurrent re-issue must not
	// see its fresh record flipped by a stale match.
	return s.db.Model(&models.OTP{}).Where("id = ? AND code = ?", record.ID, code).
		UpdateColumn("verified", true).Error
}

// OTPStatus describes the live record for (email, kind), if any
type OTPStatus struct {
	Exists           bool `json:"exists"`
	Attempts         int  `json:"attempts,omitempty"`
	Verified         bool `json:"verified,omitempty"`
	ExpiresInSeconds int  `json:"expiresInSeconds,omitempty"`
}

// Status reports whether a live code exists without mutating anything
func (s *OTPService) Status(email string, kind models.OTPKind) (OTPStatus, error) {
	email = normalizeEmail(email)

	var record models.OTP
	err := s.db.Where("email = ? AND kind = ? AND expires_at > ?", email, kind, time.Now()).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OTPStatus{Exists: false}, nil
		}
		return OTPStatus{}, err
	}

	return OTPStatus{
		Exists:           true,
		Attempts:         record.Attempts,
		Verified:         record.Verified,
		ExpiresInSeconds: int(time.Until(record.ExpiresAt).Seconds()),
	}, nil
}

// CleanupExpired bulk-deletes every record whose expiry has passed. Idempotent;
// the cron sweep calls it on a timer.
func (s *OTPService) CleanupExpired() (int64, error) {
	result := s.db.Unscoped().Where("expires_at <= ?", time.Now()).Delete(&models.OTP{})
	return result.RowsAffected, result.Error
}
