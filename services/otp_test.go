package services

import (
	"testing"
	"time"
	"yafrican/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.OTP{}, &models.Order{}))
	return db
}

func TestIssueAndVerify(t *testing.T) {
	svc := NewOTPService(newTestDB(t))

	code, err := svc.Issue("user@example.com", models.OTPKindRegistration)
	require.NoError(t, err)
	assert.Len(t, code, 6)

	err = svc.Verify("user@example.com", code, models.OTPKindRegistration, true)
	require.NoError(t, err)

	// Single-use: the record is gone after a successful verify
	status, err := svc.Status("user@example.com", models.OTPKindRegistration)
	require.NoError(t, err)
	assert.False(t, status.Exists)
}

func TestVerifyMismatchCountsAttempt(t *testing.T) {
	svc := NewOTPService(newTestDB(t))

	code, err := svc.Issue("user@example.com", models.OTPKindRegistration)
	require.NoError(t, err)

	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}

	err = svc.Verify("user@example.com", wrong, models.OTPKindRegistration, true)
	assert.ErrorIs(t, err, ErrOTPMismatch)

	status, err := svc.Status("user@example.com", models.OTPKindRegistration)
	require.NoError(t, err)
	assert.True(t, status.Exists)
	assert.Equal(t, 1, status.Attempts)

	// The code still works after a failed guess
	err = svc.Verify("user@example.com", code, models.OTPKindRegistration, true)
	assert.NoError(t, err)
}

func TestVerifyBlockedAfterMaxAttempts(t *testing.T) {
	svc := NewOTPService(newTestDB(t))

	code, err := svc.Issue("user@example.com", models.OTPKindLogin)
	require.NoError(t, err)

	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}

	for i := 0; i < MaxOTPAttempts; i++ {
		err = svc.Verify("user@example.com", wrong, models.OTPKindLogin, true)
		assert.ErrorIs(t, err, ErrOTPMismatch)
	}

	// Even the correct code is refused once the attempt budget is spent
	err = svc.Verify("user@example.com", code, models.OTPKindLogin, true)
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	// The blocked record is deleted, so the next try sees nothing
	err = svc.Verify("user@example.com", code, models.OTPKindLogin, true)
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestReissueInvalidatesOldCode(t *testing.T) {
	svc := NewOTPService(newTestDB(t))

	first, err := svc.Issue("user@example.com", models.OTPKindRegistration)
	require.NoError(t, err)

	second, err := svc.Issue("user@example.com", models.OTPKindRegistration)
	require.NoError(t, err)

	if first != second {
		err = svc.Verify("user@example.com", first, models.OTPKindRegistration, true)
		assert.ErrorIs(t, err, ErrOTPMismatch)
	}

	err = svc.Verify("user@example.com", second, models.OTPKindRegistration, true)
	assert.NoError(t, err)
}

func TestVerifyExpiredCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(db)

	code, err := svc.Issue("user@example.com", models.OTPKindPasswordReset)
	require.NoError(t, err)

	// Age the record past its validity window
	err = db.Model(&models.OTP{}).Where("email = ?", "user@example.com").
		UpdateColumn("expires_at", time.Now().Add(-time.Minute)).Error
	require.NoError(t, err)

	err = svc.Verify("user@example.com", code, models.OTPKindPasswordReset, true)
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestVerifyUnknownEmail(t *testing.T) {
	svc := NewOTPService(newTestDB(t))

	err := svc.Verify("nobody@example.com", "123456", models.OTPKindRegistration, true)
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestVerifyKeepsRecordForLaterStep(t *testing.T) {
	svc := NewOTPService(newTestDB(t))

	code, err := svc.Issue("user@example.com", models.OTPKindRegistration)
	require.NoError(t, err)

	err = svc.Verify("user@example.com", code, models.OTPKindRegistration, false)
	require.NoError(t, err)

	status, err := svc.Status("user@example.com", models.OTPKindRegistration)
	require.NoError(t, err)
	assert.True(t, status.Exists)
	assert.True(t, status.Verified)

	// The completion step re-checks the same code and consumes it
	err = svc.Verify("user@example.com", code, models.OTPKindRegistration, true)
	require.NoError(t, err)

	status, err = svc.Status("user@example.com", models.OTPKindRegistration)
	require.NoError(t, err)
	assert.False(t, status.Exists)
}

func TestEmailNormalization(t *testing.T) {
	svc := NewOTPService(newTestDB(t))

	code, err := svc.Issue("  User@Example.COM ", models.OTPKindRegistration)
	require.NoError(t, err)

	err = svc.Verify("user@example.com", code, models.OTPKindRegistration, true)
	assert.NoError(t, err)
}

func TestKindsAreIsolated(t *testing.T) {
	svc := NewOTPService(newTestDB(t))

	regCode, err := svc.Issue("user@example.com", models.OTPKindRegistration)
	require.NoError(t, err)

	resetCode, err := svc.Issue("user@example.com", models.OTPKindPasswordReset)
	require.NoError(t, err)

	// Issuing a reset code must not disturb the registration code
	err = svc.Verify("user@example.com", regCode, models.OTPKindRegistration, true)
	assert.NoError(t, err)

	err = svc.Verify("user@example.com", resetCode, models.OTPKindPasswordReset, true)
	assert.NoError(t, err)
}

func TestCleanupExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(db)

	_, err := svc.Issue("live@example.com", models.OTPKindRegistration)
	require.NoError(t, err)

	_, err = svc.Issue("stale@example.com", models.OTPKindRegistration)
	require.NoError(t, err)

	err = db.Model(&models.OTP{}).Where("email = ?", "stale@example.com").
		UpdateColumn("expires_at", time.Now().Add(-time.Hour)).Error
	require.NoError(t, err)

	removed, err := svc.CleanupExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	status, err := svc.Status("live@example.com", models.OTPKindRegistration)
	require.NoError(t, err)
	assert.True(t, status.Exists)

	// A second sweep is a no-op
	removed, err = svc.CleanupExpired()
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestStatusReportsExpiry(t *testing.T) {
	svc := NewOTPService(newTestDB(t))

	_, err := svc.Issue("user@example.com", models.OTPKindLogin)
	require.NoError(t, err)

	status, err := svc.Status("user@example.com", models.OTPKindLogin)
	require.NoError(t, err)
	assert.True(t, status.Exists)
	assert.Zero(t, status.Attempts)
	assert.False(t, status.Verified)
	assert.LessOrEqual(t, status.ExpiresInSeconds, int(OTPValidity.Seconds()))
	assert.Greater(t, status.ExpiresInSeconds, 0)
}
