package services

import (
	"testing"
	"time"
	"yafrican/middleware"
	"yafrican/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testAdmin = middleware.AdminIdentity{
	UserID: 1,
	Name:   "Ops Admin",
	Email:  "ops@yafrican.com",
}

func seedOrder(t *testing.T, db *gorm.DB) models.Order {
	t.Helper()

	uploaded := time.Now().Add(-time.Hour)
	order := models.Order{
		OrderNumber: "ORD-TEST00000001",
		UserID:      42,
		Status:      models.OrderStatusPending,
		TotalAmount: 149.99,
		PaymentProof: models.PaymentProof{
			ImageURL:   "https://res.cloudinary.com/demo/proof.jpg",
			UploadedAt: &uploaded,
		},
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestConfirmOrderMarksProofVerified(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db)
	svc := NewOrderVerificationService(db, true)

	updated, err := svc.SetOrderStatus(order.ID, models.OrderStatusConfirmed, testAdmin, "payment matched bank statement")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusConfirmed, updated.Status)
	assert.True(t, updated.PaymentProof.Verified)
	assert.Equal(t, testAdmin.Name, updated.PaymentProof.VerifiedBy)
	require.NotNil(t, updated.PaymentProof.VerifiedAt)
	assert.WithinDuration(t, time.Now(), *updated.PaymentProof.VerifiedAt, 5*time.Second)
	assert.Equal(t, "payment matched bank statement", updated.AdminNotes)
}

func TestCancelOrderClearsVerifiedFlag(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db)
	svc := NewOrderVerificationService(db, true)

	_, err := svc.SetOrderStatus(order.ID, models.OrderStatusConfirmed, testAdmin, "")
	require.NoError(t, err)

	updated, err := svc.SetOrderStatus(order.ID, models.OrderStatusCancelled, testAdmin, "proof was for another order")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusCancelled, updated.Status)
	assert.False(t, updated.PaymentProof.Verified)
	assert.Equal(t, "proof was for another order", updated.AdminNotes)
}

func TestSetOrderStatusRejectsPending(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db)
	svc := NewOrderVerificationService(db, true)

	_, err := svc.SetOrderStatus(order.ID, models.OrderStatusPending, testAdmin, "")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.SetOrderStatus(order.ID, models.OrderStatus("shipped"), testAdmin, "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetOrderStatusUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderVerificationService(db, true)

	_, err := svc.SetOrderStatus(9999, models.OrderStatusConfirmed, testAdmin, "")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestReversalDisabledLocksFinalStatus(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db)
	svc := NewOrderVerificationService(db, false)

	_, err := svc.SetOrderStatus(order.ID, models.OrderStatusConfirmed, testAdmin, "")
	require.NoError(t, err)

	_, err = svc.SetOrderStatus(order.ID, models.OrderStatusCancelled, testAdmin, "")
	assert.ErrorIs(t, err, ErrStatusReversal)

	// Repeating the settled status is still allowed
	updated, err := svc.SetOrderStatus(order.ID, models.OrderStatusConfirmed, testAdmin, "double-checked")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, updated.Status)
	assert.Equal(t, "double-checked", updated.AdminNotes)
}

func TestReversalEnabledAllowsSwitch(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db)
	svc := NewOrderVerificationService(db, true)

	_, err := svc.SetOrderStatus(order.ID, models.OrderStatusCancelled, testAdmin, "")
	require.NoError(t, err)

	updated, err := svc.SetOrderStatus(order.ID, models.OrderStatusConfirmed, testAdmin, "customer resent proof")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, updated.Status)
	assert.True(t, updated.PaymentProof.Verified)
}

func TestEmptyNotesPreserveExisting(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db)
	svc := NewOrderVerificationService(db, true)

	_, err := svc.SetOrderStatus(order.ID, models.OrderStatusConfirmed, testAdmin, "first note")
	require.NoError(t, err)

	updated, err := svc.SetOrderStatus(order.ID, models.OrderStatusConfirmed, testAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, "first note", updated.AdminNotes)
}
