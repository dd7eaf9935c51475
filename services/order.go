package services

import (
	"errors"
	"time"
	"yafrican/middleware"
	"yafrican/models"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidStatus  = errors.New(`invalid status, use "confirmed" or "cancelled"`)
	ErrStatusReversal = errors.New("order has already been finalized")
)

// OrderVerificationService applies the admin review verdict to an order.
// Confirming an order marks its payment proof verified; cancelling clears the
// flag. Orders are audit records and never deleted.
type OrderVerificationService struct {
	db            *gorm.DB
	allowReversal bool
}

func NewOrderVerificationService(db *gorm.DB, allowReversal bool) *OrderVerificationService {
	return &OrderVerificationService{db: db, allowReversal: allowReversal}
}

// SetOrderStatus moves an order to confirmed or cancelled on behalf of the
// given admin and returns the updated snapshot. Reverting to pending is never
// permitted. When reversal is disabled, a finalized order only accepts a
// repeat of its current status.
func (s *OrderVerificationService) SetOrderStatus(orderID uint, newStatus models.OrderStatus, admin middleware.AdminIdentity, notes string) (*models.Order, error) {
	if newStatus != models.OrderStatusConfirmed && newStatus != models.OrderStatusCancelled {
		return nil, ErrInvalidStatus
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status": newStatus,
	}
	if notes != "" {
		updates["admin_notes"] = notes
	}

	if newStatus == models.OrderStatusConfirmed {
		updates["payment_proof_verified"] = true
		updates["payment_proof_verified_by"] = admin.Name
		updates["payment_proof_verified_at"] = now
	} else {
		updates["payment_proof_verified"] = false
	}

	tx := s.db.Model(&models.Order{}).Where("id = ?", orderID)
	if !s.allowReversal {
		// Guard in the WHERE clause so two racing admins cannot flip a
		// finalized order back and forth.
		tx = tx.Where("status = ? OR status = ?", models.OrderStatusPending, newStatus)
	}

	result := tx.Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		s.db.Model(&models.Order{}).Where("id = ?", orderID).Count(&count)
		if count == 0 {
			return nil, ErrOrderNotFound
		}
		return nil, ErrStatusReversal
	}

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
