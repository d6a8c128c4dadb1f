package models

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (db *Database) GetOrders(skip int, limit int) ([]Order, error) {
	var orders []Order
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	err := db.GormDB.Offset(skip).Limit(limit).Find(&orders).Error
	if err != nil {
		slog.Error("error fetching orders", "error", err)
		return nil, err
	}
	return orders, nil
}

func (db *Database) GetOrder(orderId uint) (*Order, error) {
	var order Order
	err := db.GormDB.First(&order, orderId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("error fetching order", "orderId", orderId, "error", err)
		return nil, err
	}
	return &order, nil
}

// CreateOrder opens a new order in the Request state with the creator
// recorded as requested_by. Product and customer references are checked
// in the same transaction that inserts the row.
func (db *Database) CreateOrder(orderNumber int, productId uint, customerId uint, requestedBy uint) (*Order, error) {
	order := &Order{
		OrderNumber:   orderNumber,
		ProductID:     productId,
		CustomerID:    customerId,
		Status:        OrderRequest,
		RequestedBy:   requestedBy,
		DateRequested: time.Now(),
	}

	err := db.GormDB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Product{}).Where("id = ?", productId).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return NewReferentialError(fmt.Sprintf("product %v does not exist", productId))
		}
		if err := tx.Model(&User{}).Where("id = ?", customerId).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return NewReferentialError(fmt.Sprintf("customer %v does not exist", customerId))
		}
		return translateStoreError(tx.Create(order).Error,
			fmt.Sprintf("order number %v already exists", orderNumber),
			"invalid product or customer id")
	})
	if err != nil {
		slog.Error("error creating order", "orderNumber", orderNumber, "error", err)
		return nil, err
	}

	slog.Info("created order", "orderId", order.ID, "orderNumber", orderNumber, "requestedBy", requestedBy)
	return order, nil
}

// applyTransition mutates the order in memory if the transition is
// legal. Audit fields are set here and nowhere else, so approve, cancel
// and the status-patch path all persist identical data.
func applyTransition(order *Order, to OrderStatus, actorId uint, now time.Time) error {
	if !CanTransition(order.Status, to) {
		return NewInvalidTransitionError(order.Status, to)
	}
	switch to {
	case OrderApproved:
		order.Status = OrderApproved
		order.ApprovedBy = &actorId
		order.DateApproved = &now
	case OrderCancelled:
		order.Status = OrderCancelled
		order.CancelledBy = &actorId
		order.DateCancelled = &now
	default:
		return NewInvalidTransitionError(order.Status, to)
	}
	return nil
}

// lockOrder re-reads the order with a row lock inside tx so concurrent
// transition attempts serialize on the current status rather than on a
// pre-fetched copy.
func lockOrder(tx *gorm.DB, orderId uint) (*Order, error) {
	var order Order
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (db *Database) ApproveOrder(orderId uint, approvedBy uint) (*Order, error) {
	return db.transitionOrder(orderId, OrderApproved, approvedBy)
}

func (db *Database) CancelOrder(orderId uint, cancelledBy uint) (*Order, error) {
	return db.transitionOrder(orderId, OrderCancelled, cancelledBy)
}

func (db *Database) transitionOrder(orderId uint, to OrderStatus, actorId uint) (*Order, error) {
	var order *Order
	err := db.GormDB.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = lockOrder(tx, orderId)
		if err != nil {
			return err
		}
		if order == nil {
			return nil
		}
		if err := applyTransition(order, to, actorId, time.Now()); err != nil {
			return err
		}
		return tx.Save(order).Error
	})
	if err != nil {
		slog.Error("error transitioning order", "orderId", orderId, "to", to, "error", err)
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	slog.Info("order transitioned", "orderId", orderId, "status", order.Status, "actor", actorId)
	return order, nil
}

// UpdateOrder patches the fields present in patch. A status patch goes
// through the same transition rules as ApproveOrder/CancelOrder; there
// is no side channel into a terminal state.
func (db *Database) UpdateOrder(orderId uint, patch OrderPatch, updatedBy uint) (*Order, error) {
	var order *Order
	err := db.GormDB.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = lockOrder(tx, orderId)
		if err != nil {
			return err
		}
		if order == nil {
			return nil
		}
		if patch.OrderNumber != nil {
			order.OrderNumber = *patch.OrderNumber
		}
		if patch.ProductID != nil {
			var count int64
			if err := tx.Model(&Product{}).Where("id = ?", *patch.ProductID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return NewReferentialError(fmt.Sprintf("product %v does not exist", *patch.ProductID))
			}
			order.ProductID = *patch.ProductID
		}
		if patch.CustomerID != nil {
			var count int64
			if err := tx.Model(&User{}).Where("id = ?", *patch.CustomerID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return NewReferentialError(fmt.Sprintf("customer %v does not exist", *patch.CustomerID))
			}
			order.CustomerID = *patch.CustomerID
		}
		if patch.Status != nil {
			if err := applyTransition(order, *patch.Status, updatedBy, time.Now()); err != nil {
				return err
			}
		}
		return translateStoreError(tx.Save(order).Error,
			fmt.Sprintf("order number %v already exists", order.OrderNumber),
			"invalid product or customer id")
	})
	if err != nil {
		slog.Error("error updating order", "orderId", orderId, "error", err)
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	slog.Info("updated order", "orderId", orderId, "updatedBy", updatedBy)
	return order, nil
}

// DeleteOrder removes the order regardless of its status. Deletion is
// deliberately not subject to the transition rules.
func (db *Database) DeleteOrder(orderId uint) (bool, error) {
	result := db.GormDB.Delete(&Order{}, orderId)
	if result.Error != nil {
		slog.Error("error deleting order", "orderId", orderId, "error", result.Error)
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	slog.Info("deleted order", "orderId", orderId)
	return true, nil
}
