package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderRequest   OrderStatus = "REQUEST"
	OrderApproved  OrderStatus = "APPROVED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// orderTransitions is the closed transition table. A status missing
// from a state's slice is not reachable from it; terminal states map
// to an empty slice.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderRequest:   {OrderApproved, OrderCancelled},
	OrderApproved:  {},
	OrderCancelled: {},
}

func CanTransition(from, to OrderStatus) bool {
	allowed, ok := orderTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

type Order struct {
	gorm.Model
	OrderNumber   int `gorm:"uniqueIndex:idx_order_number"`
	ProductID     uint
	Product       *Product
	CustomerID    uint
	Customer      *User
	Status        OrderStatus `gorm:"default:'REQUEST'"`
	RequestedBy   uint
	ApprovedBy    *uint
	CancelledBy   *uint
	DateRequested time.Time
	DateApproved  *time.Time
	DateCancelled *time.Time
}

func (o *Order) MapToJsonStruct() interface{} {
	return struct {
		Id            uint       `json:"id"`
		OrderNumber   int        `json:"order_number"`
		ProductID     uint       `json:"product_id"`
		CustomerID    uint       `json:"customer_id"`
		Status        string     `json:"status"`
		RequestedBy   uint       `json:"requested_by"`
		ApprovedBy    *uint      `json:"approved_by"`
		CancelledBy   *uint      `json:"cancelled_by"`
		DateRequested time.Time  `json:"date_requested"`
		DateApproved  *time.Time `json:"date_approved"`
		DateCancelled *time.Time `json:"date_cancelled"`
	}{
		Id:            o.ID,
		OrderNumber:   o.OrderNumber,
		ProductID:     o.ProductID,
		CustomerID:    o.CustomerID,
		Status:        string(o.Status),
		RequestedBy:   o.RequestedBy,
		ApprovedBy:    o.ApprovedBy,
		CancelledBy:   o.CancelledBy,
		DateRequested: o.DateRequested,
		DateApproved:  o.DateApproved,
		DateCancelled: o.DateCancelled,
	}
}

// OrderPatch carries the fields an update may touch. Nil means "leave
// unchanged". A non-nil Status is routed through the same transition
// rules as ApproveOrder/CancelOrder.
type OrderPatch struct {
	OrderNumber *int
	ProductID   *uint
	CustomerID  *uint
	Status      *OrderStatus
}
