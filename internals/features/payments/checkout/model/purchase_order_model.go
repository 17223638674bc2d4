package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusExpired  = "expired"
	StatusCanceled = "canceled"
)

// PurchaseOrderModel tracks an online (midtrans) purchase of the same
// entities the QR flow sells.
type PurchaseOrderModel struct {
	OrderID        uuid.UUID  `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_id"`
	OrderStudentID uuid.UUID  `gorm:"column:order_student_id;type:uuid;not null;index" json:"order_student_id"`
	OrderType      string     `gorm:"column:order_type;type:varchar(10);not null" json:"order_type"`
	OrderEntityID  uuid.UUID  `gorm:"column:order_entity_id;type:uuid;not null" json:"order_entity_id"`
	OrderAmount    int64      `gorm:"column:order_amount;not null" json:"order_amount"`
	OrderStatus    string     `gorm:"column:order_status;type:varchar(10);not null;default:'pending'" json:"order_status"`
	OrderPaidAt    *time.Time `gorm:"column:order_paid_at" json:"order_paid_at,omitempty"`

	OrderCreatedAt time.Time `gorm:"column:order_created_at;not null;autoCreateTime" json:"order_created_at"`
	OrderUpdatedAt time.Time `gorm:"column:order_updated_at;not null;autoUpdateTime" json:"order_updated_at"`
}

func (PurchaseOrderModel) TableName() string { return "purchase_orders" }
