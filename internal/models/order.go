package models

import (
	"crypto/rand"
	"time"

	"gorm.io/gorm"
)

// OrderStatus defines possible order statuses. Transition legality depends
// on (status, fulfillment_type) jointly - see internal/fulfillment.
type OrderStatus string

const (
	StatusPaid        OrderStatus = "paid"         // payment confirmed, awaiting packing
	StatusPacked      OrderStatus = "packed"       // packed, awaiting dispatch or handover
	StatusTransit     OrderStatus = "transit"      // with the courier
	StatusReady       OrderStatus = "ready"        // at the pickup point
	StatusDelivered   OrderStatus = "delivered"    // terminal (courier)
	StatusCollected   OrderStatus = "collected"    // terminal (pickup)
	StatusPOSComplete OrderStatus = "pos_complete" // terminal (point of sale)
)

// FulfillmentType defines how an order reaches the customer
type FulfillmentType string

const (
	FulfillmentPickup          FulfillmentType = "pickup"
	FulfillmentCourier         FulfillmentType = "courier"
	FulfillmentWarehousePickup FulfillmentType = "warehouse_pickup"
	FulfillmentPOS             FulfillmentType = "pos"
)

// Order represents a customer or point-of-sale order
type Order struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`

	Status          OrderStatus     `gorm:"default:'paid';index" json:"status"`
	FulfillmentType FulfillmentType `gorm:"not null;index" json:"fulfillmentType"`

	CustomerID *string `gorm:"type:uuid;index" json:"customerId,omitempty"`
	CashierID  *string `gorm:"type:uuid;index" json:"cashierId,omitempty"`

	PickupLocationID *string `gorm:"type:uuid;index" json:"pickupLocationId,omitempty"`
	DeliveryAddress  string  `json:"deliveryAddress,omitempty"`

	TotalAmount float64 `json:"totalAmount"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Customer       *Profile    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Cashier        *Profile    `gorm:"foreignKey:CashierID" json:"cashier,omitempty"`
	PickupLocation *Location   `gorm:"foreignKey:PickupLocationID" json:"pickupLocation,omitempty"`
	Items          []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName specifies the table name for Order model
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate generates an order number before creating
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNumber == "" {
		prefix := "ORD"
		if o.FulfillmentType == FulfillmentPOS {
			prefix = "POS"
		}
		o.OrderNumber = generateOrderNumber(prefix)
	}
	return nil
}

// generateOrderNumber creates a unique order number
func generateOrderNumber(prefix string) string {
	return prefix + time.Now().Format("20060102") + "-" + randomString(6)
}

// randomString generates a random string of given length. The suffix must be
// random, not clock-derived: two orders created in the same instant would
// otherwise collide on the unique order_number index.
func randomString(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	if _, err := rand.Read(result); err != nil {
		now := time.Now().UnixNano()
		for i := 0; i < length; i++ {
			result[i] = charset[(now+int64(i*7))%int64(len(charset))]
		}
		return string(result)
	}
	for i := range result {
		result[i] = charset[int(result[i])%len(charset)]
	}
	return string(result)
}

// IsTerminal reports whether the order accepts no further transitions
func (o *Order) IsTerminal() bool {
	switch o.Status {
	case StatusDelivered, StatusCollected, StatusPOSComplete:
		return true
	}
	return false
}

// OrderItem is a line of an order
type OrderItem struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OrderID   string `gorm:"type:uuid;index;not null" json:"orderId"`
	ProductID string `gorm:"type:uuid;index;not null" json:"productId"`
	SizeName  string `gorm:"default:''" json:"sizeName,omitempty"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
