package models

import "time"

// OrderItem represents a single line within a placed order.
type OrderItem struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	OrderID   string `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"` // Unit price at the time the order was placed
	Quantity  int    `json:"quantity"`
}

// Order represents a confirmed checkout. The ID is a uuid; Reference is the
// short human-readable token shown to the buyer and is display-only.
type Order struct {
	ID            string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Reference     string      `json:"reference"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	Address       string      `json:"address"`
	Note          string      `json:"note,omitempty"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Subtotal      int64       `json:"subtotal"`
	ShippingFee   int64       `json:"shipping_fee"`
	Total         int64       `json:"total"`
	Status        string      `json:"status"` // "pending", "processing", "shipped", "delivered", "cancelled"
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
