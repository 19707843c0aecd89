package models

import "time"

// Order 订单表（仅能通过购物车结算创建）
type Order struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                       // 主键
	CustomerID    uint      `gorm:"not null;index" json:"customer_id"`                          // 顾客ID
	PlacedAt      time.Time `gorm:"autoCreateTime;index" json:"placed_at"`                      // 下单时间
	PaymentStatus string    `gorm:"type:varchar(1);not null;default:'P'" json:"payment_status"` // 支付状态（P/C/F）

	// 关联
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`                       // 顾客
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
