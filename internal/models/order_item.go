package models

// OrderItem 订单项表（单价为下单时快照，此后不可变）
type OrderItem struct {
	ID        uint  `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID   uint  `gorm:"not null;index" json:"order_id"`                          // 订单ID
	ProductID uint  `gorm:"not null;index" json:"product_id"`                        // 商品ID
	UnitPrice Money `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 下单时单价快照
	Quantity  int   `gorm:"not null" json:"quantity"`                                // 数量

	// 关联
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 商品
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
