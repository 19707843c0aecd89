package models

import "time"

// Cart 购物车表（匿名、临时，结算后删除）
type Cart struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"` // UUID 主键
	CreatedAt time.Time `gorm:"index" json:"created_at"`               // 创建时间

	// 关联
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}
