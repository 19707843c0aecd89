package models

import (
	"time"

	"gorm.io/gorm"
)

// Review 商品评价表
type Review struct {
	ID          uint           `gorm:"primarykey" json:"id"`                   // 主键
	ProductID   uint           `gorm:"not null;index" json:"product_id"`       // 商品ID（来自路由上下文）
	Name        string         `gorm:"type:varchar(255);not null" json:"name"` // 评价人名称
	Description string         `gorm:"type:text" json:"description"`           // 评价内容
	Date        time.Time      `gorm:"autoCreateTime;index" json:"date"`       // 评价时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                         // 软删除时间
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
