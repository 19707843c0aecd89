package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer 顾客表（与身份提供方用户一一对应）
type Customer struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                   // 主键
	UserID     uint           `gorm:"not null;uniqueIndex" json:"user_id"`                    // 身份提供方用户ID
	Phone      string         `gorm:"type:varchar(32)" json:"phone"`                          // 电话
	BirthDate  *time.Time     `json:"birth_date"`                                             // 出生日期
	Membership string         `gorm:"type:varchar(1);not null;default:'B'" json:"membership"` // 会员等级（B/S/G）
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                // 创建时间
	UpdatedAt  time.Time      `json:"updated_at"`                                             // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                         // 软删除时间

	// 关联
	Orders []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"` // 顾客订单
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
