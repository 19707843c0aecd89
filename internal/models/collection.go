package models

import (
	"time"

	"gorm.io/gorm"
)

// Collection 商品集合表
type Collection struct {
	ID        uint           `gorm:"primarykey" json:"id"`                    // 主键
	Title     string         `gorm:"type:varchar(255);not null" json:"title"` // 集合标题
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                              // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                          // 软删除时间

	// 关联
	Products []Product `gorm:"foreignKey:CollectionID" json:"products,omitempty"` // 集合下的商品
}

// TableName 指定表名
func (Collection) TableName() string {
	return "collections"
}
