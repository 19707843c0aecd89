package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                    // 主键
	CollectionID uint           `gorm:"not null;index" json:"collection_id"`                     // 所属集合ID
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`                 // 商品标题
	Slug         string         `gorm:"type:varchar(255);not null;index" json:"slug"`            // 由标题派生的唯一标识
	Description  string         `gorm:"type:text" json:"description"`                            // 商品描述
	UnitPrice    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 单价
	Inventory    int            `gorm:"not null;default:0" json:"inventory"`                     // 库存数量
	LastUpdate   time.Time      `gorm:"autoUpdateTime;index" json:"last_update"`                 // 最后更新时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                 // 创建时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                          // 软删除时间

	// 关联
	Collection *Collection `gorm:"foreignKey:CollectionID" json:"collection,omitempty"` // 所属集合
	Reviews    []Review    `gorm:"foreignKey:ProductID" json:"reviews,omitempty"`       // 商品评价
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
