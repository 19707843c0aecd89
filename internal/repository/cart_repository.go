package repository

import (
	"errors"

	"github.com/storehub/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByID(id string) (*models.Cart, error)
	Exists(id string) (bool, error)
	Delete(id string) error
	ListItems(cartID string) ([]models.CartItem, error)
	GetItem(cartID string, productID uint) (*models.CartItem, error)
	GetItemByID(cartID string, itemID uint) (*models.CartItem, error)
	CreateItem(item *models.CartItem) error
	UpdateItemQuantity(itemID uint, quantity int) error
	DeleteItem(cartID string, itemID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Create 创建购物车
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// GetByID 获取购物车（单次查询带出项与商品）
func (r *GormCartRepository) GetByID(id string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items.Product").First(&cart, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Exists 判断购物车是否存在
func (r *GormCartRepository) Exists(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Cart{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete 删除购物车并级联删除其项
func (r *GormCartRepository) Delete(id string) error {
	if err := r.db.Where("cart_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Cart{}, "id = ?", id).Error
}

// ListItems 获取购物车项（带商品连接查询）
func (r *GormCartRepository) ListItems(cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Preload("Product").Where("cart_id = ?", cartID).Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem 按 (cart_id, product_id) 获取购物车项
func (r *GormCartRepository) GetItem(cartID string, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetItemByID 在购物车范围内按项 ID 获取
func (r *GormCartRepository) GetItemByID(cartID string, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Preload("Product").Where("cart_id = ?", cartID).First(&item, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// CreateItem 创建购物车项
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateItemQuantity 更新购物车项数量
func (r *GormCartRepository) UpdateItemQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity).Error
}

// DeleteItem 在购物车范围内删除项
func (r *GormCartRepository) DeleteItem(cartID string, itemID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}, itemID).Error
}
