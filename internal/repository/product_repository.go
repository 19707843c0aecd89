package repository

import (
	"errors"
	"strings"

	"github.com/storehub/internal/constants"
	"github.com/storehub/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Exists(id uint) (bool, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	CountOrderItems(productID uint) (int64, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List 商品列表（集合/价格区间过滤 + 标题描述搜索 + 排序 + 分页）
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.WithCollection {
		query = query.Preload("Collection")
	}
	if filter.CollectionID != "" {
		query = query.Where("collection_id = ?", filter.CollectionID)
	}
	if filter.PriceMin != nil {
		query = query.Where("unit_price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("unit_price <= ?", *filter.PriceMax)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order(resolveProductOrder(filter.OrderBy)).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// resolveProductOrder 将排序参数映射为白名单内的 SQL 片段。
func resolveProductOrder(orderBy string) string {
	raw := strings.TrimSpace(orderBy)
	desc := strings.HasPrefix(raw, "-")
	field := strings.TrimPrefix(raw, "-")
	direction := "ASC"
	if desc {
		direction = "DESC"
	}
	switch field {
	case constants.ProductOrderByUnitPrice:
		return "unit_price " + direction + ", id ASC"
	case constants.ProductOrderByLastUpdate:
		return "last_update " + direction + ", id ASC"
	default:
		return "id ASC"
	}
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Collection").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Exists 判断商品是否存在
func (r *GormProductRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete 删除商品
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// CountOrderItems 统计引用该商品的订单项数
func (r *GormProductRepository) CountOrderItems(productID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.OrderItem{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
