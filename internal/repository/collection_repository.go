package repository

import (
	"errors"

	"github.com/storehub/internal/models"

	"gorm.io/gorm"
)

// CollectionRepository 商品集合数据访问接口
type CollectionRepository interface {
	List() ([]models.Collection, error)
	GetByID(id uint) (*models.Collection, error)
	Create(collection *models.Collection) error
	Update(collection *models.Collection) error
	Delete(id uint) error
	CountProducts(collectionID uint) (int64, error)
	CountProductsByIDs(collectionIDs []uint) (map[uint]int64, error)
}

// GormCollectionRepository GORM 实现
type GormCollectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository 创建集合仓库
func NewCollectionRepository(db *gorm.DB) *GormCollectionRepository {
	return &GormCollectionRepository{db: db}
}

// List 集合列表
func (r *GormCollectionRepository) List() ([]models.Collection, error) {
	var collections []models.Collection
	if err := r.db.Order("id ASC").Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

// GetByID 根据 ID 获取集合
func (r *GormCollectionRepository) GetByID(id uint) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collection, nil
}

// Create 创建集合
func (r *GormCollectionRepository) Create(collection *models.Collection) error {
	return r.db.Create(collection).Error
}

// Update 更新集合
func (r *GormCollectionRepository) Update(collection *models.Collection) error {
	return r.db.Save(collection).Error
}

// Delete 删除集合
func (r *GormCollectionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Collection{}, id).Error
}

// CountProducts 统计某集合下商品数
func (r *GormCollectionRepository) CountProducts(collectionID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("collection_id = ?", collectionID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountProductsByIDs 批量统计集合商品数（列表派生字段单次查询）
func (r *GormCollectionRepository) CountProductsByIDs(collectionIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(collectionIDs))
	if len(collectionIDs) == 0 {
		return counts, nil
	}
	type row struct {
		CollectionID uint
		Total        int64
	}
	var rows []row
	err := r.db.Model(&models.Product{}).
		Select("collection_id, COUNT(*) AS total").
		Where("collection_id IN ?", collectionIDs).
		Group("collection_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, item := range rows {
		counts[item.CollectionID] = item.Total
	}
	return counts, nil
}
