package repository

import (
	"errors"

	"github.com/storehub/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository 商品评价数据访问接口
type ReviewRepository interface {
	ListByProduct(productID uint, page, pageSize int) ([]models.Review, int64, error)
	GetByProductAndID(productID, id uint) (*models.Review, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(productID, id uint) error
}

// GormReviewRepository GORM 实现
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓库
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// ListByProduct 获取某商品的评价列表
func (r *GormReviewRepository) ListByProduct(productID uint, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	query := r.db.Model(&models.Review{}).Where("product_id = ?", productID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, page, pageSize)
	if err := query.Order("date DESC, id DESC").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// GetByProductAndID 在商品范围内获取评价
func (r *GormReviewRepository) GetByProductAndID(productID, id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("product_id = ?", productID).First(&review, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Create 创建评价
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Update 更新评价
func (r *GormReviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

// Delete 在商品范围内删除评价
func (r *GormReviewRepository) Delete(productID, id uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&models.Review{}, id).Error
}
