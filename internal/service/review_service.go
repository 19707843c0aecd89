package service

import (
	"strings"

	"github.com/storehub/internal/models"
	"github.com/storehub/internal/repository"
)

// ReviewService 商品评价业务，所有操作限定在路径中的商品范围内
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

// ReviewInput 评价创建/更新入参
type ReviewInput struct {
	Name        string
	Description string
}

// List 某商品的评价列表
func (s *ReviewService) List(productID uint, page, pageSize int) ([]models.Review, int64, error) {
	if err := s.ensureProduct(productID); err != nil {
		return nil, 0, err
	}
	return s.reviewRepo.ListByProduct(productID, page, pageSize)
}

// Get 在商品范围内获取评价
func (s *ReviewService) Get(productID, id uint) (*models.Review, error) {
	if err := s.ensureProduct(productID); err != nil {
		return nil, err
	}
	review, err := s.reviewRepo.GetByProductAndID(productID, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// Create 创建评价，商品 ID 取自路径而非请求体
func (s *ReviewService) Create(productID uint, input ReviewInput) (*models.Review, error) {
	if err := s.ensureProduct(productID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	review := &models.Review{
		ProductID:   productID,
		Name:        name,
		Description: input.Description,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Update 更新评价
func (s *ReviewService) Update(productID, id uint, input ReviewInput) (*models.Review, error) {
	review, err := s.Get(productID, id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	review.Name = name
	review.Description = input.Description
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ReviewPatch 评价局部更新入参，nil 字段保持原值
type ReviewPatch struct {
	Name        *string
	Description *string
}

// Patch 局部更新评价，仅覆盖出现的字段
func (s *ReviewService) Patch(productID, id uint, patch ReviewPatch) (*models.Review, error) {
	review, err := s.Get(productID, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		review.Name = name
	}
	if patch.Description != nil {
		review.Description = *patch.Description
	}
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete 在商品范围内删除评价
func (s *ReviewService) Delete(productID, id uint) error {
	if _, err := s.Get(productID, id); err != nil {
		return err
	}
	return s.reviewRepo.Delete(productID, id)
}

func (s *ReviewService) ensureProduct(productID uint) error {
	exists, err := s.productRepo.Exists(productID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProductNotFound
	}
	return nil
}
