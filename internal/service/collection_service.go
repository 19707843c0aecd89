package service

import (
	"strings"

	"github.com/storehub/internal/models"
	"github.com/storehub/internal/repository"
)

// CollectionService 商品集合业务
type CollectionService struct {
	collectionRepo repository.CollectionRepository
}

// NewCollectionService 创建集合服务
func NewCollectionService(collectionRepo repository.CollectionRepository) *CollectionService {
	return &CollectionService{collectionRepo: collectionRepo}
}

// CollectionInput 集合创建/更新入参
type CollectionInput struct {
	Title string
}

// CollectionWithCount 集合及其商品数
type CollectionWithCount struct {
	Collection    models.Collection
	ProductsCount int64
}

// List 集合列表，附带各集合的商品数
func (s *CollectionService) List() ([]CollectionWithCount, error) {
	collections, err := s.collectionRepo.List()
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(collections))
	for _, c := range collections {
		ids = append(ids, c.ID)
	}
	counts, err := s.collectionRepo.CountProductsByIDs(ids)
	if err != nil {
		return nil, err
	}

	result := make([]CollectionWithCount, 0, len(collections))
	for _, c := range collections {
		result = append(result, CollectionWithCount{
			Collection:    c,
			ProductsCount: counts[c.ID],
		})
	}
	return result, nil
}

// Get 获取单个集合及其商品数
func (s *CollectionService) Get(id uint) (*CollectionWithCount, error) {
	collection, err := s.collectionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}
	count, err := s.collectionRepo.CountProducts(id)
	if err != nil {
		return nil, err
	}
	return &CollectionWithCount{Collection: *collection, ProductsCount: count}, nil
}

// Create 创建集合
func (s *CollectionService) Create(input CollectionInput) (*models.Collection, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	collection := &models.Collection{Title: title}
	if err := s.collectionRepo.Create(collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// Update 更新集合标题
func (s *CollectionService) Update(id uint, input CollectionInput) (*models.Collection, error) {
	collection, err := s.collectionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	collection.Title = title
	if err := s.collectionRepo.Update(collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// CollectionPatch 集合局部更新入参，nil 字段保持原值
type CollectionPatch struct {
	Title *string
}

// Patch 局部更新集合，仅覆盖出现的字段
func (s *CollectionService) Patch(id uint, patch CollectionPatch) (*models.Collection, error) {
	collection, err := s.collectionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		collection.Title = title
	}
	if err := s.collectionRepo.Update(collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// Delete 删除集合；仍有商品归属时拒绝
func (s *CollectionService) Delete(id uint) error {
	collection, err := s.collectionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if collection == nil {
		return ErrCollectionNotFound
	}
	count, err := s.collectionRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCollectionInUse
	}
	return s.collectionRepo.Delete(id)
}
