package service

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/repository"
)

// ProductService 商品业务
type ProductService struct {
	productRepo    repository.ProductRepository
	collectionRepo repository.CollectionRepository
	taxRate        decimal.Decimal
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, collectionRepo repository.CollectionRepository, taxRate decimal.Decimal) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		collectionRepo: collectionRepo,
		taxRate:        taxRate,
	}
}

// ProductInput 商品创建/更新入参
type ProductInput struct {
	Title        string
	Description  string
	UnitPrice    decimal.Decimal
	Inventory    int
	CollectionID uint
}

// ProductPatch 商品局部更新入参，nil 字段保持原值
type ProductPatch struct {
	Title        *string
	Description  *string
	UnitPrice    *decimal.Decimal
	Inventory    *int
	CollectionID *uint
}

// ProductListInput 商品列表查询入参
type ProductListInput struct {
	Page         int
	PageSize     int
	CollectionID string
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	Search       string
	OrderBy      string
}

// List 商品列表
func (s *ProductService) List(input ProductListInput) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		Page:           input.Page,
		PageSize:       input.PageSize,
		CollectionID:   input.CollectionID,
		PriceMin:       input.PriceMin,
		PriceMax:       input.PriceMax,
		Search:         input.Search,
		OrderBy:        input.OrderBy,
		WithCollection: true,
	})
}

// Get 获取单个商品
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品，slug 由标题派生
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(input.Title)
	product := &models.Product{
		Title:        title,
		Slug:         Slugify(title),
		Description:  input.Description,
		UnitPrice:    models.NewMoneyFromDecimal(input.UnitPrice),
		Inventory:    input.Inventory,
		CollectionID: input.CollectionID,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(product.ID)
}

// Update 更新商品，标题变更时重新派生 slug
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	product.Title = title
	product.Slug = Slugify(title)
	product.Description = input.Description
	product.UnitPrice = models.NewMoneyFromDecimal(input.UnitPrice)
	product.Inventory = input.Inventory
	product.CollectionID = input.CollectionID

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(id)
}

// Patch 局部更新商品，仅覆盖请求中出现的字段；标题变更时重新派生 slug
func (s *ProductService) Patch(id uint, patch ProductPatch) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		product.Title = title
		product.Slug = Slugify(title)
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.UnitPrice != nil {
		if !patch.UnitPrice.IsPositive() {
			return nil, ErrPriceInvalid
		}
		product.UnitPrice = models.NewMoneyFromDecimal(*patch.UnitPrice)
	}
	if patch.Inventory != nil {
		if *patch.Inventory < 0 {
			return nil, ErrInventoryInvalid
		}
		product.Inventory = *patch.Inventory
	}
	if patch.CollectionID != nil {
		if *patch.CollectionID == 0 {
			return nil, ErrCollectionIDRequired
		}
		collection, err := s.collectionRepo.GetByID(*patch.CollectionID)
		if err != nil {
			return nil, err
		}
		if collection == nil {
			return nil, ErrCollectionNotFound
		}
		product.CollectionID = *patch.CollectionID
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(id)
}

// Delete 删除商品；被订单项引用时拒绝
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	count, err := s.productRepo.CountOrderItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProductInUse
	}
	return s.productRepo.Delete(id)
}

// PriceWithTax 计算含税价
func (s *ProductService) PriceWithTax(price models.Money) models.Money {
	return models.NewMoneyFromDecimal(price.Decimal.Mul(s.taxRate))
}

func (s *ProductService) validateInput(input ProductInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrTitleRequired
	}
	if !input.UnitPrice.IsPositive() {
		return ErrPriceInvalid
	}
	if input.Inventory < 0 {
		return ErrInventoryInvalid
	}
	if input.CollectionID == 0 {
		return ErrCollectionIDRequired
	}
	collection, err := s.collectionRepo.GetByID(input.CollectionID)
	if err != nil {
		return err
	}
	if collection == nil {
		return ErrCollectionNotFound
	}
	return nil
}

// Slugify 将标题转为 slug（空格替换为连字符）
func Slugify(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), " ", "-")
}
