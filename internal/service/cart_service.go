package service

import (
	"github.com/google/uuid"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/repository"
)

// CartService 购物车业务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// CartItemInput 添加购物车项入参
type CartItemInput struct {
	ProductID uint
	Quantity  int
}

// Create 创建匿名购物车，ID 为随机 UUID
func (s *CartService) Create() (*models.Cart, error) {
	cart := &models.Cart{ID: uuid.NewString()}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	cart.Items = []models.CartItem{}
	return cart, nil
}

// Get 获取购物车（含全部项与商品）
func (s *CartService) Get(id string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// Delete 删除购物车及其全部项
func (s *CartService) Delete(id string) error {
	exists, err := s.cartRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCartNotFound
	}
	return s.cartRepo.Delete(id)
}

// ListItems 购物车项列表
func (s *CartService) ListItems(cartID string) ([]models.CartItem, error) {
	if err := s.ensureCart(cartID); err != nil {
		return nil, err
	}
	return s.cartRepo.ListItems(cartID)
}

// GetItem 在购物车范围内获取项
func (s *CartService) GetItem(cartID string, itemID uint) (*models.CartItem, error) {
	if err := s.ensureCart(cartID); err != nil {
		return nil, err
	}
	item, err := s.cartRepo.GetItemByID(cartID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}

// AddItem 向购物车添加商品；同一商品已有行时累加数量而非新建行
func (s *CartService) AddItem(cartID string, input CartItemInput) (*models.CartItem, error) {
	if err := s.ensureCart(cartID); err != nil {
		return nil, err
	}
	if input.Quantity <= 0 {
		return nil, ErrQuantityInvalid
	}
	exists, err := s.productRepo.Exists(input.ProductID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	existing, err := s.cartRepo.GetItem(cartID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		newQuantity := existing.Quantity + input.Quantity
		if err := s.cartRepo.UpdateItemQuantity(existing.ID, newQuantity); err != nil {
			return nil, err
		}
		return s.cartRepo.GetItemByID(cartID, existing.ID)
	}

	item := &models.CartItem{
		CartID:    cartID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	if err := s.cartRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return s.cartRepo.GetItemByID(cartID, item.ID)
}

// UpdateItemQuantity 覆写购物车项数量
func (s *CartService) UpdateItemQuantity(cartID string, itemID uint, quantity int) (*models.CartItem, error) {
	item, err := s.GetItem(cartID, itemID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, ErrQuantityInvalid
	}
	if err := s.cartRepo.UpdateItemQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.GetItemByID(cartID, itemID)
}

// RemoveItem 从购物车移除项
func (s *CartService) RemoveItem(cartID string, itemID uint) error {
	if _, err := s.GetItem(cartID, itemID); err != nil {
		return err
	}
	return s.cartRepo.DeleteItem(cartID, itemID)
}

func (s *CartService) ensureCart(cartID string) error {
	exists, err := s.cartRepo.Exists(cartID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCartNotFound
	}
	return nil
}
