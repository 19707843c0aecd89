package service

import (
	"github.com/storehub/internal/constants"
	"github.com/storehub/internal/logger"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/repository"

	"gorm.io/gorm"
)

// OrderCreatedListener 下单成功（事务提交后）回调
type OrderCreatedListener func(order *models.Order)

// OrderService 订单业务
type OrderService struct {
	db           *gorm.DB
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository

	listeners []OrderCreatedListener
}

// NewOrderService 创建订单服务
func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, cartRepo repository.CartRepository, customerRepo repository.CustomerRepository) *OrderService {
	return &OrderService{
		db:           db,
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
	}
}

// OnOrderCreated 注册下单回调，在事务提交后按注册顺序触发
func (s *OrderService) OnOrderCreated(listener OrderCreatedListener) {
	s.listeners = append(s.listeners, listener)
}

// OrderListInput 订单列表查询入参
type OrderListInput struct {
	Page          int
	PageSize      int
	PaymentStatus string
}

// Checkout 结算购物车：校验购物车、解析顾客、按当前价格生成订单项、删除购物车。
// 全程单事务，任一步失败则整体回滚。
func (s *OrderService) Checkout(cartID string, userID uint) (*models.Order, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	customer, err := s.customerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerMissing
	}

	var order *models.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)

		order = &models.Order{
			CustomerID:    customer.ID,
			PaymentStatus: constants.PaymentStatusPending,
		}
		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, cartItem := range cart.Items {
			if cartItem.Product == nil {
				return ErrProductNotFound
			}
			items = append(items, models.OrderItem{
				ProductID: cartItem.ProductID,
				UnitPrice: cartItem.Product.UnitPrice,
				Quantity:  cartItem.Quantity,
			})
		}
		if err := orderRepo.Create(order, items); err != nil {
			return err
		}
		return cartRepo.Delete(cartID)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		logger.Warnw("order_reload_failed", "order_id", order.ID, "error", err)
		created = order
	}
	s.notifyOrderCreated(created)
	return created, nil
}

func (s *OrderService) notifyOrderCreated(order *models.Order) {
	for _, listener := range s.listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Errorw("order_created_listener_panic", "order_id", order.ID, "panic", r)
				}
			}()
			listener(order)
		}()
	}
}

// ListForUser 订单列表；员工可见全部，普通用户只见自己的订单
func (s *OrderService) ListForUser(userID uint, isStaff bool, input OrderListInput) ([]models.Order, int64, error) {
	if input.PaymentStatus != "" && !constants.PaymentStatuses[input.PaymentStatus] {
		return nil, 0, ErrPaymentStatusInvalid
	}
	filter := repository.OrderListFilter{
		Page:          input.Page,
		PageSize:      input.PageSize,
		PaymentStatus: input.PaymentStatus,
	}
	if !isStaff {
		customer, err := s.customerRepo.GetByUserID(userID)
		if err != nil {
			return nil, 0, err
		}
		if customer == nil {
			return []models.Order{}, 0, nil
		}
		filter.CustomerID = customer.ID
	}
	return s.orderRepo.List(filter)
}

// GetForUser 获取订单；普通用户访问他人订单按不存在处理
func (s *OrderService) GetForUser(id, userID uint, isStaff bool) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !isStaff {
		customer, err := s.customerRepo.GetByUserID(userID)
		if err != nil {
			return nil, err
		}
		if customer == nil || customer.ID != order.CustomerID {
			return nil, ErrOrderNotFound
		}
	}
	return order, nil
}

// UpdatePaymentStatus 更新订单支付状态（管理操作）
func (s *OrderService) UpdatePaymentStatus(id uint, status string) (*models.Order, error) {
	if !constants.PaymentStatuses[status] {
		return nil, ErrPaymentStatusInvalid
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := s.orderRepo.UpdatePaymentStatus(id, status); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(id)
}

// Delete 删除订单（管理操作）
func (s *OrderService) Delete(id uint) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return s.orderRepo.Delete(id)
}
