package service

import (
	"strings"
	"time"

	"github.com/storehub/internal/constants"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/repository"
)

// CustomerService 顾客档案业务
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService 创建顾客服务
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput 顾客创建/更新入参
type CustomerInput struct {
	Phone      string
	BirthDate  *time.Time
	Membership string
}

// CustomerPatch 顾客局部更新入参，nil 字段保持原值
type CustomerPatch struct {
	Phone      *string
	BirthDate  *time.Time
	Membership *string
}

// CustomerListInput 顾客列表查询入参
type CustomerListInput struct {
	Page       int
	PageSize   int
	Membership string
}

// List 顾客列表
func (s *CustomerService) List(input CustomerListInput) ([]models.Customer, int64, error) {
	if input.Membership != "" && !constants.Memberships[input.Membership] {
		return nil, 0, ErrMembershipInvalid
	}
	return s.customerRepo.List(repository.CustomerListFilter{
		Page:       input.Page,
		PageSize:   input.PageSize,
		Membership: input.Membership,
	})
}

// Get 根据 ID 获取顾客
func (s *CustomerService) Get(id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// GetOrCreateByUserID 获取当前用户的顾客档案，不存在则创建默认档案
func (s *CustomerService) GetOrCreateByUserID(userID uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}
	customer = &models.Customer{
		UserID:     userID,
		Membership: constants.MembershipBronze,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Create 创建顾客档案（管理操作）
func (s *CustomerService) Create(userID uint, input CustomerInput) (*models.Customer, error) {
	membership, err := normalizeMembership(input.Membership)
	if err != nil {
		return nil, err
	}
	existing, err := s.customerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCustomerExists
	}
	customer := &models.Customer{
		UserID:     userID,
		Phone:      strings.TrimSpace(input.Phone),
		BirthDate:  input.BirthDate,
		Membership: membership,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update 更新顾客档案
func (s *CustomerService) Update(id uint, input CustomerInput) (*models.Customer, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	membership, err := normalizeMembership(input.Membership)
	if err != nil {
		return nil, err
	}
	customer.Phone = strings.TrimSpace(input.Phone)
	customer.BirthDate = input.BirthDate
	customer.Membership = membership
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Patch 局部更新顾客档案，仅覆盖出现的字段
func (s *CustomerService) Patch(id uint, patch CustomerPatch) (*models.Customer, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if patch.Phone != nil {
		customer.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.BirthDate != nil {
		customer.BirthDate = patch.BirthDate
	}
	if patch.Membership != nil {
		m := strings.TrimSpace(*patch.Membership)
		if !constants.Memberships[m] {
			return nil, ErrMembershipInvalid
		}
		customer.Membership = m
	}
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateProfile 更新当前用户自己的档案，会员等级不可自改
func (s *CustomerService) UpdateProfile(userID uint, input CustomerInput) (*models.Customer, error) {
	customer, err := s.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}
	customer.Phone = strings.TrimSpace(input.Phone)
	customer.BirthDate = input.BirthDate
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete 删除顾客档案；名下仍有订单时拒绝
func (s *CustomerService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	count, err := s.customerRepo.CountOrders(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCustomerInUse
	}
	return s.customerRepo.Delete(id)
}

func normalizeMembership(membership string) (string, error) {
	m := strings.TrimSpace(membership)
	if m == "" {
		return constants.MembershipBronze, nil
	}
	if !constants.Memberships[m] {
		return "", ErrMembershipInvalid
	}
	return m, nil
}
